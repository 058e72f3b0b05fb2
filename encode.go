// seehuhn.de/go/png - a library for writing PNG files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package png

import (
	"bytes"
	"fmt"
	"io"

	"seehuhn.de/go/png/internal/chunk"
	"seehuhn.de/go/png/internal/filter/predict"
)

// Filter selects the PNG filter applied to the scanlines.
type Filter = predict.Type

// These are the available filter choices.
const (
	// FilterDynamic chooses the filter for every row separately, picking
	// the one whose output has the smallest sum of absolute values.
	// Grayscale images with less than 8 bits per sample are not filtered.
	FilterDynamic = predict.Dynamic

	FilterNone    = predict.None
	FilterSub     = predict.Sub
	FilterUp      = predict.Up
	FilterAverage = predict.Average
	FilterPaeth   = predict.Paeth
)

// ParseFilter returns the filter with the given name, for example "paeth"
// or "dynamic".
func ParseFilter(name string) (Filter, error) {
	return predict.ParseType(name)
}

// Options control the behaviour of an [Encoder].
// The zero value gives the default behaviour.
type Options struct {
	// Filter is the filter used for all rows.
	// The default is [FilterDynamic].
	Filter Filter

	// Compressor is used to compress the filtered image data.
	// If this is nil, [ZlibCompressor] is used.
	Compressor Compressor

	// Workers is the number of goroutines used to filter the rows of an
	// image.  Values below 2 filter all rows on the calling goroutine.
	// The output does not depend on this setting.
	Workers int
}

// An Encoder writes PNG images.
// It is safe to use an Encoder from several goroutines at the same time,
// provided the Compressor is.
type Encoder struct {
	filter     Filter
	compressor Compressor
	workers    int
}

// NewEncoder returns a new Encoder.  If opt is nil, the default options
// are used.
func NewEncoder(opt *Options) (*Encoder, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Filter > FilterPaeth {
		return nil, fmt.Errorf("png: unsupported filter %s", opt.Filter)
	}
	if opt.Workers < 0 {
		return nil, fmt.Errorf("png: invalid number of workers %d", opt.Workers)
	}

	e := &Encoder{
		filter:     opt.Filter,
		compressor: opt.Compressor,
		workers:    opt.Workers,
	}
	if e.compressor == nil {
		e.compressor = ZlibCompressor{}
	}
	return e, nil
}

var defaultEncoder = &Encoder{compressor: ZlibCompressor{}}

// Encode converts the pixels to a PNG file using the default options.
// See [Encoder.Encode] for details.
func Encode(pixels []uint32, width, height int, f ColorFormat) ([]byte, error) {
	return defaultEncoder.Encode(pixels, width, height, f)
}

// Encode converts the pixels to a PNG file.
// The pixel slice must hold width*height pixels in format f, row by row.
func (e *Encoder) Encode(pixels []uint32, width, height int, f ColorFormat) ([]byte, error) {
	d, err := Convert(pixels, width, height, f)
	if err != nil {
		return nil, err
	}
	return e.EncodeData(d)
}

// EncodeData encodes already converted scanlines as a PNG file.
func (e *Encoder) EncodeData(d *ImageData) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := e.WriteData(buf, d)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write converts the pixels and writes the PNG file to w.
func (e *Encoder) Write(w io.Writer, pixels []uint32, width, height int, f ColorFormat) error {
	d, err := Convert(pixels, width, height, f)
	if err != nil {
		return err
	}
	return e.WriteData(w, d)
}

// WriteData writes already converted scanlines as a PNG file to w.
//
// The image data is filtered and compressed before anything is written, so
// that no partial file is written if the input is invalid.
func (e *Encoder) WriteData(w io.Writer, d *ImageData) error {
	if err := d.Validate(); err != nil {
		return err
	}

	idat, err := e.compress(d)
	if err != nil {
		return err
	}
	if len(idat) > chunk.MaxLength {
		return fmt.Errorf("png: compressed image data too large (%d bytes)", len(idat))
	}

	hdr := &chunk.Header{
		Width:     uint32(d.Width),
		Height:    uint32(d.Height),
		BitDepth:  uint8(d.BitDepth),
		ColorType: uint8(d.ColorType),
	}

	if _, err := w.Write(chunk.Signature[:]); err != nil {
		return err
	}
	if _, err := w.Write(chunk.Assemble(chunk.IHDR, hdr.Encode())); err != nil {
		return err
	}
	if err := chunk.Write(w, chunk.IDAT, idat); err != nil {
		return err
	}
	_, err = w.Write(chunk.Assemble(chunk.IEND, nil))
	return err
}

// compress filters the scanlines, prefixes each with its filter type byte,
// and compresses the result.
func (e *Encoder) compress(d *ImageData) ([]byte, error) {
	params := &predict.Params{
		Colors:           d.ColorType.Channels(),
		BitsPerComponent: d.BitDepth,
		Columns:          d.Width,
		Type:             e.filter,
	}

	sc, ok := e.compressor.(streamCompressor)
	if !ok || e.workers > 1 {
		filtered, err := predict.FilterRows(d.Scanlines, params, e.workers)
		if err != nil {
			return nil, err
		}
		return e.compressor.Compress(filtered)
	}

	buf := &bytes.Buffer{}
	zw := sc.newWriter(buf)
	fw, err := predict.NewWriter(zw, params)
	if err != nil {
		zw.Close()
		return nil, err
	}
	for _, row := range d.Scanlines {
		if _, err := fw.Write(row); err != nil {
			zw.Close()
			return nil, err
		}
	}
	// This also closes the zlib writer.
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
