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
	"fmt"

	"seehuhn.de/go/png/internal/bitpack"
)

// maxDimension is the largest image width or height allowed in PNG files.
const maxDimension = 1<<31 - 1

// ImageData holds an image as unfiltered PNG scanlines.
type ImageData struct {
	ColorType ColorType
	BitDepth  int
	Width     int
	Height    int

	// Scanlines holds one slice per image row, each of length
	// ColorType.RowBytes(Width, BitDepth).  Samples are stored in
	// big-endian order; samples smaller than a byte are packed with the
	// leftmost pixel in the most significant bits.
	Scanlines [][]byte
}

// Validate checks that the image dimensions, the color type, the bit depth
// and the scanlines are consistent.
func (d *ImageData) Validate() error {
	if d.Width <= 0 || d.Height <= 0 || d.Width > maxDimension || d.Height > maxDimension {
		return invalidInput("invalid image size %dx%d", d.Width, d.Height)
	}
	if err := d.ColorType.ValidateDepth(d.BitDepth); err != nil {
		return err
	}
	if d.ColorType == ColorTypePalette {
		return &UnsupportedColorTypeError{Code: byte(d.ColorType)}
	}
	if len(d.Scanlines) != d.Height {
		return invalidInput("%d scanlines for image height %d", len(d.Scanlines), d.Height)
	}
	rowBytes := d.RowBytes()
	for y, row := range d.Scanlines {
		if len(row) != rowBytes {
			return invalidInput("scanline %d has %d bytes, expected %d", y, len(row), rowBytes)
		}
	}
	return nil
}

// RowBytes returns the length of a scanline in bytes.
func (d *ImageData) RowBytes() int {
	return d.ColorType.RowBytes(d.Width, d.BitDepth)
}

// Convert turns packed pixels into PNG scanlines.
//
// The pixel slice must hold width*height pixels in the given format,
// row by row, starting at the top-left corner.
func Convert(pixels []uint32, width, height int, f ColorFormat) (*ImageData, error) {
	info, ok := formats[f]
	if !ok {
		return nil, invalidInput("unknown pixel format %d", int(f))
	}
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, invalidInput("invalid image size %dx%d", width, height)
	}

	ipp := info.intsPerPixel
	count := len(pixels) / ipp
	if len(pixels)%ipp != 0 || count%height != 0 || count/height != width {
		return nil, invalidInput("%d values do not match a %dx%d %s image",
			len(pixels), width, height, f)
	}

	return info.convert(pixels, width, height), nil
}

// samples16 returns a converter for formats which store one 16-bit sample
// per slice element.  Output channel i is taken from element order[i] of
// each pixel.
func samples16(ct ColorType, order ...int) func([]uint32, int, int) *ImageData {
	ipp := len(order)
	return func(pixels []uint32, width, height int) *ImageData {
		res := &ImageData{
			ColorType: ct,
			BitDepth:  16,
			Width:     width,
			Height:    height,
			Scanlines: make([][]byte, height),
		}
		for y := range height {
			p := bitpack.New(width * ipp * 16)
			pos := 0
			row := pixels[y*width*ipp : (y+1)*width*ipp]
			for x := 0; x < len(row); x += ipp {
				for _, k := range order {
					pos = p.Put(pos, row[x+k], 16)
				}
			}
			res.Scanlines[y] = p.Bytes()
		}
		return res
	}
}

// bytes8 returns a converter for formats which store a whole pixel in one
// slice element, with 8 bits per sample.  Output channel i is taken from
// bits shift[i] to shift[i]+7 of the pixel value.
func bytes8(ct ColorType, shift ...int) func([]uint32, int, int) *ImageData {
	bpp := len(shift)
	return func(pixels []uint32, width, height int) *ImageData {
		res := &ImageData{
			ColorType: ct,
			BitDepth:  8,
			Width:     width,
			Height:    height,
			Scanlines: make([][]byte, height),
		}
		for y := range height {
			row := make([]byte, width*bpp)
			pos := 0
			for _, v := range pixels[y*width : (y+1)*width] {
				for _, s := range shift {
					row[pos] = byte(v >> s)
					pos++
				}
			}
			res.Scanlines[y] = row
		}
		return res
	}
}

func (d *ImageData) String() string {
	return fmt.Sprintf("%dx%d %s/%d", d.Width, d.Height, d.ColorType, d.BitDepth)
}
