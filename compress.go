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
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// A Compressor turns the filtered scanlines into the contents of the IDAT
// chunk.  The result must be a complete zlib stream (RFC 1950).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// CompressorFunc adapts an ordinary function to the [Compressor] interface.
type CompressorFunc func(data []byte) ([]byte, error)

// Compress calls f(data).
func (f CompressorFunc) Compress(data []byte) ([]byte, error) {
	return f(data)
}

// streamCompressor is implemented by compressors which can compress data
// while it is being produced.
type streamCompressor interface {
	Compressor
	newWriter(w io.Writer) io.WriteCloser
}

// ZlibCompressor is the default compressor, using the zlib implementation
// from github.com/klauspost/compress at its default compression level.
// The zero value is ready to use.
type ZlibCompressor struct{}

var zlibWriters = sync.Pool{
	New: func() any {
		return zlib.NewWriter(nil)
	},
}

// Compress implements the [Compressor] interface.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := c.newWriter(buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ZlibCompressor) newWriter(w io.Writer) io.WriteCloser {
	zw := zlibWriters.Get().(*zlib.Writer)
	zw.Reset(w)
	return &pooledWriter{Writer: zw}
}

// pooledWriter returns the zlib writer to the pool when it is closed.
type pooledWriter struct {
	*zlib.Writer
}

func (w *pooledWriter) Close() error {
	if w.Writer == nil {
		return nil
	}
	err := w.Writer.Close()
	zlibWriters.Put(w.Writer)
	w.Writer = nil
	return err
}
