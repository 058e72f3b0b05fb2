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

package predict

import (
	"errors"
	"io"
)

var errIncompleteRow = errors.New("incomplete scanline at end of data")

// writer applies a prediction filter to the data written to it.
// This is used to prepare scanlines for the zlib compression of PNG image data.
type writer struct {
	w      io.WriteCloser
	params *Params

	// State for processing
	bpp        int
	rowType    Type
	prevRow    []byte // Previous raw row, nil before the first row
	curRow     []byte // Raw bytes of the current row
	curLen     int    // Length of data in curRow
	encodedRow []byte // Filter type byte and filtered row
}

// NewWriter creates a new io.WriteCloser that applies the prediction filter
// with the given parameters.  The data written must consist of complete
// unfiltered scanlines; for each scanline the filter type byte and the
// filtered scanline are written to w.  The function returns an error if the
// parameters are invalid.
func NewWriter(w io.WriteCloser, p *Params) (io.WriteCloser, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rowBytes := p.RowBytes()
	writer := &writer{
		w:          w,
		params:     p,
		bpp:        p.BytesPerPixel(),
		rowType:    p.rowType(),
		curRow:     make([]byte, rowBytes),
		encodedRow: make([]byte, 1+rowBytes),
	}
	return writer, nil
}

// Write implements the [io.Writer] interface.
func (w *writer) Write(data []byte) (n int, err error) {
	totalWritten := 0
	pos := 0

	for pos < len(data) {
		available := len(data) - pos
		needed := len(w.curRow) - w.curLen

		copyLen := min(available, needed)

		copy(w.curRow[w.curLen:], data[pos:pos+copyLen])
		w.curLen += copyLen
		pos += copyLen
		totalWritten += copyLen

		// Process complete rows
		if w.curLen == len(w.curRow) {
			if err := w.processRow(); err != nil {
				return totalWritten, err
			}
			w.curLen = 0
		}
	}

	return totalWritten, nil
}

// processRow filters and writes a complete row of data
func (w *writer) processRow() error {
	filterRow(w.encodedRow, w.prevRow, w.curRow, w.bpp, w.rowType)

	_, err := w.w.Write(w.encodedRow)
	if err != nil {
		return err
	}

	// The current row becomes the previous row.  The old previous row
	// buffer is recycled for the next row.
	if w.prevRow == nil {
		w.prevRow = make([]byte, len(w.curRow))
	}
	w.prevRow, w.curRow = w.curRow, w.prevRow
	return nil
}

// Close implements the [io.Closer] interface.
// It also closes the underlying writer.
func (w *writer) Close() error {
	if w.curLen > 0 {
		return errIncompleteRow
	}
	return w.w.Close()
}
