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
	"io"
)

// reader undoes the effects of a prediction filter on the data read from it.
// This is used to check filtered scanlines after decompression.
type reader struct {
	r      io.ReadCloser
	params *Params

	// State for processing
	bpp          int
	prevRow      []byte // Previous decoded row, nil before the first row
	inputBuffer  []byte // Filter type byte and filtered row
	outputBuffer []byte // Decoded row
	outputPos    int    // Position in output buffer
	outputLen    int    // Length of valid data in output buffer
	eof          bool   // End of file reached
}

// NewReader creates a new io.ReadCloser which reverses the prediction
// filter.  The data read from r must consist of complete filtered scanlines,
// each preceded by its filter type byte.  The function returns an error if
// the parameters are invalid.
func NewReader(r io.ReadCloser, p *Params) (io.ReadCloser, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rowBytes := p.RowBytes()
	reader := &reader{
		r:            r,
		params:       p,
		bpp:          p.BytesPerPixel(),
		inputBuffer:  make([]byte, rowBytes+1), // +1 for tag byte
		outputBuffer: make([]byte, rowBytes),
	}
	return reader, nil
}

func (r *reader) Close() error {
	return r.r.Close()
}

// Read implements the [io.Reader] interface.
func (r *reader) Read(p []byte) (n int, err error) {
	totalRead := 0

	for totalRead < len(p) {
		// Return any buffered output data first
		if r.outputPos < r.outputLen {
			available := r.outputLen - r.outputPos
			copyLen := min(len(p)-totalRead, available)
			copy(p[totalRead:], r.outputBuffer[r.outputPos:r.outputPos+copyLen])
			r.outputPos += copyLen
			totalRead += copyLen
			continue
		}

		// Check if we've reached EOF
		if r.eof {
			break
		}

		// Read and decode more data
		_, readErr := io.ReadFull(r.r, r.inputBuffer)
		if readErr == io.EOF {
			r.eof = true
			break
		} else if readErr != nil {
			// a partial row gives io.ErrUnexpectedEOF
			return totalRead, readErr
		}

		if err := r.decodeRow(); err != nil {
			return totalRead, err
		}
		r.outputLen = len(r.outputBuffer)
		r.outputPos = 0
	}

	if totalRead == 0 && r.eof {
		return 0, io.EOF
	}

	return totalRead, nil
}

// decodeRow decodes the row in the input buffer into the output buffer.
func (r *reader) decodeRow() error {
	t, err := FromCode(r.inputBuffer[0])
	if err != nil {
		return err
	}

	if r.prevRow == nil {
		r.prevRow = make([]byte, len(r.outputBuffer))
		undo(r.outputBuffer, nil, r.inputBuffer[1:], r.bpp, t)
	} else {
		copy(r.prevRow, r.outputBuffer)
		undo(r.outputBuffer, r.prevRow, r.inputBuffer[1:], r.bpp, t)
	}
	return nil
}
