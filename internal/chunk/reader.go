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

package chunk

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/png/internal/crc"
)

// Chunk is a single chunk read from a PNG stream.
type Chunk struct {
	// Pos is the offset of the chunk's length field in the stream.
	Pos int64

	Type Type
	Data []byte
	CRC  uint32
}

// Reader splits a PNG stream into chunks.
//
// The reader checks the signature, the chunk lengths and the CRCs.  It does
// not interpret the chunk contents, except that it stops at the IEND chunk.
type Reader struct {
	r        io.Reader
	pos      int64
	started  bool
	finished bool

	// Limit, if non-zero, restricts the payload size of individual chunks
	// further than MaxLength does.
	Limit uint32
}

// NewReader returns a new Reader which reads chunks from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next chunk in the stream.
// After the IEND chunk has been returned, Next returns io.EOF.
func (r *Reader) Next() (*Chunk, error) {
	if r.finished {
		return nil, io.EOF
	}

	if !r.started {
		var sig [8]byte
		if _, err := io.ReadFull(r.r, sig[:]); err != nil {
			return nil, r.malformed(fmt.Errorf("reading signature: %w", noEOF(err)))
		}
		if sig != Signature {
			return nil, r.malformed(errBadSignature)
		}
		r.pos += int64(len(sig))
		r.started = true
	}

	pos := r.pos
	var head [8]byte
	if _, err := io.ReadFull(r.r, head[:]); err != nil {
		if err == io.EOF {
			err = errMissingIEND
		}
		return nil, r.malformed(noEOF(err))
	}

	length := binary.BigEndian.Uint32(head[:4])
	limit := uint32(MaxLength)
	if r.Limit > 0 && r.Limit < limit {
		limit = r.Limit
	}
	if length > limit {
		return nil, r.malformed(fmt.Errorf("chunk length %d exceeds limit %d", length, limit))
	}

	c := &Chunk{Pos: pos}
	copy(c.Type[:], head[4:])
	if !c.Type.Valid() {
		return nil, r.malformed(fmt.Errorf("invalid chunk type %s", c.Type))
	}

	// Read via a bytes.Buffer so that a corrupt length field in a short
	// file does not cause a huge allocation.
	buf := &bytes.Buffer{}
	n, err := io.CopyN(buf, r.r, int64(length)+crc.Size)
	r.pos += int64(len(head)) + n
	if err != nil {
		return nil, r.malformed(fmt.Errorf("%s chunk: %w", c.Type, noEOF(err)))
	}
	body := buf.Bytes()
	c.Data = body[:length]
	c.CRC = binary.BigEndian.Uint32(body[length:])

	h := crc.New()
	h.Write(c.Type[:])
	h.Write(c.Data)
	if sum := h.Sum32(); sum != c.CRC {
		return nil, &MalformedError{
			Pos: pos,
			Err: fmt.Errorf("%s chunk: CRC mismatch (stored 0x%08X, computed 0x%08X)", c.Type, c.CRC, sum),
		}
	}

	if c.Type == IEND {
		r.finished = true
	}
	return c, nil
}

func (r *Reader) malformed(err error) error {
	return &MalformedError{Pos: r.pos, Err: err}
}

// noEOF turns an io.EOF in the middle of a stream into io.ErrUnexpectedEOF.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

var (
	errBadSignature = errors.New("wrong signature")
	errMissingIEND  = errors.New("missing IEND chunk")
)
