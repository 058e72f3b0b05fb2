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
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the length of the IHDR payload.
const HeaderSize = 13

// Header holds the fields of an IHDR chunk.
//
// The compression method, filter method and interlace method are always
// zero for the files written by this library, so they are not represented
// here.
type Header struct {
	Width     uint32
	Height    uint32
	BitDepth  uint8
	ColorType uint8
}

// Encode returns the 13-byte IHDR payload.
func (h *Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], h.Width)
	binary.BigEndian.PutUint32(buf[4:8], h.Height)
	buf[8] = h.BitDepth
	buf[9] = h.ColorType
	// buf[10:13] are compression, filter and interlace method, all zero
	return buf
}

// ParseHeader decodes an IHDR payload.
//
// Only the framing is checked here: the width and height must be non-zero
// and fit into 31 bits, and the compression, filter and interlace methods
// must be zero.  Whether the bit depth is allowed for the color type is left
// to the caller.
func ParseHeader(payload []byte) (*Header, error) {
	if len(payload) != HeaderSize {
		return nil, fmt.Errorf("IHDR payload has %d bytes, expected %d", len(payload), HeaderSize)
	}

	h := &Header{
		Width:     binary.BigEndian.Uint32(payload[0:4]),
		Height:    binary.BigEndian.Uint32(payload[4:8]),
		BitDepth:  payload[8],
		ColorType: payload[9],
	}
	if h.Width == 0 || h.Height == 0 || h.Width > MaxLength || h.Height > MaxLength {
		return nil, fmt.Errorf("invalid image size %dx%d", h.Width, h.Height)
	}
	if payload[10] != 0 {
		return nil, fmt.Errorf("unknown compression method %d", payload[10])
	}
	if payload[11] != 0 {
		return nil, fmt.Errorf("unknown filter method %d", payload[11])
	}
	if payload[12] != 0 {
		return nil, errUnsupportedInterlace
	}
	return h, nil
}

var errUnsupportedInterlace = errors.New("interlaced images are not supported")
