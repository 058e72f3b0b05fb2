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

// Package chunk implements the framing of PNG files.
//
// A PNG file consists of the 8-byte [Signature] followed by a sequence of
// chunks.  Each chunk is stored as a 4-byte big-endian payload length, a
// 4-byte chunk type, the payload, and a CRC-32 of the type and payload.
package chunk

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/png/internal/crc"
)

// Signature is the fixed byte sequence at the start of every PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// MaxLength is the largest payload length allowed in a PNG chunk.
const MaxLength = 1<<31 - 1

// Overhead is the number of bytes a chunk adds to its payload.
const Overhead = 4 + 4 + crc.Size

// Type is a four-letter chunk type code.
type Type [4]byte

// The chunk types written by the encoder.
var (
	IHDR = Type{'I', 'H', 'D', 'R'}
	IDAT = Type{'I', 'D', 'A', 'T'}
	IEND = Type{'I', 'E', 'N', 'D'}
)

func (t Type) String() string {
	for _, c := range t {
		if !isLetter(c) {
			return strconv.Quote(string(t[:]))
		}
	}
	return string(t[:])
}

// IsCritical reports whether a decoder must understand the chunk type in
// order to display the image.  This is indicated by an upper case first
// letter.
func (t Type) IsCritical() bool {
	return t[0]&0x20 == 0
}

// Valid reports whether all four bytes of the type are ASCII letters.
func (t Type) Valid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// Assemble returns the complete chunk with the given type and payload.
// The result has length len(payload)+[Overhead].
func Assemble(t Type, payload []byte) []byte {
	buf := make([]byte, 0, len(payload)+Overhead)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(payload)))
	buf = append(buf, t[:]...)
	buf = append(buf, payload...)
	buf = binary.BigEndian.AppendUint32(buf, crc.Checksum(buf[4:]))
	return buf
}

// Write writes a chunk to w.  Unlike [Assemble], this does not copy the
// payload.
func Write(w io.Writer, t Type, payload []byte) error {
	if len(payload) > MaxLength {
		return fmt.Errorf("%s chunk too long (%d bytes)", t, len(payload))
	}

	var head [8]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(payload)))
	copy(head[4:], t[:])

	h := crc.New()
	h.Write(t[:])
	h.Write(payload)

	if _, err := w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	_, err := w.Write(h.Sum(nil))
	return err
}

// MalformedError indicates that a PNG stream could not be parsed.
type MalformedError struct {
	Pos int64
	Err error
}

func (err *MalformedError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PNG file" + middle + tail
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}
