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

// Package bitpack packs fixed-width unsigned samples into bytes.
//
// Samples are stored most significant bit first, as required for PNG
// scanlines with bit depths below 8.  Unused bits at the end of the buffer
// are left as zero.
package bitpack

import "fmt"

// Packer is a zero-initialised bit buffer with a fixed capacity.
type Packer struct {
	bytes   []byte
	numBits int
}

// New allocates a packer with room for numBits bits.
// The buffer is rounded up to a whole number of bytes.
func New(numBits int) *Packer {
	if numBits < 0 {
		panic("bitpack: negative capacity")
	}
	return &Packer{
		bytes:   make([]byte, (numBits+7)>>3),
		numBits: numBits,
	}
}

// Put stores the low numBits bits of value at bit position bitOffset,
// most significant bit first, and returns bitOffset+numBits.
//
// Bits are combined with the existing buffer contents using bitwise OR, so
// every position must be written at most once.  Put panics if the write
// would extend past the capacity given to [New].
func (p *Packer) Put(bitOffset int, value uint32, numBits int) int {
	if numBits < 1 || numBits > 32 {
		panic(fmt.Sprintf("bitpack: invalid sample width %d", numBits))
	}
	end := bitOffset + numBits
	if bitOffset < 0 || end > p.numBits {
		panic(fmt.Sprintf("bitpack: %d bits at offset %d exceed capacity of %d bits",
			numBits, bitOffset, p.numBits))
	}
	if numBits < 32 {
		value &= 1<<numBits - 1
	}

	// fast path for byte-aligned 8 bit writes
	if numBits == 8 && bitOffset&7 == 0 {
		p.bytes[bitOffset>>3] |= byte(value)
		return end
	}

	bitsToDo := numBits
	pos := bitOffset
	for bitsToDo > 0 {
		availableBits := 8 - pos&7
		k := min(bitsToDo, availableBits)

		shift := bitsToDo - k
		bitsToWrite := byte((value >> shift) & (1<<k - 1))

		p.bytes[pos>>3] |= bitsToWrite << (availableBits - k)

		pos += k
		bitsToDo -= k
	}
	return end
}

// Bytes returns the packed data.
// The returned slice shares storage with the packer.
func (p *Packer) Bytes() []byte {
	return p.bytes
}

// Cap returns the capacity of the packer in bits.
func (p *Packer) Cap() int {
	return p.numBits
}
