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

// Package crc implements the CRC-32 checksum used to protect PNG chunks.
//
// The checksum uses the reflected polynomial 0xEDB88320, with the register
// pre- and post-conditioned by 0xFFFFFFFF.  This is the same checksum as
// used by zlib, gzip and Ethernet.
package crc

import "hash"

// Size is the size of a CRC-32 checksum in bytes.
const Size = 4

const poly = 0xEDB88320

var table = makeTable()

func makeTable() *[256]uint32 {
	t := new([256]uint32)
	for n := range t {
		c := uint32(n)
		for range 8 {
			if c&1 != 0 {
				c = poly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[n] = c
	}
	return t
}

// Update returns the result of adding the bytes in p to the crc.
// The crc is the raw register value, without the final inversion;
// start with 0xFFFFFFFF and invert the final result.
func Update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = table[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// Checksum returns the CRC-32 checksum of data.
func Checksum(data []byte) uint32 {
	return Update(0xFFFFFFFF, data) ^ 0xFFFFFFFF
}

// digest is a streaming CRC-32 computation.
type digest struct {
	crc uint32
}

// New returns a new hash.Hash32 computing the PNG CRC-32 checksum.
func New() hash.Hash32 {
	d := &digest{}
	d.Reset()
	return d
}

func (d *digest) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 {
	return d.crc ^ 0xFFFFFFFF
}

// Sum appends the big-endian checksum to b.
func (d *digest) Sum(b []byte) []byte {
	s := d.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *digest) Reset() {
	d.crc = 0xFFFFFFFF
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return 1
}
