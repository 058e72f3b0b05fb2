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

import "seehuhn.de/go/png/internal/bitpack"

// grayLevels lists the grayscale bit depths in increasing order, together
// with the spacing of the representable gray levels on the 16-bit scale.
// A 16-bit gray value v can be stored exactly at depth d if v is a
// multiple of the spacing for d.
var grayLevels = [...]struct {
	depth   int
	spacing uint32
}{
	{1, 65535},
	{2, 21845},
	{4, 4369},
	{8, 256},
	{16, 1},
}

// grayDepth returns the smallest bit depth which represents all gray
// values exactly.  Only the low 16 bits of each value are used.
func grayDepth(pixels []uint32) int {
	// Every depth starts out as a candidate.  Depth 16 is never removed.
	var excluded [len(grayLevels)]bool
	numLeft := len(grayLevels)

	for _, v := range pixels {
		v &= 0xFFFF
		for i := range len(grayLevels) - 1 {
			if !excluded[i] && v%grayLevels[i].spacing != 0 {
				excluded[i] = true
				numLeft--
			}
		}
		if numLeft == 1 {
			break
		}
	}

	for i, l := range grayLevels {
		if !excluded[i] {
			return l.depth
		}
	}
	panic("unreachable")
}

func convertGray(pixels []uint32, width, height int) *ImageData {
	depth := grayDepth(pixels)
	var spacing uint32
	for _, l := range grayLevels {
		if l.depth == depth {
			spacing = l.spacing
		}
	}

	res := &ImageData{
		ColorType: ColorTypeGray,
		BitDepth:  depth,
		Width:     width,
		Height:    height,
		Scanlines: make([][]byte, height),
	}
	for y := range height {
		p := bitpack.New(width * depth)
		pos := 0
		for _, v := range pixels[y*width : (y+1)*width] {
			pos = p.Put(pos, (v&0xFFFF)/spacing, depth)
		}
		res.Scanlines[y] = p.Bytes()
	}
	return res
}
