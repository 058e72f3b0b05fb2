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

// Package predict implements the PNG scanline filters.
//
// Each filter predicts a byte from up to three of its neighbours: the
// corresponding byte of the pixel to the left, the byte directly above in
// the previous row, and the byte above the left neighbour.  The filtered
// value is the difference between the actual and the predicted byte,
// computed modulo 256.  Neighbours outside the image are taken to be zero.
package predict

import (
	"fmt"
	"strings"
)

// Type identifies a PNG filter.
type Type uint8

// These are the supported filter types, in the order used to break ties
// during dynamic filter selection.
const (
	// Dynamic selects, for each row, the filter which gives the smallest
	// sum of absolute differences.  Dynamic is never written to a file.
	Dynamic Type = iota
	None
	Sub
	Up
	Average
	Paeth
)

var typeNames = [...]string{
	Dynamic: "Dynamic",
	None:    "None",
	Sub:     "Sub",
	Up:      "Up",
	Average: "Average",
	Paeth:   "Paeth",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Code returns the filter type byte which precedes a filtered scanline.
// Code panics if t is Dynamic or not a valid filter type.
func (t Type) Code() byte {
	if t < None || t > Paeth {
		panic(fmt.Sprintf("predict: %s has no filter type code", t))
	}
	return byte(t - None)
}

// FromCode returns the filter type for a filter type byte.
func FromCode(code byte) (Type, error) {
	if code > Paeth.Code() {
		return 0, &UnsupportedFilterTypeError{Code: code}
	}
	return None + Type(code), nil
}

// ParseType returns the filter type with the given name.
// Names are matched case-insensitively.
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if strings.EqualFold(name, n) {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("unknown filter type %q", name)
}

// UnsupportedFilterTypeError is returned when a filter type byte or value
// does not correspond to one of the five PNG filters.
type UnsupportedFilterTypeError struct {
	Code byte
}

func (err *UnsupportedFilterTypeError) Error() string {
	return fmt.Sprintf("unsupported filter type %d", err.Code)
}

// Apply filters a scanline using filter type t and returns the filtered bytes.
// The previous row prev must either be nil (for the first row of an image)
// or have the same length as row.  Apply panics if t is Dynamic.
func Apply(prev, row []byte, bpp int, t Type) []byte {
	out := make([]byte, len(row))
	apply(out, prev, row, bpp, t)
	return out
}

func apply(out, prev, row []byte, bpp int, t Type) {
	switch t {
	case None:
		copy(out, row)
	case Sub:
		for i := range row {
			var left byte
			if i >= bpp {
				left = row[i-bpp]
			}
			out[i] = row[i] - left
		}
	case Up:
		if prev == nil {
			copy(out, row)
			return
		}
		for i := range row {
			out[i] = row[i] - prev[i]
		}
	case Average:
		for i := range row {
			var left, up byte
			if i >= bpp {
				left = row[i-bpp]
			}
			if prev != nil {
				up = prev[i]
			}
			out[i] = row[i] - byte((int(left)+int(up))/2)
		}
	case Paeth:
		for i := range row {
			var left, up, upperLeft byte
			if i >= bpp {
				left = row[i-bpp]
			}
			if prev != nil {
				up = prev[i]
				if i >= bpp {
					upperLeft = prev[i-bpp]
				}
			}
			out[i] = row[i] - paethPredictor(left, up, upperLeft)
		}
	default:
		panic(fmt.Sprintf("predict: cannot apply filter %s", t))
	}
}

// Undo reverses the effect of [Apply].  The previous row prev is the
// reconstructed (unfiltered) previous row, or nil for the first row.
// Undo panics if t is Dynamic.
func Undo(prev, filtered []byte, bpp int, t Type) []byte {
	out := make([]byte, len(filtered))
	undo(out, prev, filtered, bpp, t)
	return out
}

func undo(out, prev, filtered []byte, bpp int, t Type) {
	for i := range filtered {
		var predictor byte

		switch t {
		case None:
			// pass
		case Sub:
			if i >= bpp {
				predictor = out[i-bpp]
			}
		case Up:
			if prev != nil {
				predictor = prev[i]
			}
		case Average:
			var left, up byte
			if i >= bpp {
				left = out[i-bpp]
			}
			if prev != nil {
				up = prev[i]
			}
			predictor = byte((int(left) + int(up)) / 2)
		case Paeth:
			var left, up, upperLeft byte
			if i >= bpp {
				left = out[i-bpp]
			}
			if prev != nil {
				up = prev[i]
				if i >= bpp {
					upperLeft = prev[i-bpp]
				}
			}
			predictor = paethPredictor(left, up, upperLeft)
		default:
			panic(fmt.Sprintf("predict: cannot undo filter %s", t))
		}

		out[i] = filtered[i] + predictor
	}
}

// Choose applies all five filters to a scanline and returns the one whose
// output has the smallest [Score].  Ties are broken in favour of the filter
// which comes first in the order None, Sub, Up, Average, Paeth.
func Choose(prev, row []byte, bpp int) (Type, []byte) {
	best := None
	bestOut := Apply(prev, row, bpp, None)
	bestScore := Score(bestOut)

	buf := make([]byte, len(row))
	for t := Sub; t <= Paeth; t++ {
		apply(buf, prev, row, bpp, t)
		if s := Score(buf); s < bestScore {
			best, bestScore = t, s
			bestOut, buf = buf, bestOut
		}
	}
	return best, bestOut
}

// Score returns the sum of the absolute values of the filtered bytes,
// interpreted as signed integers in the range -128 to 127.
func Score(filtered []byte) int {
	sum := 0
	for _, b := range filtered {
		v := int(int8(b))
		if v < 0 {
			v = -v
		}
		sum += v
	}
	return sum
}

// filterRow writes the filter type byte followed by the filtered row to out.
// The length of out must be len(row)+1.
func filterRow(out, prev, row []byte, bpp int, t Type) {
	if t == Dynamic {
		var filtered []byte
		t, filtered = Choose(prev, row, bpp)
		out[0] = t.Code()
		copy(out[1:], filtered)
		return
	}
	out[0] = t.Code()
	apply(out[1:], prev, row, bpp, t)
}

// paethPredictor implements the Paeth prediction algorithm
func paethPredictor(a, b, c byte) byte {
	// a = left, b = above, c = upper left
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
