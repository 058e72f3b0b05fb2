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
	"fmt"

	"seehuhn.de/go/png/internal/filter/predict"
)

// InvalidInputError indicates that the pixel data, the image dimensions or
// the pixel format passed to the encoder are not consistent.
type InvalidInputError struct {
	Reason string
}

func (err *InvalidInputError) Error() string {
	return "png: invalid input: " + err.Reason
}

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedBitDepthError indicates that a bit depth is not allowed for a
// color type.
type UnsupportedBitDepthError struct {
	ColorType ColorType
	Depth     int
}

func (err *UnsupportedBitDepthError) Error() string {
	return fmt.Sprintf("png: bit depth %d is not supported for color type %s",
		err.Depth, err.ColorType)
}

// UnsupportedColorTypeError indicates an unknown PNG color type code.
type UnsupportedColorTypeError struct {
	Code byte
}

func (err *UnsupportedColorTypeError) Error() string {
	return fmt.Sprintf("png: unsupported color type %d", err.Code)
}

// UnsupportedFilterTypeError indicates a filter type byte outside the
// range 0 to 4.
type UnsupportedFilterTypeError = predict.UnsupportedFilterTypeError
