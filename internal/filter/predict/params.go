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
	"fmt"
)

// Params describes the scanline layout seen by the prediction filters.
type Params struct {
	// Colors is the number of samples per pixel.
	// Valid values: 1 (grayscale), 2 (grayscale with alpha), 3 (RGB),
	// or 4 (RGB with alpha).
	Colors int

	// BitsPerComponent is the number of bits used to represent each sample.
	// Valid values: 1, 2, 4, 8, or 16.  Values below 8 are only allowed
	// for a single sample per pixel.
	BitsPerComponent int

	// Columns is the width of the image in pixels.
	// Valid range: at least 1.
	Columns int

	// Type is the filter to apply to every row.
	// The zero value, [Dynamic], chooses a filter for each row separately.
	// For sub-byte samples, Dynamic always uses [None], since filtering
	// packed samples destroys the byte-level structure the filters rely on.
	Type Type
}

// Validate checks that the parameters describe a valid PNG scanline layout.
func (p *Params) Validate() error {
	if p.Colors < 1 || p.Colors > 4 {
		return fmt.Errorf("Colors must be between 1 and 4, got %d", p.Colors)
	}

	switch p.BitsPerComponent {
	case 1, 2, 4:
		if p.Colors != 1 {
			return fmt.Errorf("BitsPerComponent %d requires a single color, got %d",
				p.BitsPerComponent, p.Colors)
		}
	case 8, 16:
		// Valid values
	default:
		return fmt.Errorf("BitsPerComponent must be 1, 2, 4, 8, or 16, got %d", p.BitsPerComponent)
	}

	// Make sure that the row size in bits fits into an int32.
	maxCols := (1<<31 - 1) / p.bitsPerPixel()
	if p.Columns < 1 || p.Columns > maxCols {
		return errors.New("invalid Columns value")
	}

	if p.Type > Paeth {
		return fmt.Errorf("unsupported filter type %s", p.Type)
	}

	return nil
}

// Derived values used throughout the implementation
func (p *Params) bitsPerPixel() int {
	return p.Colors * p.BitsPerComponent
}

func (p *Params) bitsPerRow() int {
	return p.bitsPerPixel() * p.Columns
}

// RowBytes returns the number of bytes in an unfiltered scanline.
func (p *Params) RowBytes() int {
	return (p.bitsPerRow() + 7) / 8 // Round up to bytes
}

// BytesPerPixel returns the distance, in bytes, between a byte and the
// corresponding byte of the pixel to its left.  This is at least 1.
func (p *Params) BytesPerPixel() int {
	return (p.bitsPerPixel() + 7) / 8
}

// rowType returns the filter type used for the rows of an image.
func (p *Params) rowType() Type {
	if p.Type == Dynamic && p.BitsPerComponent < 8 {
		return None
	}
	return p.Type
}
