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
	"slices"
)

// ColorType is a PNG color type, as stored in the IHDR chunk.
type ColorType uint8

// These are the color types defined by the PNG standard.
const (
	ColorTypeGray      ColorType = 0
	ColorTypeRGB       ColorType = 2
	ColorTypePalette   ColorType = 3
	ColorTypeGrayAlpha ColorType = 4
	ColorTypeRGBA      ColorType = 6
)

type colorTypeInfo struct {
	name     string
	channels int
	depths   []int
}

var colorTypes = map[ColorType]*colorTypeInfo{
	ColorTypeGray:      {"Grayscale", 1, []int{1, 2, 4, 8, 16}},
	ColorTypeRGB:       {"RGB", 3, []int{8, 16}},
	ColorTypePalette:   {"Palette", 1, []int{1, 2, 4, 8}},
	ColorTypeGrayAlpha: {"GrayscaleAlpha", 2, []int{8, 16}},
	ColorTypeRGBA:      {"RGBAlpha", 4, []int{8, 16}},
}

// ColorTypeFromCode returns the color type for an IHDR color type byte.
func ColorTypeFromCode(code byte) (ColorType, error) {
	ct := ColorType(code)
	if _, ok := colorTypes[ct]; !ok {
		return 0, &UnsupportedColorTypeError{Code: code}
	}
	return ct, nil
}

func (ct ColorType) String() string {
	if info, ok := colorTypes[ct]; ok {
		return info.name
	}
	return fmt.Sprintf("ColorType(%d)", uint8(ct))
}

// Channels returns the number of samples per pixel.
// For palette images this is the single palette index.
func (ct ColorType) Channels() int {
	if info, ok := colorTypes[ct]; ok {
		return info.channels
	}
	return 0
}

// Depths returns the bit depths allowed for the color type, in increasing
// order.
func (ct ColorType) Depths() []int {
	if info, ok := colorTypes[ct]; ok {
		return slices.Clone(info.depths)
	}
	return nil
}

// ValidateDepth checks whether depth is allowed for the color type.
func (ct ColorType) ValidateDepth(depth int) error {
	info, ok := colorTypes[ct]
	if !ok {
		return &UnsupportedColorTypeError{Code: byte(ct)}
	}
	if !slices.Contains(info.depths, depth) {
		return &UnsupportedBitDepthError{ColorType: ct, Depth: depth}
	}
	return nil
}

// BytesPerPixel returns the filter distance for the given bit depth: the
// number of bytes per complete pixel, rounded up.  For depths below 8 this
// is 1.
func (ct ColorType) BytesPerPixel(depth int) int {
	return (ct.Channels()*depth + 7) / 8
}

// RowBytes returns the length in bytes of an unfiltered scanline of the
// given width.
func (ct ColorType) RowBytes(width, depth int) int {
	return (width*ct.Channels()*depth + 7) / 8
}
