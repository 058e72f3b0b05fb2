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
	"strings"

	"golang.org/x/exp/maps"
)

// ColorFormat describes how pixels are packed into the input slice.
type ColorFormat int

// These are the supported pixel formats.  Multi-letter channel names give
// the order of the channels, from the most significant to the least
// significant byte for 8-bit formats, and in slice order for 16-bit
// formats.  For 16-bit samples only the low 16 bits of each value are used.
const (
	// Grayscale uses one value per pixel, holding a 16-bit gray level.
	// The bit depth of the PNG file is the smallest depth which represents
	// all gray levels exactly.
	Grayscale ColorFormat = iota + 1

	// RGB16 uses three values per pixel: red, green, blue.
	RGB16

	// ARGB16 uses four values per pixel: alpha, red, green, blue.
	ARGB16

	// RGBA16 uses four values per pixel: red, green, blue, alpha.
	RGBA16

	// RGB888 uses one value per pixel, 0x00RRGGBB.
	RGB888

	// ARGB8888 uses one value per pixel, 0xAARRGGBB.
	ARGB8888

	// RGBA8888 uses one value per pixel, 0xRRGGBBAA.
	RGBA8888

	// GrayAlpha88 uses one value per pixel, 0xGGAA.
	GrayAlpha88

	// GrayAlpha16 uses two values per pixel: gray, alpha.
	GrayAlpha16
)

type formatInfo struct {
	name         string
	intsPerPixel int
	colorType    ColorType
	convert      func(pixels []uint32, width, height int) *ImageData
}

var formats = map[ColorFormat]*formatInfo{
	Grayscale:   {"Grayscale", 1, ColorTypeGray, convertGray},
	RGB16:       {"RGB16", 3, ColorTypeRGB, samples16(ColorTypeRGB, 0, 1, 2)},
	ARGB16:      {"ARGB16", 4, ColorTypeRGBA, samples16(ColorTypeRGBA, 1, 2, 3, 0)},
	RGBA16:      {"RGBA16", 4, ColorTypeRGBA, samples16(ColorTypeRGBA, 0, 1, 2, 3)},
	RGB888:      {"RGB888", 1, ColorTypeRGB, bytes8(ColorTypeRGB, 16, 8, 0)},
	ARGB8888:    {"ARGB8888", 1, ColorTypeRGBA, bytes8(ColorTypeRGBA, 16, 8, 0, 24)},
	RGBA8888:    {"RGBA8888", 1, ColorTypeRGBA, bytes8(ColorTypeRGBA, 24, 16, 8, 0)},
	GrayAlpha88: {"GrayAlpha88", 1, ColorTypeGrayAlpha, bytes8(ColorTypeGrayAlpha, 8, 0)},
	GrayAlpha16: {"GrayAlpha16", 2, ColorTypeGrayAlpha, samples16(ColorTypeGrayAlpha, 0, 1)},
}

var formatByName = make(map[string]ColorFormat, len(formats))

func init() {
	for f, info := range formats {
		formatByName[strings.ToLower(info.name)] = f
	}
}

func (f ColorFormat) String() string {
	if info, ok := formats[f]; ok {
		return info.name
	}
	return fmt.Sprintf("ColorFormat(%d)", int(f))
}

// IntsPerPixel returns the number of slice elements used for each pixel,
// or 0 if f is not a valid format.
func (f ColorFormat) IntsPerPixel() int {
	if info, ok := formats[f]; ok {
		return info.intsPerPixel
	}
	return 0
}

// ColorType returns the PNG color type written for the format.
func (f ColorFormat) ColorType() ColorType {
	if info, ok := formats[f]; ok {
		return info.colorType
	}
	return 0
}

// FormatByName returns the format with the given name.
// Names are matched case-insensitively.
func FormatByName(name string) (ColorFormat, error) {
	f, ok := formatByName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown pixel format %q", name)
	}
	return f, nil
}

// Formats returns the names of all supported pixel formats, sorted
// alphabetically.
func Formats() []string {
	names := make(map[string]bool, len(formats))
	for _, info := range formats {
		names[info.name] = true
	}
	res := maps.Keys(names)
	slices.Sort(res)
	return res
}
