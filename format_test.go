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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormats(t *testing.T) {
	want := []string{
		"ARGB16", "ARGB8888", "GrayAlpha16", "GrayAlpha88", "Grayscale",
		"RGB16", "RGB888", "RGBA16", "RGBA8888",
	}
	if diff := cmp.Diff(want, Formats()); diff != "" {
		t.Errorf("Formats() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatByName(t *testing.T) {
	for _, name := range Formats() {
		f, err := FormatByName(name)
		if err != nil {
			t.Fatal(err)
		}
		if f.String() != name {
			t.Errorf("FormatByName(%q) = %s", name, f)
		}
	}

	f, err := FormatByName("argb8888")
	if err != nil || f != ARGB8888 {
		t.Errorf("lower case lookup failed: %s, %v", f, err)
	}

	if _, err := FormatByName("CMYK"); err == nil {
		t.Error("unknown format name accepted")
	}
}

func TestIntsPerPixel(t *testing.T) {
	want := map[ColorFormat]int{
		Grayscale:   1,
		RGB16:       3,
		ARGB16:      4,
		RGBA16:      4,
		RGB888:      1,
		ARGB8888:    1,
		RGBA8888:    1,
		GrayAlpha88: 1,
		GrayAlpha16: 2,
		0:           0,
	}
	for f, n := range want {
		if got := f.IntsPerPixel(); got != n {
			t.Errorf("%s.IntsPerPixel() = %d, want %d", f, got, n)
		}
	}
	if s := ColorFormat(99).String(); s != "ColorFormat(99)" {
		t.Errorf("unexpected name %q", s)
	}
}

func TestColorTypes(t *testing.T) {
	tests := []struct {
		code     byte
		channels int
		depths   []int
	}{
		{0, 1, []int{1, 2, 4, 8, 16}},
		{2, 3, []int{8, 16}},
		{3, 1, []int{1, 2, 4, 8}},
		{4, 2, []int{8, 16}},
		{6, 4, []int{8, 16}},
	}
	for _, tt := range tests {
		ct, err := ColorTypeFromCode(tt.code)
		if err != nil {
			t.Fatal(err)
		}
		if ct.Channels() != tt.channels {
			t.Errorf("%s: %d channels, want %d", ct, ct.Channels(), tt.channels)
		}
		if diff := cmp.Diff(tt.depths, ct.Depths()); diff != "" {
			t.Errorf("%s: depths (-want +got):\n%s", ct, diff)
		}
		for _, d := range []int{1, 2, 4, 8, 16} {
			err := ct.ValidateDepth(d)
			var depthErr *UnsupportedBitDepthError
			legal := err == nil
			if !legal && !errors.As(err, &depthErr) {
				t.Errorf("%s/%d: unexpected error %v", ct, d, err)
			}
		}
	}

	for _, code := range []byte{1, 5, 7, 255} {
		_, err := ColorTypeFromCode(code)
		var ctErr *UnsupportedColorTypeError
		if !errors.As(err, &ctErr) || ctErr.Code != code {
			t.Errorf("code %d: expected UnsupportedColorTypeError, got %v", code, err)
		}
	}
}

func TestBytesPerPixel(t *testing.T) {
	tests := []struct {
		ct    ColorType
		depth int
		want  int
	}{
		{ColorTypeGray, 1, 1},
		{ColorTypeGray, 4, 1},
		{ColorTypeGray, 16, 2},
		{ColorTypeRGB, 8, 3},
		{ColorTypeRGB, 16, 6},
		{ColorTypeGrayAlpha, 8, 2},
		{ColorTypeGrayAlpha, 16, 4},
		{ColorTypeRGBA, 8, 4},
		{ColorTypeRGBA, 16, 8},
	}
	for _, tt := range tests {
		if got := tt.ct.BytesPerPixel(tt.depth); got != tt.want {
			t.Errorf("%s.BytesPerPixel(%d) = %d, want %d", tt.ct, tt.depth, got, tt.want)
		}
	}
}
