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

package chunk

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssembleIEND(t *testing.T) {
	got := Assemble(IEND, nil)
	want := []byte{0, 0, 0, 0, 'I', 'E', 'N', 'D', 0xAE, 0x42, 0x60, 0x82}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("IEND chunk mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLayout(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	got := Assemble(IDAT, payload)
	if len(got) != len(payload)+Overhead {
		t.Fatalf("chunk has %d bytes, expected %d", len(got), len(payload)+Overhead)
	}
	if diff := cmp.Diff([]byte{0, 0, 0, 5, 'I', 'D', 'A', 'T'}, got[:8]); diff != "" {
		t.Errorf("chunk head mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(payload, got[8:13]); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteMatchesAssemble(t *testing.T) {
	for _, payload := range [][]byte{nil, {0}, bytes.Repeat([]byte("png"), 1000)} {
		buf := &bytes.Buffer{}
		if err := Write(buf, IDAT, payload); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Assemble(IDAT, payload), buf.Bytes()); diff != "" {
			t.Errorf("Write and Assemble differ (-want +got):\n%s", diff)
		}
	}
}

func TestHeader(t *testing.T) {
	h := &Header{Width: 3, Height: 4, BitDepth: 2, ColorType: 0}
	payload := h.Encode()
	want := []byte{0, 0, 0, 3, 0, 0, 0, 4, 2, 0, 0, 0, 0}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("IHDR payload mismatch (-want +got):\n%s", diff)
	}

	h2, err := ParseHeader(payload)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(h, h2); diff != "" {
		t.Errorf("header round trip (-want +got):\n%s", diff)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	good := (&Header{Width: 1, Height: 1, BitDepth: 8, ColorType: 6}).Encode()
	tests := []struct {
		name   string
		modify func([]byte) []byte
	}{
		{"short", func(b []byte) []byte { return b[:12] }},
		{"zero width", func(b []byte) []byte { b[3] = 0; return b }},
		{"huge height", func(b []byte) []byte { b[4] = 0x80; return b }},
		{"compression", func(b []byte) []byte { b[10] = 1; return b }},
		{"filter method", func(b []byte) []byte { b[11] = 1; return b }},
		{"interlace", func(b []byte) []byte { b[12] = 1; return b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tt.modify(bytes.Clone(good))
			if _, err := ParseHeader(payload); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	if s := IHDR.String(); s != "IHDR" {
		t.Errorf("IHDR.String() = %q", s)
	}
	if s := (Type{'a', 0, 'b', 'c'}).String(); s != `"a\x00bc"` {
		t.Errorf("unexpected string %s", s)
	}
	if !IDAT.IsCritical() || (Type{'t', 'E', 'X', 't'}).IsCritical() {
		t.Error("wrong critical bit")
	}
}

func testFile() []byte {
	buf := &bytes.Buffer{}
	buf.Write(Signature[:])
	buf.Write(Assemble(IHDR, (&Header{Width: 2, Height: 2, BitDepth: 8, ColorType: 2}).Encode()))
	buf.Write(Assemble(IDAT, []byte{0x78, 0x9c, 1, 2, 3}))
	buf.Write(Assemble(IEND, nil))
	return buf.Bytes()
}

func TestReader(t *testing.T) {
	data := testFile()
	// trailing garbage after IEND is ignored
	data = append(data, "junk"...)

	r := NewReader(bytes.NewReader(data))
	var types []string
	var positions []int64
	for {
		c, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		types = append(types, c.Type.String())
		positions = append(positions, c.Pos)
	}

	if diff := cmp.Diff([]string{"IHDR", "IDAT", "IEND"}, types); diff != "" {
		t.Errorf("chunk types (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{8, 33, 50}, positions); diff != "" {
		t.Errorf("chunk positions (-want +got):\n%s", diff)
	}
}

func TestReaderErrors(t *testing.T) {
	good := testFile()
	tests := []struct {
		name   string
		modify func([]byte) []byte
	}{
		{"empty", func(b []byte) []byte { return nil }},
		{"bad signature", func(b []byte) []byte { b[1] = 'X'; return b }},
		{"bad crc", func(b []byte) []byte { b[len(b)-20] ^= 1; return b }},
		{"truncated", func(b []byte) []byte { return b[:len(b)-3] }},
		{"missing IEND", func(b []byte) []byte { return b[:len(b)-12] }},
		{"huge length", func(b []byte) []byte { b[8] = 0xFF; return b }},
		{"bad type", func(b []byte) []byte { b[13] = '1'; return b }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.modify(bytes.Clone(good))))
			var err error
			for err == nil {
				_, err = r.Next()
			}
			var mErr *MalformedError
			if !errors.As(err, &mErr) {
				t.Errorf("expected MalformedError, got %v", err)
			}
		})
	}
}

func TestReaderLimit(t *testing.T) {
	r := NewReader(bytes.NewReader(testFile()))
	r.Limit = 4
	_, err := r.Next()
	if err == nil {
		t.Error("expected error for IHDR chunk longer than Limit")
	}
}
