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
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterRowsMatchesWriter(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cases := []Params{
		{Colors: 1, BitsPerComponent: 1, Columns: 13},
		{Colors: 1, BitsPerComponent: 8, Columns: 40, Type: Paeth},
		{Colors: 2, BitsPerComponent: 16, Columns: 9},
		{Colors: 3, BitsPerComponent: 8, Columns: 17},
		{Colors: 4, BitsPerComponent: 8, Columns: 5, Type: Average},
	}

	for _, p := range cases {
		name := fmt.Sprintf("%dx%d-%s", p.Colors, p.BitsPerComponent, p.Type)
		t.Run(name, func(t *testing.T) {
			rows := randomRows(rng, 23, p.RowBytes())
			want := encode(t, &p, bytes.Join(rows, nil))

			for _, workers := range []int{0, 1, 2, 3, 8, 100} {
				got, err := FilterRows(rows, &p, workers)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("workers=%d (-want +got):\n%s", workers, diff)
				}
			}
		})
	}
}

func TestFilterRowsEmpty(t *testing.T) {
	p := &Params{Colors: 1, BitsPerComponent: 8, Columns: 4}
	out, err := FilterRows(nil, p, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(out))
	}
}

func TestFilterRowsBadLength(t *testing.T) {
	p := &Params{Colors: 3, BitsPerComponent: 8, Columns: 2}
	rows := [][]byte{make([]byte, 6), make([]byte, 5)}
	_, err := FilterRows(rows, p, 2)
	if err == nil {
		t.Error("expected error for short row")
	}
}
