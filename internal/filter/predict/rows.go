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
	"fmt"
	"sync"
)

// FilterRows filters all scanlines of an image and returns the concatenation
// of the tagged, filtered rows.  The output is identical to what [NewWriter]
// produces for the same rows.
//
// Since the filter for a row only depends on the unfiltered rows, all rows
// can be filtered independently.  If workers is greater than one, up to
// workers goroutines are used.
func FilterRows(rows [][]byte, p *Params, workers int) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rowBytes := p.RowBytes()
	for y, row := range rows {
		if len(row) != rowBytes {
			return nil, fmt.Errorf("row %d has %d bytes, expected %d", y, len(row), rowBytes)
		}
	}

	stride := rowBytes + 1
	out := make([]byte, len(rows)*stride)
	bpp := p.BytesPerPixel()
	t := p.rowType()

	filterOne := func(y int) {
		var prev []byte
		if y > 0 {
			prev = rows[y-1]
		}
		filterRow(out[y*stride:(y+1)*stride], prev, rows[y], bpp, t)
	}

	workers = min(workers, len(rows))
	if workers <= 1 {
		for y := range rows {
			filterOne(y)
		}
		return out, nil
	}

	var wg sync.WaitGroup
	for k := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := k; y < len(rows); y += workers {
				filterOne(y)
			}
		}()
	}
	wg.Wait()

	return out, nil
}
