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

// Package png writes PNG images from packed integer pixel data.
//
// The encoder takes a slice of pixels in one of the formats listed by
// [Formats], converts it to PNG scanlines, applies the PNG filters,
// compresses the filtered data, and frames the result as a PNG file
// consisting of the signature, an IHDR chunk, a single IDAT chunk and the
// IEND chunk.  For a given input and compressor the output is deterministic.
//
// The simplest way to use the package is the [Encode] function:
//
//	pixels := []uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF, 0xFFFFFFFF}
//	data, err := png.Encode(pixels, 2, 2, png.RGBA8888)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = os.WriteFile("out.png", data, 0o644)
//
// An [Encoder] can be used to select a fixed filter, to use a different
// DEFLATE implementation, or to filter the rows of large images in parallel:
//
//	enc, err := png.NewEncoder(&png.Options{
//		Filter:  png.FilterPaeth,
//		Workers: runtime.NumCPU(),
//	})
//
// Images from the standard library can be written using [EncodeImage].
//
// The package only writes files: there is no PNG decoder, no support for
// palette images or interlacing, and no ancillary chunks are written.
package png
