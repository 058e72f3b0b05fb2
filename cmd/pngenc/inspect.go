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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seehuhn.de/go/png"
	"seehuhn.de/go/png/internal/chunk"
	"seehuhn.de/go/png/internal/filter/predict"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.png>",
	Short: "Print the chunk structure of a PNG file",
	Long: `Walk the chunks of a PNG file, check all CRCs, and print the image
header, the chunk sizes, and how often each scanline filter is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	fd, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer fd.Close()

	p := message.NewPrinter(language.English)

	var hdr *chunk.Header
	idat := &bytes.Buffer{}
	var fileSize int64
	r := chunk.NewReader(fd)
	for {
		c, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		fileSize = c.Pos + int64(len(c.Data)) + chunk.Overhead

		critical := ""
		if c.Type.IsCritical() {
			critical = "critical"
		}
		p.Printf("%8d  %s %10d bytes  crc %08X  %s\n",
			c.Pos, c.Type, len(c.Data), c.CRC, critical)

		switch c.Type {
		case chunk.IHDR:
			hdr, err = chunk.ParseHeader(c.Data)
			if err != nil {
				return err
			}
		case chunk.IDAT:
			idat.Write(c.Data)
		}
	}
	if hdr == nil {
		return errors.New("missing IHDR chunk")
	}

	fmt.Println()
	ct, err := png.ColorTypeFromCode(hdr.ColorType)
	if err != nil {
		return err
	}
	p.Printf("size:       %d x %d\n", hdr.Width, hdr.Height)
	p.Printf("color type: %s (%d)\n", ct, hdr.ColorType)
	p.Printf("bit depth:  %d\n", hdr.BitDepth)
	if err := ct.ValidateDepth(int(hdr.BitDepth)); err != nil {
		return err
	}
	p.Printf("file size:  %d bytes\n", fileSize)

	return showFilters(p, hdr, ct, idat.Bytes())
}

// showFilters decompresses the image data and counts the filter types
// used for the scanlines.
func showFilters(p *message.Printer, hdr *chunk.Header, ct png.ColorType, idat []byte) error {
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return fmt.Errorf("IDAT: %w", err)
	}
	defer zr.Close()
	filtered, err := io.ReadAll(zr)
	if err != nil {
		return fmt.Errorf("IDAT: %w", err)
	}

	stride := ct.RowBytes(int(hdr.Width), int(hdr.BitDepth)) + 1
	want := stride * int(hdr.Height)
	p.Printf("image data: %d bytes compressed, %d bytes raw (%.1f%%)\n",
		len(idat), len(filtered), 100*float64(len(idat))/float64(max(len(filtered), 1)))
	if len(filtered) != want {
		return fmt.Errorf("expected %d bytes of image data, found %d", want, len(filtered))
	}

	counts := make(map[predict.Type]int)
	for y := range int(hdr.Height) {
		t, err := predict.FromCode(filtered[y*stride])
		if err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
		counts[t]++
	}
	for t := predict.None; t <= predict.Paeth; t++ {
		if counts[t] > 0 {
			p.Printf("  %-8s %d rows\n", t, counts[t])
		}
	}
	return nil
}
