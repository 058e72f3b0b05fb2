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
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/png"
)

var encodeFlags struct {
	output   string
	format   string
	filter   string
	width    int
	workers  int
	hashName bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode <input>",
	Short: "Convert an image file to PNG",
	Long: `Decode an image (PNG, JPEG, GIF, BMP, TIFF or WebP), optionally resize
it, and write it as a PNG file using the selected pixel format and filter.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	fl := encodeCmd.Flags()
	fl.StringVarP(&encodeFlags.output, "output", "o", "", `output file, "-" for stdout (default: input name with .png)`)
	fl.StringVarP(&encodeFlags.format, "format", "f", "ARGB8888", "pixel format, see 'pngenc formats'")
	fl.StringVar(&encodeFlags.filter, "filter", "dynamic", "scanline filter: dynamic, none, sub, up, average or paeth")
	fl.IntVar(&encodeFlags.width, "width", 0, "resize to this width, keeping the aspect ratio")
	fl.IntVar(&encodeFlags.workers, "workers", 1, "number of goroutines used for filtering")
	fl.BoolVar(&encodeFlags.hashName, "hash-name", false, "name the output file after a hash of its contents")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(_ *cobra.Command, args []string) error {
	format, err := png.FormatByName(encodeFlags.format)
	if err != nil {
		return err
	}
	filter, err := png.ParseFilter(encodeFlags.filter)
	if err != nil {
		return err
	}
	enc, err := png.NewEncoder(&png.Options{
		Filter:  filter,
		Workers: encodeFlags.workers,
	})
	if err != nil {
		return err
	}

	inName := args[0]
	img, err := decodeFile(inName)
	if err != nil {
		return err
	}

	if w := encodeFlags.width; w > 0 && w != img.Bounds().Dx() {
		img = imaging.Resize(img, w, 0, imaging.Lanczos)
		b := img.Bounds()
		logVerbose("resized to %dx%d", b.Dx(), b.Dy())
	}

	buf := &bytes.Buffer{}
	err = enc.EncodeImage(buf, img, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", inName, err)
	}
	data := buf.Bytes()

	outName := encodeFlags.output
	if outName == "" {
		outName = strings.TrimSuffix(inName, filepath.Ext(inName)) + ".png"
	}
	if encodeFlags.hashName && outName != "-" {
		outName = filepath.Join(filepath.Dir(outName), contentName(data))
	}
	if outName == inName {
		return fmt.Errorf("output file %s would overwrite the input", outName)
	}

	return writeOutput(outName, data)
}

func decodeFile(name string) (image.Image, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, kind, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	b := img.Bounds()
	logVerbose("read %s image %dx%d from %s", kind, b.Dx(), b.Dy(), name)
	return img, nil
}

// contentName returns a file name derived from the xxHash64 of data.
func contentName(data []byte) string {
	return fmt.Sprintf("%016x.png", xxhash.Sum64(data))
}
