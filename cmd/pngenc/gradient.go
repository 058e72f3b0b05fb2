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
	"errors"

	"github.com/spf13/cobra"

	"seehuhn.de/go/png"
)

var gradientFlags struct {
	output string
	size   int
}

var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Write a test image with color and alpha gradients",
	Args:  cobra.NoArgs,
	RunE:  runGradient,
}

func init() {
	fl := gradientCmd.Flags()
	fl.StringVarP(&gradientFlags.output, "output", "o", "gradient.png", `output file, "-" for stdout`)
	fl.IntVar(&gradientFlags.size, "size", 256, "width and height of the image")
	rootCmd.AddCommand(gradientCmd)
}

func runGradient(_ *cobra.Command, _ []string) error {
	n := gradientFlags.size
	if n < 2 {
		return errors.New("size must be at least 2")
	}

	pixels := gradient(n)
	data, err := png.Encode(pixels, n, n, png.ARGB8888)
	if err != nil {
		return err
	}
	return writeOutput(gradientFlags.output, data)
}

// gradient returns an n×n ARGB8888 image.  Red increases from left to right,
// green from top to bottom, blue along the anti-diagonal and alpha
// decreases towards the bottom-right corner.
func gradient(n int) []uint32 {
	pixels := make([]uint32, 0, n*n)
	for y := range n {
		for x := range n {
			r := uint32(x * 255 / (n - 1))
			g := uint32(y * 255 / (n - 1))
			b := uint32((n - 1 - x + y) * 255 / (2 * (n - 1)))
			a := 255 - uint32((x+y)*127/(2*(n-1)))
			pixels = append(pixels, a<<24|r<<16|g<<8|b)
		}
	}
	return pixels
}
