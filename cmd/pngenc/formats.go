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
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/png"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported pixel formats",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, name := range png.Formats() {
			f, err := png.FormatByName(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %d value(s) per pixel, written as %s\n",
				name, f.IntsPerPixel(), f.ColorType())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
