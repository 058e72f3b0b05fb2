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

// Pngenc converts images to PNG files and inspects the structure of PNG
// files.
//
// Usage:
//
//	pngenc encode [flags] <input>
//	pngenc inspect <file.png>
//	pngenc gradient [flags]
//	pngenc formats
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("pngenc: ")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
