// seehuhn.de/go/mandelbrot - escape-time fractal rendering
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

// Command genpdf writes every test case as a PDF file and converts the PDF
// back to PNG using Ghostscript.  Comparing the PNG with the direct
// rendering checks the PDF writer.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mandelbrot"
	"seehuhn.de/go/mandelbrot/imagefile"
	"seehuhn.de/go/mandelbrot/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, name string) error {
	r, err := mandelbrot.NewRenderer(mandelbrot.ExampleConfig(tc))
	if err != nil {
		return err
	}
	img := r.Image()

	pngPath := filepath.Join(refDir, name+".png")
	if err := imagefile.WriteFile(pngPath, img, imagefile.PNG); err != nil {
		return err
	}

	pdfPath := filepath.Join(refDir, name+".pdf")
	if err := imagefile.WritePDF(pdfPath, img); err != nil {
		return err
	}
	return renderPNG(pdfPath, filepath.Join(refDir, name+"_gs.png"))
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=png16m: 24-bit RGB
	// -r72: 72 DPI (1 point = 1 pixel)
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		"-r72",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
