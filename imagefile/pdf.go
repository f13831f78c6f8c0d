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

package imagefile

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// run is a horizontal sequence of pixels with the same colour.
type run struct {
	x, n    int
	r, g, b uint8
}

// rowRuns appends the colour runs of row y of img to runs.  Alpha is
// ignored.
func rowRuns(runs []run, img *image.RGBA, y int) []run {
	b := img.Bounds()
	row := img.Pix[(y-b.Min.Y)*img.Stride:]
	for x := range b.Dx() {
		p := row[4*x : 4*x+3]
		if k := len(runs) - 1; k >= 0 && runs[k].x+runs[k].n == x &&
			runs[k].r == p[0] && runs[k].g == p[1] && runs[k].b == p[2] {
			runs[k].n++
			continue
		}
		runs = append(runs, run{x: x, n: 1, r: p[0], g: p[1], b: p[2]})
	}
	return runs
}

// WritePDF writes img as a single-page PDF file, one point per pixel.
// Each row is drawn as filled rectangles in DeviceRGB, merging
// neighbouring pixels of the same colour.
func WritePDF(path string, img *image.RGBA) error {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, raster rows start at the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	var runs []run
	for y := range height {
		runs = rowRuns(runs[:0], img, b.Min.Y+y)
		for _, r := range runs {
			page.SetFillColor(color.DeviceRGB{
				float64(r.r) / 255,
				float64(r.g) / 255,
				float64(r.b) / 255,
			})
			page.Rectangle(float64(r.x), float64(y), float64(r.n), 1)
			page.Fill()
		}
	}

	return page.Close()
}
