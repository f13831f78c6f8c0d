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

package testcases

import (
	"seehuhn.de/go/geom/rect"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name          string    // lowercase a-z, 0-9 and _ only
	View          rect.Rect // region of the complex plane
	Width         int       // raster width in pixels
	Height        int       // raster height in pixels
	MaxIterations int       // iteration budget (zero means the default)
	MaxAtTop      bool      // place the upper imaginary bound in row 0
	Unpainted     bool      // leave the colour of interior pixels untouched
}

// view is a helper to create a view window from its bounds.
func view(xMin, xMax, yMin, yMax float64) rect.Rect {
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}
