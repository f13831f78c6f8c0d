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

package mandelbrot

// MaxIterations is the default iteration budget. A sample which has not
// escaped after this many steps is treated as a member of the set.
const MaxIterations = 40

// escapeRadius2 is the squared escape radius.
const escapeRadius2 = 4.0

// Escape returns the number of iterations of z ← z² + c, with c = x0 + i·y0
// and z starting at 0, which are needed until |z|² exceeds 4.
//
// The result is in the range [0, maxIterations].  A return value of
// maxIterations means that the orbit stayed bounded for the whole budget.
// Samples with |c|² > 4 return 0, since they lie outside the escape
// radius before the first step.
func Escape(x0, y0 float64, maxIterations int) int {
	if maxIterations <= 0 || x0*x0+y0*y0 > escapeRadius2 {
		return 0
	}

	// x2 and y2 hold the squares of x and y, so that each step needs only
	// three multiplications.
	var x, y, x2, y2 float64
	it := 0
	for x2+y2 <= escapeRadius2 && it < maxIterations {
		y = (x+x)*y + y0
		x = x2 - y2 + x0
		x2 = x * x
		y2 = y * y
		it++
	}
	return it
}
