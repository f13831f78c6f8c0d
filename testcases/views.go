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

// overviewCases show the whole set.
var overviewCases = []TestCase{
	{
		Name:   "canvas",
		View:   view(-2.1, 0.6, -1.25, 1.25),
		Width:  140,
		Height: 120,
	},
	{
		Name:     "canvas_flipped",
		View:     view(-2.1, 0.6, -1.25, 1.25),
		Width:    140,
		Height:   120,
		MaxAtTop: true,
	},
	{
		Name:      "canvas_unpainted",
		View:      view(-2.1, 0.6, -1.25, 1.25),
		Width:     140,
		Height:    120,
		Unpainted: true,
	},
	{
		Name:   "square",
		View:   view(-2, 1, -1.5, 1.5),
		Width:  120,
		Height: 120,
	},
	{
		Name:          "square_deep",
		View:          view(-2, 1, -1.5, 1.5),
		Width:         120,
		Height:        120,
		MaxIterations: 200,
	},
}

// landmarkCases zoom into well-known regions near the boundary.
var landmarkCases = []TestCase{
	// dense filaments and repeating curls
	{
		Name:          "seahorse_valley",
		View:          view(-0.8, -0.7, 0.05, 0.15),
		Width:         96,
		Height:        96,
		MaxIterations: 120,
	},
	// large bulb with trunk-like tendrils
	{
		Name:          "elephant_valley",
		View:          view(0.25, 0.35, -0.05, 0.05),
		Width:         96,
		Height:        96,
		MaxIterations: 120,
	},
	// small copy of the set on the real axis
	{
		Name:          "needle_minibrot",
		View:          view(-1.80, -1.72, -0.04, 0.04),
		Width:         96,
		Height:        96,
		MaxIterations: 160,
	},
}

// smallCases exercise odd and degenerate raster sizes.
var smallCases = []TestCase{
	{
		Name:   "single_pixel",
		View:   view(-2.1, 0.6, -1.25, 1.25),
		Width:  1,
		Height: 1,
	},
	{
		Name:   "four_by_four",
		View:   view(-2.1, 0.6, -1.25, 1.25),
		Width:  4,
		Height: 4,
	},
	{
		Name:   "single_row",
		View:   view(-2.1, 0.6, -1.25, 1.25),
		Width:  57,
		Height: 1,
	},
	{
		Name:   "single_column",
		View:   view(-2.1, 0.6, -1.25, 1.25),
		Width:  1,
		Height: 43,
	},
	{
		Name:   "far_outside",
		View:   view(3, 5, 3, 5),
		Width:  8,
		Height: 8,
	},
}
