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

// Package mandelbrot renders the Mandelbrot set into caller-owned RGBA
// buffers.
//
// Each pixel centre is mapped into a rectangle of the complex plane, the
// escape time of the orbit of z ← z² + c is computed, and the count is
// turned into a colour by a two-piece HSV gradient. The output is always
// width*height*4 bytes, row-major, in R, G, B, A order; see [BufferSize].
//
// The package never allocates the output buffer on behalf of [Fill] and
// never keeps a reference to it after the call returns.
package mandelbrot

//go:generate go run ./testcases/export

import "seehuhn.de/go/mandelbrot/testcases"

// ExampleConfig returns the renderer configuration for a test case.
func ExampleConfig(tc testcases.TestCase) Config {
	cfg := DefaultConfig()
	cfg.View = tc.View
	cfg.Width = tc.Width
	cfg.Height = tc.Height
	if tc.MaxIterations > 0 {
		cfg.MaxIterations = tc.MaxIterations
	}
	if tc.MaxAtTop {
		cfg.Orientation = MaxAtTop
	}
	if tc.Unpainted {
		cfg.Palette.Inside = InsideUnpainted
	}
	return cfg
}

// RenderExample renders a test case into an RGBA buffer of
// BufferSize(tc.Width, tc.Height) bytes, in row-major order.
func RenderExample(tc testcases.TestCase, buf []byte) error {
	r, err := NewRenderer(ExampleConfig(tc))
	if err != nil {
		return err
	}
	return r.Fill(buf)
}
