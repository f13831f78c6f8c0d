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

import (
	"fmt"
	"image/color"
	"math"
)

// HSVToRGB converts a colour from HSV to RGB.
//
// The hue h is measured in degrees and is reduced modulo 360, saturation
// and value are in the range [0, 1].  The returned channels are in [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := v * s
	h1 := h / 60
	x := c * (1 - math.Abs(math.Mod(h1, 2)-1))

	var r1, g1, b1 float64
	switch {
	case h1 < 1:
		r1, g1, b1 = c, x, 0
	case h1 < 2:
		r1, g1, b1 = x, c, 0
	case h1 < 3:
		r1, g1, b1 = 0, c, x
	case h1 < 4:
		r1, g1, b1 = 0, x, c
	case h1 < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := v - c
	return r1 + m, g1 + m, b1 + m
}

// ChannelByte converts a colour channel in [0, 1] to a byte.
//
// The conversion truncates: 0.999 maps to 254, not 255.  Values outside
// [0, 1] are clamped.
func ChannelByte(c float64) byte {
	v := 255 * c
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}

// InsidePolicy selects how samples which reach the iteration cap are
// written.
type InsidePolicy int

const (
	// InsideBlack paints capped samples opaque black.
	InsideBlack InsidePolicy = iota

	// InsideUnpainted leaves the colour channels of capped samples
	// untouched and only sets alpha to 255.  On a zeroed buffer this
	// gives the same result as InsideBlack.
	InsideUnpainted
)

func (p InsidePolicy) String() string {
	switch p {
	case InsideBlack:
		return "black"
	case InsideUnpainted:
		return "unpainted"
	default:
		return fmt.Sprintf("InsidePolicy(%d)", int(p))
	}
}

// gradientSplit is the normalised iteration count where the gradient
// switches from the first hue to the second.
const gradientSplit = 0.5

// Palette maps escape times to colours.
//
// Escaped samples run through a two-piece gradient: for the lower half of
// the iteration range the hue is FromHue, saturation falls from 1 to 0 and
// value rises from 0.25 to 1; for the upper half the hue is ToHue,
// saturation rises from 0 to 1 and value falls back to 0.25.
type Palette struct {
	FromHue float64 // hue in degrees for short escape times
	ToHue   float64 // hue in degrees for long escape times
	Inside  InsidePolicy
}

// DefaultPalette returns the blue to yellow palette.
func DefaultPalette() Palette {
	return Palette{
		FromHue: 240,
		ToHue:   60,
		Inside:  InsideBlack,
	}
}

// HSV returns the gradient colour for an escape time, before conversion
// to RGB.  The result is only meaningful for iterations < maxIterations.
func (p Palette) HSV(iterations, maxIterations int) (h, s, v float64) {
	n := float64(iterations) / float64(maxIterations)
	if n <= gradientSplit {
		return p.FromHue, 1 - 2*n, 0.25 + 1.5*n
	}
	return p.ToHue, 2*n - 1, 1.75 - 1.5*n
}

// Color returns the colour for an escape time.
//
// The second return value is false if the colour channels of the pixel
// must be left unchanged, which happens for capped samples under
// InsideUnpainted.  Alpha is always 255.
func (p Palette) Color(iterations, maxIterations int) (color.RGBA, bool) {
	if iterations >= maxIterations {
		return color.RGBA{A: 255}, p.Inside == InsideBlack
	}
	r, g, b := HSVToRGB(p.HSV(iterations, maxIterations))
	return color.RGBA{
		R: ChannelByte(r),
		G: ChannelByte(g),
		B: ChannelByte(b),
		A: 255,
	}, true
}
