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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// ErrInvalidParameters is returned when the view window, the raster size
// or the output buffer do not describe a valid rendering.  Nothing is
// written to the buffer in this case.
var ErrInvalidParameters = errors.New("invalid parameters")

// Default view and canvas.
var (
	// DefaultView is the region of the complex plane shown by default.
	DefaultView = rect.Rect{LLx: -2.1, LLy: -1.25, URx: 0.6, URy: 1.25}

	DefaultWidth  = 1400
	DefaultHeight = 1200
)

// Orientation selects the vertical direction of the raster.
type Orientation int

const (
	// MinAtTop places y_min at the top row, so that the image is
	// mirrored with respect to the usual mathematical orientation.
	MinAtTop Orientation = iota

	// MaxAtTop places y_max at the top row.
	MaxAtTop
)

func (o Orientation) String() string {
	switch o {
	case MinAtTop:
		return "min-at-top"
	case MaxAtTop:
		return "max-at-top"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Config describes one rendering.
type Config struct {
	// View is the sampled region of the complex plane.  LLx and URx are
	// the real bounds, LLy and URy the imaginary bounds.
	View rect.Rect

	// Width and Height give the raster size in pixels.
	Width, Height int

	// MaxIterations is the iteration budget per pixel.
	MaxIterations int

	Palette     Palette
	Orientation Orientation
}

// DefaultConfig returns the configuration of the classic overview image.
func DefaultConfig() Config {
	return Config{
		View:          DefaultView,
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxIterations: MaxIterations,
		Palette:       DefaultPalette(),
		Orientation:   MinAtTop,
	}
}

// Validate checks the configuration.  All errors wrap ErrInvalidParameters.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: raster size %dx%d", ErrInvalidParameters, c.Width, c.Height)
	}
	if c.Width > math.MaxInt/4/c.Height {
		return fmt.Errorf("%w: raster size %dx%d overflows", ErrInvalidParameters, c.Width, c.Height)
	}
	v := c.View
	for _, x := range []float64{v.LLx, v.LLy, v.URx, v.URy} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: non-finite view bound %g", ErrInvalidParameters, x)
		}
	}
	if !(v.LLx < v.URx) {
		return fmt.Errorf("%w: x range [%g, %g] is empty", ErrInvalidParameters, v.LLx, v.URx)
	}
	if !(v.LLy < v.URy) {
		return fmt.Errorf("%w: y range [%g, %g] is empty", ErrInvalidParameters, v.LLy, v.URy)
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w: iteration budget %d", ErrInvalidParameters, c.MaxIterations)
	}
	switch c.Orientation {
	case MinAtTop, MaxAtTop:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidParameters, c.Orientation)
	}
	switch c.Palette.Inside {
	case InsideBlack, InsideUnpainted:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidParameters, c.Palette.Inside)
	}
	return nil
}

// BufferSize returns the number of bytes needed for a width×height RGBA
// raster.  It returns 0 if either dimension is not positive.
func BufferSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * 4
}
