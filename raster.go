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
	"image"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Renderer fills RGBA rasters for a fixed configuration.  Create one
// instance per view and reuse it; the scratch row used by FillRows grows
// as needed but never shrinks.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg Config

	// toPlane maps pixel-grid coordinates to the complex plane.  The pixel
	// (i, j) is sampled at toPlane applied to (i+0.5, j+0.5).
	toPlane matrix.Matrix

	row []byte // scratch row for FillRows
}

// NewRenderer returns a Renderer for the given configuration.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		cfg:     cfg,
		toPlane: pixelToPlane(cfg.View, cfg.Width, cfg.Height, cfg.Orientation),
	}, nil
}

// pixelToPlane returns the affine map from pixel-grid space to the view.
func pixelToPlane(view rect.Rect, width, height int, o Orientation) matrix.Matrix {
	pointWidth := (view.URx - view.LLx) / float64(width)
	pointHeight := (view.URy - view.LLy) / float64(height)
	if o == MaxAtTop {
		return matrix.Matrix{pointWidth, 0, 0, -pointHeight, view.LLx, view.URy}
	}
	return matrix.Matrix{pointWidth, 0, 0, pointHeight, view.LLx, view.LLy}
}

// Config returns the configuration of the renderer.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Sample returns the point of the complex plane sampled for the pixel in
// column col and row row.
func (r *Renderer) Sample(col, row int) vec.Vec2 {
	px := float64(col) + 0.5
	py := float64(row) + 0.5
	return vec.Vec2{
		X: r.toPlane[0]*px + r.toPlane[2]*py + r.toPlane[4],
		Y: r.toPlane[1]*px + r.toPlane[3]*py + r.toPlane[5],
	}
}

// Fill writes the raster into buf.
//
// Exactly BufferSize(Width, Height) bytes are written, starting at buf[0];
// bytes beyond that are not touched.  If buf is too short, an error
// wrapping ErrInvalidParameters is returned and buf is left unchanged.
// Fill does not retain buf.
func (r *Renderer) Fill(buf []byte) error {
	size := BufferSize(r.cfg.Width, r.cfg.Height)
	if len(buf) < size {
		return fmt.Errorf("%w: buffer has %d bytes, need %d",
			ErrInvalidParameters, len(buf), size)
	}

	start := time.Now()
	stride := 4 * r.cfg.Width
	inside := 0
	for y := range r.cfg.Height {
		inside += r.fillRow(y, buf[y*stride:(y+1)*stride])
	}

	Logger().Debug("mandelbrot: raster filled",
		"width", r.cfg.Width,
		"height", r.cfg.Height,
		"inside", inside,
		"elapsed", time.Since(start))
	return nil
}

// FillRows computes the raster row by row and passes each row to emit,
// top to bottom.  The row slice holds 4*Width bytes and is valid only
// during the call; it is cleared before each row, so that capped pixels
// under InsideUnpainted have zero colour channels.
func (r *Renderer) FillRows(emit func(y int, row []byte)) {
	stride := 4 * r.cfg.Width
	if cap(r.row) < stride {
		r.row = make([]byte, stride)
	}
	row := r.row[:stride]
	for y := range r.cfg.Height {
		clear(row)
		r.fillRow(y, row)
		emit(y, row)
	}
}

// Image returns a new image holding the raster.
func (r *Renderer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.cfg.Width, r.cfg.Height))
	// img.Pix has exactly the right size, so Fill cannot fail.
	_ = r.Fill(img.Pix)
	return img
}

// fillRow computes row y into dst, which must hold 4*Width bytes.
// It returns the number of capped samples in the row.
func (r *Renderer) fillRow(y int, dst []byte) int {
	maxIt := r.cfg.MaxIterations
	pal := r.cfg.Palette
	inside := 0
	for x := range r.cfg.Width {
		p := r.Sample(x, y)
		it := Escape(p.X, p.Y, maxIt)
		if it >= maxIt {
			inside++
		}

		px := dst[4*x : 4*x+4 : 4*x+4]
		c, paint := pal.Color(it, maxIt)
		if paint {
			px[0] = c.R
			px[1] = c.G
			px[2] = c.B
		}
		px[3] = c.A
	}
	return inside
}

// Fill renders the view [xMin, xMax] × [yMin, yMax] into buf, using the
// default palette, iteration budget and orientation.
//
// This is the entry point for callers which manage the buffer memory
// themselves: obtain the size from BufferSize(width, height), allocate,
// call Fill, then read the buffer.  Invalid bounds, sizes or a short
// buffer give an error wrapping ErrInvalidParameters, and buf is left
// unchanged.
func Fill(xMin, xMax, yMin, yMax float64, buf []byte, width, height int) error {
	cfg := DefaultConfig()
	cfg.View = rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
	cfg.Width = width
	cfg.Height = height

	r, err := NewRenderer(cfg)
	if err != nil {
		return err
	}
	return r.Fill(buf)
}
