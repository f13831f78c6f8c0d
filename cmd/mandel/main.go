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

// Command mandel renders a view of the Mandelbrot set to an image file.
//
// Usage:
//
//	mandel [flags] output.{png,bmp,tiff,pdf}
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/mandelbrot"
	"seehuhn.de/go/mandelbrot/imagefile"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	def := mandelbrot.DefaultConfig()

	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("width", def.Width, "raster width in pixels")
	height := fs.Int("height", def.Height, "raster height in pixels")
	xMin := fs.Float64("xmin", def.View.LLx, "lower real bound")
	xMax := fs.Float64("xmax", def.View.URx, "upper real bound")
	yMin := fs.Float64("ymin", def.View.LLy, "lower imaginary bound")
	yMax := fs.Float64("ymax", def.View.URy, "upper imaginary bound")
	iter := fs.Int("iter", def.MaxIterations, "iteration budget per pixel")
	fromHue := fs.Float64("from-hue", def.Palette.FromHue, "hue for short escape times, in degrees")
	toHue := fs.Float64("to-hue", def.Palette.ToHue, "hue for long escape times, in degrees")
	unpainted := fs.Bool("unpainted", false, "leave interior pixels transparent black instead of painting them")
	flip := fs.Bool("flip", false, "place the upper imaginary bound in the top row")
	scale := fs.Int("scale", 1, "integer upscaling factor for the output")
	format := fs.String("format", "", "output format (png, bmp, tiff, pdf); default from file name")
	verbose := fs.Bool("v", false, "log progress to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mandel [flags] <output file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	out := fs.Arg(0)

	if *verbose {
		mandelbrot.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var f imagefile.Format
	var err error
	if *format != "" {
		f, err = imagefile.ParseFormat(*format)
	} else {
		f, err = imagefile.FormatFromPath(out)
	}
	if err != nil {
		fmt.Fprintln(stderr, "mandel:", err)
		return exitUsage
	}

	cfg := mandelbrot.Config{
		View:          rect.Rect{LLx: *xMin, LLy: *yMin, URx: *xMax, URy: *yMax},
		Width:         *width,
		Height:        *height,
		MaxIterations: *iter,
		Palette: mandelbrot.Palette{
			FromHue: *fromHue,
			ToHue:   *toHue,
			Inside:  mandelbrot.InsideBlack,
		},
		Orientation: mandelbrot.MinAtTop,
	}
	if *unpainted {
		cfg.Palette.Inside = mandelbrot.InsideUnpainted
	}
	if *flip {
		cfg.Orientation = mandelbrot.MaxAtTop
	}

	r, err := mandelbrot.NewRenderer(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "mandel:", err)
		return exitUsage
	}

	img := imagefile.Scale(r.Image(), *scale)
	if err := imagefile.WriteFile(out, img, f); err != nil {
		fmt.Fprintln(stderr, "mandel:", err)
		return exitError
	}
	mandelbrot.Logger().Info("image written", "path", out, "format", f.String())
	return exitOK
}
