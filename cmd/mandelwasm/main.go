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

//go:build wasip1

// Command mandelwasm is a WebAssembly reactor which lets a host allocate a
// raster in the module's linear memory, fill it, and read it back.
//
// Build with
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o mandel.wasm ./cmd/mandelwasm
//
// A JavaScript host uses it like this:
//
//	size = exports.image_data_size(w, h)
//	ptr = exports.create_array(size)
//	exports.generate(-2, 1, -1.5, 1.5, ptr, w, h)
//	data = new Uint8ClampedArray(exports.memory.buffer, ptr, size)
//	...
//	exports.free_array(ptr)
//
// The view of the ImageData must be recreated after every call into the
// module, since memory growth detaches the old buffer.
package main

import (
	"seehuhn.de/go/mandelbrot"
	"seehuhn.de/go/mandelbrot/arena"
)

var heap = arena.New()

//go:wasmexport image_data_size
func imageDataSize(width, height int32) int32 {
	return int32(mandelbrot.BufferSize(int(width), int(height)))
}

// createArray returns 0 if size is not positive.
//
//go:wasmexport create_array
func createArray(size int32) uint32 {
	addr, err := heap.Allocate(int(size))
	if err != nil {
		return 0
	}
	return uint32(addr)
}

//go:wasmexport free_array
func freeArray(ptr uint32) int32 {
	if err := heap.Release(arena.Addr(ptr)); err != nil {
		return 1
	}
	return 0
}

// generate returns 0 on success and 1 if the parameters are invalid, in
// which case the region is left unchanged.
//
//go:wasmexport generate
func generate(xMin, xMax, yMin, yMax float64, ptr uint32, width, height int32) int32 {
	err := heap.Fill(xMin, xMax, yMin, yMax, arena.Addr(ptr), int(width), int(height))
	if err != nil {
		return 1
	}
	return 0
}

func main() {}
