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

// Package arena hands out raster buffers by address, for hosts which live
// in a different memory space than the renderer.
//
// The protocol is: Allocate a region of mandelbrot.BufferSize(w, h) bytes,
// call Fill with the returned address, read the region through the
// address, and finally Release it.  Fill never resizes or frees a region.
package arena

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"seehuhn.de/go/mandelbrot"
)

// Addr identifies an allocated region.  It is the address of the first
// byte of the region, so that hosts which share the linear memory (for
// example a WebAssembly embedder) can read the region directly.
type Addr uintptr

// Errors returned by Arena methods.
var (
	ErrInvalidSize    = errors.New("invalid region size")
	ErrUnknownAddress = errors.New("unknown address")
	ErrShortRegion    = errors.New("region too short")
)

// Arena keeps allocated regions alive until they are released.
//
// The Go garbage collector does not move heap objects, so an address stays
// valid for as long as the region is referenced from the arena.
//
// An Arena is safe for concurrent use, but the caller must make sure that
// a region is not read while Fill writes to it.
type Arena struct {
	mu      sync.Mutex
	regions map[Addr][]byte
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{regions: make(map[Addr][]byte)}
}

// Allocate reserves size zeroed bytes and returns their address.  The
// address is valid until it is passed to Release.
func (a *Arena) Allocate(size int) (Addr, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	buf := make([]byte, size)
	addr := Addr(uintptr(unsafe.Pointer(&buf[0])))

	a.mu.Lock()
	a.regions[addr] = buf
	a.mu.Unlock()

	mandelbrot.Logger().Debug("arena: allocate", "addr", uintptr(addr), "size", size)
	return addr, nil
}

// Bytes returns the first n bytes of the region at addr.  The slice
// aliases the region and must not be used after Release.
func (a *Arena) Bytes(addr Addr, n int) ([]byte, error) {
	a.mu.Lock()
	buf, ok := a.regions[addr]
	a.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownAddress, uintptr(addr))
	}
	if n < 0 || n > len(buf) {
		return nil, fmt.Errorf("%w: %d bytes requested, %d available",
			ErrShortRegion, n, len(buf))
	}
	return buf[:n:n], nil
}

// Release frees the region at addr.  Releasing an address twice is an
// error.
func (a *Arena) Release(addr Addr) error {
	a.mu.Lock()
	_, ok := a.regions[addr]
	delete(a.regions, addr)
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %#x", ErrUnknownAddress, uintptr(addr))
	}
	mandelbrot.Logger().Debug("arena: release", "addr", uintptr(addr))
	return nil
}

// Len returns the number of live regions.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.regions)
}

// Fill renders the view [xMin, xMax] × [yMin, yMax] into the region at
// addr, which must hold at least mandelbrot.BufferSize(width, height)
// bytes.  Exactly that many bytes are written.
func (a *Arena) Fill(xMin, xMax, yMin, yMax float64, addr Addr, width, height int) error {
	size := mandelbrot.BufferSize(width, height)
	if size == 0 {
		return fmt.Errorf("%w: raster size %dx%d",
			mandelbrot.ErrInvalidParameters, width, height)
	}
	buf, err := a.Bytes(addr, size)
	if err != nil {
		return fmt.Errorf("%w: %w", mandelbrot.ErrInvalidParameters, err)
	}
	return mandelbrot.Fill(xMin, xMax, yMin, yMax, buf, width, height)
}
