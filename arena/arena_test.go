package arena

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"seehuhn.de/go/mandelbrot"
)

func TestAllocateRelease(t *testing.T) {
	a := New()

	addr, err := a.Allocate(64)
	if err != nil {
		t.Fatal(err)
	}
	if addr == 0 {
		t.Fatal("zero address")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}

	buf, err := a.Bytes(addr, 64)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, make([]byte, 64)) {
		t.Error("fresh region is not zeroed")
	}

	if err := a.Release(addr); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d after release", a.Len())
	}
	if err := a.Release(addr); !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("second Release() = %v, want ErrUnknownAddress", err)
	}
	if _, err := a.Bytes(addr, 1); !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("Bytes() after release = %v, want ErrUnknownAddress", err)
	}
}

func TestAllocateInvalidSize(t *testing.T) {
	a := New()
	for _, size := range []int{0, -4} {
		if _, err := a.Allocate(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Allocate(%d) = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestBytesShortRegion(t *testing.T) {
	a := New()
	addr, err := a.Allocate(16)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Bytes(addr, 17); !errors.Is(err, ErrShortRegion) {
		t.Errorf("Bytes(17) = %v, want ErrShortRegion", err)
	}
	buf, err := a.Bytes(addr, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 8 || cap(buf) != 8 {
		t.Errorf("len, cap = %d, %d", len(buf), cap(buf))
	}
}

func TestFill(t *testing.T) {
	a := New()
	const w, h = 4, 4

	size := mandelbrot.BufferSize(w, h)
	addr, err := a.Allocate(size + 8)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Fill(-2.1, 0.6, -1.25, 1.25, addr, w, h); err != nil {
		t.Fatal(err)
	}

	got, err := a.Bytes(addr, size+8)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]byte, size)
	if err := mandelbrot.Fill(-2.1, 0.6, -1.25, 1.25, want, w, h); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got[:size], want) {
		t.Error("arena fill differs from direct fill")
	}
	if !bytes.Equal(got[size:], make([]byte, 8)) {
		t.Error("bytes beyond the raster were modified")
	}
	if a.Len() != 1 {
		t.Error("Fill released or added a region")
	}
}

func TestFillErrors(t *testing.T) {
	a := New()
	addr, err := a.Allocate(mandelbrot.BufferSize(4, 4) - 1)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		addr Addr
		w, h int
	}{
		{"short_region", addr, 4, 4},
		{"unknown_address", addr + 1, 1, 1},
		{"zero_size", addr, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := a.Fill(-2, 1, -1.5, 1.5, tc.addr, tc.w, tc.h)
			if !errors.Is(err, mandelbrot.ErrInvalidParameters) {
				t.Errorf("Fill() = %v, want ErrInvalidParameters", err)
			}
		})
	}
}

func TestConcurrentAllocate(t *testing.T) {
	a := New()
	const n = 32

	addrs := make([]Addr, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addr, err := a.Allocate(128)
			if err != nil {
				t.Error(err)
				return
			}
			addrs[i] = addr
		}()
	}
	wg.Wait()

	if a.Len() != n {
		t.Fatalf("Len() = %d, want %d", a.Len(), n)
	}
	seen := make(map[Addr]bool)
	for _, addr := range addrs {
		if seen[addr] {
			t.Errorf("address %#x handed out twice", uintptr(addr))
		}
		seen[addr] = true
		if err := a.Release(addr); err != nil {
			t.Error(err)
		}
	}
}
