package mandelbrot

import (
	"fmt"
	"testing"
)

// BenchmarkRenderer benchmarks the renderer on the overview image.
func BenchmarkRenderer(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = size, size
			r, err := NewRenderer(cfg)
			if err != nil {
				b.Fatal(err)
			}
			buf := make([]byte, BufferSize(size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				if err := r.Fill(buf); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReference benchmarks the complex128 reference rendering.
func BenchmarkReference(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.Width, cfg.Height = size, size
			buf := make([]byte, BufferSize(size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				referenceRender(cfg, buf)
			}
		})
	}
}

func BenchmarkEscape(b *testing.B) {
	points := []struct {
		name   string
		x0, y0 float64
	}{
		{"outside", 3, 3},
		{"boundary", -0.75, 0.1},
		{"inside", -0.5, 0},
	}
	for _, p := range points {
		b.Run(p.name, func(b *testing.B) {
			for b.Loop() {
				Escape(p.x0, p.y0, MaxIterations)
			}
		})
	}
}
