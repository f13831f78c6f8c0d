package mandelbrot

import (
	"math"
	"testing"
)

func TestEscapeKnownPoints(t *testing.T) {
	cases := []struct {
		name   string
		x0, y0 float64
		want   int
	}{
		{"outside_radius", 3, 3, 0},
		{"outside_on_axis", -2.5, 0, 0},
		{"origin", 0, 0, MaxIterations},
		{"one_plus_i", 1, 1, 2},
		{"cardioid", -0.5, 0, MaxIterations},
		{"period_two_bulb", -1, 0, MaxIterations},
		{"cusp", 0.25, 0, MaxIterations},
		{"tip", -2, 0, MaxIterations},
		{"near_seahorse", -0.75, 0.1, 33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Escape(tc.x0, tc.y0, MaxIterations)
			if got != tc.want {
				t.Errorf("Escape(%g, %g) = %d, want %d", tc.x0, tc.y0, got, tc.want)
			}
		})
	}
}

func TestEscapeOutsideRadius(t *testing.T) {
	for i := range 64 {
		angle := float64(i) * 2 * math.Pi / 64
		for _, r := range []float64{2.0001, 2.5, 10, 1e100} {
			x0, y0 := r*math.Cos(angle), r*math.Sin(angle)
			if x0*x0+y0*y0 <= 4 {
				continue
			}
			if got := Escape(x0, y0, MaxIterations); got != 0 {
				t.Errorf("Escape(%g, %g) = %d, want 0", x0, y0, got)
			}
		}
	}
}

func TestEscapeRangeAndDeterminism(t *testing.T) {
	for _, maxIt := range []int{1, 2, 40, 500} {
		for i := range 41 {
			for j := range 41 {
				x0 := -2.2 + float64(i)*0.08
				y0 := -1.6 + float64(j)*0.08
				a := Escape(x0, y0, maxIt)
				b := Escape(x0, y0, maxIt)
				if a != b {
					t.Fatalf("Escape(%g, %g, %d) not deterministic: %d != %d", x0, y0, maxIt, a, b)
				}
				if a < 0 || a > maxIt {
					t.Fatalf("Escape(%g, %g, %d) = %d out of range", x0, y0, maxIt, a)
				}
			}
		}
	}
}

func TestEscapeConjugateSymmetry(t *testing.T) {
	for i := range 50 {
		for j := range 25 {
			x0 := -2.1 + float64(i)*0.054
			y0 := float64(j) * 0.05
			if a, b := Escape(x0, y0, 100), Escape(x0, -y0, 100); a != b {
				t.Errorf("Escape(%g, ±%g): %d != %d", x0, y0, a, b)
			}
		}
	}
}

func TestEscapeNoBudget(t *testing.T) {
	for _, maxIt := range []int{0, -1} {
		if got := Escape(0, 0, maxIt); got != 0 {
			t.Errorf("Escape(0, 0, %d) = %d, want 0", maxIt, got)
		}
	}
}

// TestEscapeMatchesComplex compares the recurrence with a direct
// complex128 implementation.
func TestEscapeMatchesComplex(t *testing.T) {
	for i := range 200 {
		for j := range 150 {
			x0 := -2.1 + (float64(i)+0.5)*2.7/200
			y0 := -1.25 + (float64(j)+0.5)*2.5/150
			got := Escape(x0, y0, MaxIterations)
			want := escapeComplex(complex(x0, y0), MaxIterations)
			if got != want {
				t.Errorf("Escape(%g, %g) = %d, complex reference %d", x0, y0, got, want)
			}
		}
	}
}

// escapeComplex is the textbook form of the escape-time iteration.
func escapeComplex(c complex128, maxIterations int) int {
	if real(c)*real(c)+imag(c)*imag(c) > 4 {
		return 0
	}
	var z complex128
	n := 0
	for n < maxIterations && real(z)*real(z)+imag(z)*imag(z) <= 4 {
		z = z*z + c
		n++
	}
	return n
}
