package transforms

import (
	"github.com/willbeason/bmp-fractal/pkg/geometry"
	"testing"
)

func c(re, im float64) geometry.Complex {
	return geometry.Complex{Re: re, Im: im}
}

func TestMandelbrotNext(t *testing.T) {
	got := Mandelbrot{}.Next(c(1, 1), c(0.5, -1))
	// (1+i)^2 = 2i
	if want := c(0.5, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJuliaNext(t *testing.T) {
	got := Julia{C: c(0.25, 0)}.Next(c(0, 1))
	if want := c(-0.75, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNewtonPolynomialAndDerivative(t *testing.T) {
	// (z - 1)(z + 1) = z^2 - 1, derivative 2z.
	n := Newton{Roots: []geometry.Complex{c(1, 0), c(-1, 0)}}

	tests := []struct {
		z, p, d geometry.Complex
	}{
		{c(0, 0), c(-1, 0), c(0, 0)},
		{c(2, 0), c(3, 0), c(4, 0)},
		{c(0, 1), c(-2, 0), c(0, 2)},
	}

	for _, tt := range tests {
		if got := n.Polynomial(tt.z); got != tt.p {
			t.Errorf("Polynomial(%v) = %v, want %v", tt.z, got, tt.p)
		}
		if got := n.Derivative(tt.z); got != tt.d {
			t.Errorf("Derivative(%v) = %v, want %v", tt.z, got, tt.d)
		}
	}
}

func TestNewtonSingleRootConvergesInOneStep(t *testing.T) {
	n := Newton{Roots: []geometry.Complex{c(0.5, -2)}}

	if got := n.Next(c(10, 10)); got != c(0.5, -2) {
		t.Errorf("got %v, want root", got)
	}
}

func TestNewtonClosest(t *testing.T) {
	n := Newton{Roots: []geometry.Complex{c(1, 0), c(-1, 0), c(1, 0)}}

	tests := []struct {
		name string
		z    geometry.Complex
		want int
	}{
		{"near first", c(0.9, 0), 0},
		{"near second", c(-0.9, 0.1), 1},
		{"duplicate root keeps lowest index", c(1, 0), 0},
		{"equidistant keeps lowest index", c(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Closest(tt.z); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
