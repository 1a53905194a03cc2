package fractal

import "github.com/willbeason/bmp-fractal/pkg/geometry"

// DefaultMaxIterations is the iteration cap used when none is configured.
const DefaultMaxIterations = 1000

// Spec is one of Mandelbrot, Julia, or Newton.
type Spec interface {
	Kind() string
	isSpec()
}

// Mandelbrot iterates z*z + point starting from zero.
type Mandelbrot struct{}

// Julia iterates z*z + Seed starting from the point.
type Julia struct {
	Seed geometry.Complex
}

// Newton runs Newton's method on the monic polynomial with the given Roots
// and reports which root the point ends nearest to.
type Newton struct {
	Roots []geometry.Complex
}

func (Mandelbrot) Kind() string { return "mandelbrot" }
func (Julia) Kind() string      { return "julia" }
func (Newton) Kind() string     { return "newton" }

func (Mandelbrot) isSpec() {}
func (Julia) isSpec()      {}
func (Newton) isSpec()     {}
