package fractal

import (
	"fmt"
	"github.com/willbeason/bmp-fractal/pkg/geometry"
	"github.com/willbeason/bmp-fractal/pkg/transforms"
)

// EscapeRadiusSquared is the squared magnitude past which a point has escaped.
const EscapeRadiusSquared = 4.0

// Fractal is a Spec together with its iteration cap. It is read-only once
// created and safe to share between goroutines.
//
// Values must come from New; a literal with a zero MaxIterations or a Newton
// spec without roots is not a valid Fractal.
type Fractal struct {
	Spec          Spec
	MaxIterations int
}

// New validates spec and maxIterations.
func New(spec Spec, maxIterations int) (Fractal, error) {
	if maxIterations < 1 {
		return Fractal{}, &ConfigurationError{
			Field:  "max iterations",
			Reason: fmt.Sprintf("must be positive, got %d", maxIterations),
		}
	}

	switch s := spec.(type) {
	case Mandelbrot, Julia:
	case Newton:
		if len(s.Roots) == 0 {
			return Fractal{}, &ConfigurationError{Field: "roots", Reason: "newton fractal needs at least one root"}
		}
		// Later changes to the caller's slice must not reach the Fractal.
		spec = Newton{Roots: append([]geometry.Complex(nil), s.Roots...)}
	case nil:
		return Fractal{}, &ConfigurationError{Field: "fractal", Reason: "missing"}
	default:
		return Fractal{}, &ConfigurationError{Field: "fractal", Reason: fmt.Sprintf("unknown kind %q", spec.Kind())}
	}

	return Fractal{Spec: spec, MaxIterations: maxIterations}, nil
}

// Classify runs the fractal's iteration on point.
func (f Fractal) Classify(point geometry.Complex) Result {
	switch s := f.Spec.(type) {
	case Mandelbrot:
		return f.escape(geometry.Complex{}, func(z geometry.Complex) geometry.Complex {
			return transforms.Mandelbrot{}.Next(z, point)
		})
	case Julia:
		return f.escape(point, transforms.Julia{C: s.Seed}.Next)
	case Newton:
		return f.newton(point, s.Roots)
	default:
		panic(fmt.Sprintf("fractal: unhandled spec %T", f.Spec))
	}
}

// escape iterates next from z until the value escapes or MaxIterations steps
// have run. Iterations are counted from 1.
func (f Fractal) escape(z geometry.Complex, next func(geometry.Complex) geometry.Complex) EscapeResult {
	for i := 1; i <= f.MaxIterations; i++ {
		z = next(z)
		if z.MagnitudeSquared() > EscapeRadiusSquared {
			return EscapeResult{Iterations: i, MaxIterations: f.MaxIterations}
		}
	}

	return EscapeResult{Iterations: f.MaxIterations, MaxIterations: f.MaxIterations}
}

// newton always runs MaxIterations steps; convergence is not checked.
func (f Fractal) newton(z geometry.Complex, roots []geometry.Complex) RootResult {
	n := transforms.Newton{Roots: roots}
	for i := 0; i < f.MaxIterations; i++ {
		z = n.Next(z)
	}

	return RootResult{Closest: n.Closest(z), Roots: len(roots)}
}
