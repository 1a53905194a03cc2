package palette

import (
	"github.com/willbeason/bmp-fractal/pkg/fractal"
	"image/color"
)

// Color is an opaque 24-bit color.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

var _ color.Color = Color{}

var (
	Red    = Color{R: 255}
	Green  = Color{G: 255}
	Blue   = Color{B: 255}
	Cyan   = Color{G: 255, B: 255}
	Shadow = Color{R: 30, G: 30, B: 30}
)

// Roots colors the first four Newton roots. Any later root is drawn as Shadow,
// so fractals with more than four roots alias visually.
var Roots = [...]Color{Red, Green, Blue, Cyan}

// Map colors a classification. Escape counts become a gray level
// proportional to Iterations/MaxIterations.
func Map(r fractal.Result) Color {
	switch r := r.(type) {
	case fractal.EscapeResult:
		return Gray(r.Iterations, r.MaxIterations)
	case fractal.RootResult:
		return Root(r.Closest)
	}
	return Shadow
}

// Gray is floor(iterations * 255 / maxIterations) in every channel. A
// non-positive maxIterations, which fractal.New never produces, maps to black.
func Gray(iterations, maxIterations int) Color {
	if maxIterations < 1 {
		return Color{}
	}
	y := uint8(iterations * 255 / maxIterations)
	return Color{R: y, G: y, B: y}
}

func Root(i int) Color {
	if i >= 0 && i < len(Roots) {
		return Roots[i]
	}
	return Shadow
}
