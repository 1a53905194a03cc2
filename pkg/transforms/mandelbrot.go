package transforms

import "github.com/willbeason/bmp-fractal/pkg/geometry"

// Mandelbrot squares z and adds the point being classified.
type Mandelbrot struct{}

func (Mandelbrot) Next(z, c geometry.Complex) geometry.Complex {
	return z.Mul(z).Add(c)
}
