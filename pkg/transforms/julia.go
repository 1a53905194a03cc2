package transforms

import "github.com/willbeason/bmp-fractal/pkg/geometry"

// Julia squares z and adds the fixed seed C.
type Julia struct {
	C geometry.Complex
}

func (j Julia) Next(z geometry.Complex) geometry.Complex {
	return z.Mul(z).Add(j.C)
}
