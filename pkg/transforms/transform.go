package transforms

import "github.com/willbeason/bmp-fractal/pkg/geometry"

// A Transform iterates a passed point.
type Transform interface {
	Next(z geometry.Complex) geometry.Complex
}

var (
	_ Transform = Julia{}
	_ Transform = Newton{}
)
