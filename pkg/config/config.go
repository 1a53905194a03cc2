package config

import (
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/willbeason/bmp-fractal/pkg/fractal"
	"github.com/willbeason/bmp-fractal/pkg/geometry"
	"math"
	"os"
	"strings"
)

// Point is a complex number written as [real, imaginary].
type Point [2]float64

func (p Point) Complex() geometry.Complex {
	return geometry.Complex{Re: p[0], Im: p[1]}
}

// Config is everything needed to render one image.
type Config struct {
	Output        string `json:"output"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	MaxIterations int    `json:"max_iterations"`

	// Real and Imag are [start, end] ranges of the plane.
	Real [2]float64 `json:"real"`
	Imag [2]float64 `json:"imag"`

	// Kind is "mandelbrot", "julia", or "newton".
	Kind  string  `json:"kind"`
	Seed  Point   `json:"seed,omitempty"`
	Roots []Point `json:"roots,omitempty"`
}

func Default() Config {
	return Config{
		Output:        "out.bmp",
		Width:         400,
		Height:        400,
		MaxIterations: fractal.DefaultMaxIterations,
		Real:          [2]float64{-2, 2},
		Imag:          [2]float64{-2, 2},
		Kind:          fractal.Mandelbrot{}.Kind(),
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks everything that can be checked without building the fractal.
func (c Config) Validate() error {
	if c.Output == "" {
		return &fractal.ConfigurationError{Field: "output", Reason: "empty file name"}
	}
	if c.Width < 1 || c.Height < 1 {
		return &fractal.ConfigurationError{
			Field:  "dimensions",
			Reason: fmt.Sprintf("%dx%d, both must be positive", c.Width, c.Height),
		}
	}
	if err := checkRange("real", c.Real); err != nil {
		return err
	}
	if err := checkRange("imag", c.Imag); err != nil {
		return err
	}

	if _, err := c.Fractal(); err != nil {
		return err
	}
	return nil
}

// checkRange rejects NaN and infinite endpoints. A zero length range is
// allowed and maps every pixel to the same coordinate.
func checkRange(field string, r [2]float64) error {
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &fractal.ConfigurationError{
				Field:  field,
				Reason: fmt.Sprintf("range [%v, %v] must be finite", r[0], r[1]),
			}
		}
	}
	return nil
}

// Spec returns the fractal variant named by Kind.
func (c Config) Spec() (fractal.Spec, error) {
	switch strings.ToLower(c.Kind) {
	case fractal.Mandelbrot{}.Kind():
		return fractal.Mandelbrot{}, nil
	case fractal.Julia{}.Kind():
		return fractal.Julia{Seed: c.Seed.Complex()}, nil
	case fractal.Newton{}.Kind():
		roots := make([]geometry.Complex, len(c.Roots))
		for i, r := range c.Roots {
			roots[i] = r.Complex()
		}
		return fractal.Newton{Roots: roots}, nil
	default:
		return nil, &fractal.ConfigurationError{
			Field:  "kind",
			Reason: fmt.Sprintf("%q is not one of mandelbrot, julia, newton", c.Kind),
		}
	}
}

func (c Config) Fractal() (fractal.Fractal, error) {
	spec, err := c.Spec()
	if err != nil {
		return fractal.Fractal{}, err
	}
	return fractal.New(spec, c.MaxIterations)
}

func (c Config) Plane() geometry.Rect {
	return geometry.Rect{
		Real: geometry.Range{Start: c.Real[0], End: c.Real[1]},
		Imag: geometry.Range{Start: c.Imag[0], End: c.Imag[1]},
	}
}
