package config

import (
	"errors"
	"github.com/willbeason/bmp-fractal/pkg/fractal"
	"github.com/willbeason/bmp-fractal/pkg/geometry"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "render.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadNewton(t *testing.T) {
	path := writeFile(t, `{
		"output": "newton.bmp",
		"width": 640,
		"height": 480,
		"real": [-1.5, 1.5],
		"imag": [-1, 1],
		"kind": "newton",
		"roots": [[1, 0], [0.5, 0.5], [-0.5, -0.5]]
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Output != "newton.bmp" || cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.MaxIterations != fractal.DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want default %d", cfg.MaxIterations, fractal.DefaultMaxIterations)
	}

	f, err := cfg.Fractal()
	if err != nil {
		t.Fatal(err)
	}
	newton, ok := f.Spec.(fractal.Newton)
	if !ok {
		t.Fatalf("spec is %T, want fractal.Newton", f.Spec)
	}
	if len(newton.Roots) != 3 || newton.Roots[1] != (geometry.Complex{Re: 0.5, Im: 0.5}) {
		t.Errorf("roots = %v", newton.Roots)
	}

	want := geometry.Rect{
		Real: geometry.Range{Start: -1.5, End: 1.5},
		Imag: geometry.Range{Start: -1, End: 1},
	}
	if cfg.Plane() != want {
		t.Errorf("Plane() = %v, want %v", cfg.Plane(), want)
	}
}

func TestLoadJulia(t *testing.T) {
	path := writeFile(t, `{"kind": "Julia", "seed": [0.2, -0.17], "max_iterations": 50}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	f, err := cfg.Fractal()
	if err != nil {
		t.Fatal(err)
	}
	if f.Spec != (fractal.Julia{Seed: geometry.Complex{Re: 0.2, Im: -0.17}}) {
		t.Errorf("spec = %+v", f.Spec)
	}
	if f.MaxIterations != 50 {
		t.Errorf("MaxIterations = %d, want 50", f.MaxIterations)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}

	if _, err := Load(writeFile(t, `{"width": "wide"}`)); err == nil {
		t.Error("malformed file: got nil error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"zero iterations", func(c *Config) { c.MaxIterations = 0 }},
		{"unknown kind", func(c *Config) { c.Kind = "sierpinski" }},
		{"newton without roots", func(c *Config) { c.Kind = "newton" }},
		{"no output", func(c *Config) { c.Output = "" }},
		{"NaN real start", func(c *Config) { c.Real[0] = math.NaN() }},
		{"infinite real end", func(c *Config) { c.Real[1] = math.Inf(1) }},
		{"NaN imag end", func(c *Config) { c.Imag[1] = math.NaN() }},
		{"infinite imag start", func(c *Config) { c.Imag[0] = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			var cfgErr *fractal.ConfigurationError
			if err := cfg.Validate(); !errors.As(err, &cfgErr) {
				t.Errorf("got %v, want *fractal.ConfigurationError", err)
			}
		})
	}
}

func TestValidateAllowsZeroLengthRange(t *testing.T) {
	cfg := Default()
	cfg.Real = [2]float64{0.5, 0.5}
	cfg.Imag = [2]float64{1, -1}

	if err := cfg.Validate(); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}

func TestValidateNonFiniteFromCommandLine(t *testing.T) {
	for _, s := range []string{"NaN,1", "-2,Inf", "-Inf,0"} {
		p, err := ParsePair(s)
		if err != nil {
			t.Fatalf("ParsePair(%q): %v", s, err)
		}

		cfg := Default()
		cfg.Real = p

		var cfgErr *fractal.ConfigurationError
		if err := cfg.Validate(); !errors.As(err, &cfgErr) || cfgErr.Field != "real" {
			t.Errorf("%q: got %v, want real range error", s, err)
		}
	}
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		want    [2]float64
		wantErr bool
	}{
		{"1,0", [2]float64{1, 0}, false},
		{"-0.5, 0.25", [2]float64{-0.5, 0.25}, false},
		{"1e-3,-2", [2]float64{0.001, -2}, false},
		{"1", [2]float64{}, true},
		{"1,2,3", [2]float64{}, true},
		{"a,b", [2]float64{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePair(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePair(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePair(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
