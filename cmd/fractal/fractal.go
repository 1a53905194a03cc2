package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/bmp-fractal/pkg/config"
	"github.com/willbeason/bmp-fractal/pkg/render"
	"log"
	"os"
	"runtime"
	"time"
)

const (
	flagConfig        = "config"
	flagOutput        = "out"
	flagWidth         = "width"
	flagHeight        = "height"
	flagMaxIterations = "max-iterations"
	flagReal          = "real"
	flagImag          = "imag"
	flagKind          = "kind"
	flagSeed          = "seed"
	flagRoot          = "root"
	flagParallel      = "parallel"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render a Mandelbrot, Julia, or Newton fractal to a 24-bit BMP file",
		Example: `  fractal --kind mandelbrot --real -2,1 --imag -1.5,1.5
  fractal --kind julia --seed 0.2,-0.17 --out julia.bmp
  fractal --kind newton --root 1,0 --root 0.5,0.5 --root -0.5,-0.5`,
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.String(flagConfig, "", "JSON file with render settings; flags override its values")
	flags.StringP(flagOutput, "o", defaults.Output, "output file")
	flags.Int(flagWidth, defaults.Width, "image width in pixels")
	flags.Int(flagHeight, defaults.Height, "image height in pixels")
	flags.Int(flagMaxIterations, defaults.MaxIterations, "iteration cap per pixel")
	flags.String(flagReal, pair(defaults.Real), "real axis range as start,end")
	flags.String(flagImag, pair(defaults.Imag), "imaginary axis range as start,end")
	flags.String(flagKind, defaults.Kind, "mandelbrot, julia, or newton")
	flags.String(flagSeed, "0,0", "julia constant as real,imag")
	flags.StringArray(flagRoot, nil, "newton polynomial root as real,imag; repeat for each root")
	flags.Int(flagParallel, runtime.NumCPU(), "rows rendered concurrently; 1 renders serially")

	return cmd
}

func pair(p [2]float64) string {
	return fmt.Sprintf("%g,%g", p[0], p[1])
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := cfg.Fractal()
	if err != nil {
		return err
	}
	r, err := render.New(cfg.Width, cfg.Height, cfg.Plane(), f)
	if err != nil {
		return err
	}

	parallel, err := cmd.Flags().GetInt(flagParallel)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}

	log.Printf("rendering %s %dx%d, %d iterations", cfg.Kind, cfg.Width, cfg.Height, cfg.MaxIterations)
	start := time.Now()

	err = r.Render(cmd.Context(), out, parallel)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}

	log.Printf("wrote %s in %s", cfg.Output, time.Since(start).Round(time.Millisecond))
	return nil
}

// loadConfig starts from the defaults or the --config file and applies every
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	var err error
	if flags.Changed(flagOutput) {
		cfg.Output, err = flags.GetString(flagOutput)
	}
	if err == nil && flags.Changed(flagWidth) {
		cfg.Width, err = flags.GetInt(flagWidth)
	}
	if err == nil && flags.Changed(flagHeight) {
		cfg.Height, err = flags.GetInt(flagHeight)
	}
	if err == nil && flags.Changed(flagMaxIterations) {
		cfg.MaxIterations, err = flags.GetInt(flagMaxIterations)
	}
	if err == nil && flags.Changed(flagKind) {
		cfg.Kind, err = flags.GetString(flagKind)
	}
	if err == nil && flags.Changed(flagReal) {
		cfg.Real, err = pairFlag(cmd, flagReal)
	}
	if err == nil && flags.Changed(flagImag) {
		cfg.Imag, err = pairFlag(cmd, flagImag)
	}
	if err == nil && flags.Changed(flagSeed) {
		cfg.Seed, err = pairFlag(cmd, flagSeed)
	}
	if err == nil && flags.Changed(flagRoot) {
		cfg.Roots, err = rootsFlag(cmd)
	}

	return cfg, err
}

func pairFlag(cmd *cobra.Command, name string) ([2]float64, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return [2]float64{}, err
	}

	p, err := config.ParsePair(s)
	if err != nil {
		return [2]float64{}, fmt.Errorf("--%s: %w", name, err)
	}
	return p, nil
}

func rootsFlag(cmd *cobra.Command) ([]config.Point, error) {
	values, err := cmd.Flags().GetStringArray(flagRoot)
	if err != nil {
		return nil, err
	}

	roots := make([]config.Point, len(values))
	for i, v := range values {
		p, err := config.ParsePair(v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flagRoot, err)
		}
		roots[i] = p
	}
	return roots, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
