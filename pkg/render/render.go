package render

import (
	"context"
	"github.com/willbeason/bmp-fractal/pkg/bmp"
	"github.com/willbeason/bmp-fractal/pkg/fractal"
	"github.com/willbeason/bmp-fractal/pkg/geometry"
	"github.com/willbeason/bmp-fractal/pkg/palette"
	"golang.org/x/sync/errgroup"
	"io"
)

// A Renderer colors every pixel of a Width x Height image covering Plane.
//
// Row 0 is at Plane.Imag.Start and is written first, which bitmap readers
// display as the bottom scanline. An ascending imaginary range therefore
// comes out with the imaginary axis pointing up.
type Renderer struct {
	Width, Height int
	Plane         geometry.Rect
	Fractal       fractal.Fractal
}

func New(width, height int, plane geometry.Rect, f fractal.Fractal) (*Renderer, error) {
	if err := bmp.CheckDimensions(width, height); err != nil {
		return nil, &fractal.ConfigurationError{Field: "dimensions", Reason: err.Error()}
	}

	return &Renderer{
		Width:   width,
		Height:  height,
		Plane:   plane,
		Fractal: f,
	}, nil
}

// ColorAt is the bmp.PixelFunc for the image.
func (r *Renderer) ColorAt(p bmp.PixelPosition) palette.Color {
	z := r.Plane.At(p.Row, p.Col, r.Width, r.Height)
	return palette.Map(r.Fractal.Classify(z))
}

// Row colors every pixel in one scanline.
func (r *Renderer) Row(row int) []palette.Color {
	out := make([]palette.Color, r.Width)
	for col := range out {
		out[col] = r.ColorAt(bmp.PixelPosition{Row: row, Col: col})
	}
	return out
}

// Render writes the bitmap to w.
//
// With parallel > 1 rows are computed by that many goroutines and held in
// memory until all are done, then written in order. The bytes written are
// identical to a serial render. Cancelling ctx stops outstanding rows and
// nothing is written.
func (r *Renderer) Render(ctx context.Context, w io.Writer, parallel int) error {
	if parallel <= 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return bmp.Encode(w, r.Width, r.Height, r.ColorAt)
	}

	rows := make([][]palette.Color, r.Height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for y := range rows {
		y := y
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[y] = r.Row(y)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return bmp.EncodeRows(w, rows)
}
