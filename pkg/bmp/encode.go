package bmp

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/willbeason/bmp-fractal/pkg/palette"
	"io"
	"math"
)

// ErrDimensions is returned for images that cannot be represented.
var ErrDimensions = errors.New("bmp: invalid dimensions")

// PixelPosition addresses a pixel by scanline and column.
type PixelPosition struct {
	Row, Col int
}

// PixelFunc returns the color of the pixel at a position.
type PixelFunc func(PixelPosition) palette.Color

// CheckDimensions reports whether a width x height image fits the format.
func CheckDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d, both must be positive", ErrDimensions, width, height)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 ||
		uint64(height)*uint64(Stride(width))+HeaderSize > math.MaxUint32 {
		return fmt.Errorf("%w: %dx%d exceeds 4 GiB", ErrDimensions, width, height)
	}
	return nil
}

// AppendRow appends one scanline of BGR triples and its padding to dst.
func AppendRow(dst []byte, row []palette.Color) []byte {
	for _, c := range row {
		dst = append(dst, c.B, c.G, c.R)
	}
	for i := Padding(len(row)); i > 0; i-- {
		dst = append(dst, 0)
	}
	return dst
}

// Pixels returns the pixel array, visiting positions row by row and, within
// a row, column by column.
func Pixels(width, height int, f PixelFunc) []byte {
	out := make([]byte, 0, BitmapSize(width, height))
	row := make([]palette.Color, width)

	for r := 0; r < height; r++ {
		fillRow(row, r, f)
		out = AppendRow(out, row)
	}

	return out
}

// Encode writes a complete file to w, calling f in the same order as Pixels.
// If writing fails part way, w may hold a truncated file.
func Encode(w io.Writer, width, height int, f PixelFunc) error {
	if err := CheckDimensions(width, height); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(Header(width, height)); err != nil {
		return err
	}

	row := make([]palette.Color, width)
	line := make([]byte, 0, Stride(width))
	for r := 0; r < height; r++ {
		fillRow(row, r, f)
		line = AppendRow(line[:0], row)
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeRows writes a complete file from scanlines that have already been
// computed. Every row must have the same length.
func EncodeRows(w io.Writer, rows [][]palette.Color) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrDimensions)
	}

	width := len(rows[0])
	if err := CheckDimensions(width, len(rows)); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(Header(width, len(rows))); err != nil {
		return err
	}

	line := make([]byte, 0, Stride(width))
	for i, row := range rows {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d pixels, want %d", ErrDimensions, i, len(row), width)
		}
		line = AppendRow(line[:0], row)
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func fillRow(row []palette.Color, r int, f PixelFunc) {
	for c := range row {
		row[c] = f(PixelPosition{Row: r, Col: c})
	}
}
