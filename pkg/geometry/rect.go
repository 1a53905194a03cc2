package geometry

// Range is a half-open interval [Start, End). End may be less than Start, in
// which case coordinates decrease as the pixel index grows.
type Range struct {
	Start, End float64
}

// Length is End - Start. A zero length range maps every pixel to Start.
func (r Range) Length() float64 {
	return r.End - r.Start
}

// Lerp returns the coordinate for pixel i of n.
func (r Range) Lerp(i, n int) float64 {
	return r.Start + (float64(i)/float64(n))*r.Length()
}

// Rect is the region of the complex plane covered by an image.
type Rect struct {
	Real, Imag Range
}

// At maps the pixel in row, col of a width x height image to a point in the
// plane. Columns move along the real axis and rows along the imaginary axis.
func (r Rect) At(row, col, width, height int) Complex {
	return Complex{
		Re: r.Real.Lerp(col, width),
		Im: r.Imag.Lerp(row, height),
	}
}
