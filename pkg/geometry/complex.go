package geometry

// Complex is a point in the complex plane.
//
// Operations never mutate their receiver, so values may be copied freely.
type Complex struct {
	Re, Im float64
}

func (z Complex) Add(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex) Sub(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div multiplies z by the conjugate of w over w's squared magnitude.
// Dividing by zero yields non-finite components rather than panicking.
func (z Complex) Div(w Complex) Complex {
	d := w.MagnitudeSquared()
	return Complex{
		Re: (z.Re*w.Re + z.Im*w.Im) / d,
		Im: (z.Im*w.Re - z.Re*w.Im) / d,
	}
}

// MagnitudeSquared is used instead of the magnitude to avoid a square root
// on every iteration.
func (z Complex) MagnitudeSquared() float64 {
	return z.Re*z.Re + z.Im*z.Im
}
