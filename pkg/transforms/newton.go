package transforms

import "github.com/willbeason/bmp-fractal/pkg/geometry"

var one = geometry.Complex{Re: 1}

// Newton is one step of Newton's method on the monic polynomial whose roots
// are Roots, i.e. (z - Roots[0]) * (z - Roots[1]) * ...
type Newton struct {
	Roots []geometry.Complex
}

// Polynomial evaluates the product of (z - root) over all roots.
func (n Newton) Polynomial(z geometry.Complex) geometry.Complex {
	p := one
	for _, r := range n.Roots {
		p = p.Mul(z.Sub(r))
	}
	return p
}

// Derivative evaluates the polynomial's derivative as the sum of product-rule
// terms: for each root j, the product of (z - root) over every other root.
func (n Newton) Derivative(z geometry.Complex) geometry.Complex {
	var d geometry.Complex
	for j := range n.Roots {
		term := one
		for k, r := range n.Roots {
			if k != j {
				term = term.Mul(z.Sub(r))
			}
		}
		d = d.Add(term)
	}
	return d
}

// Next is z - p(z)/p'(z). A zero derivative is not guarded against and
// produces non-finite values.
func (n Newton) Next(z geometry.Complex) geometry.Complex {
	return z.Sub(n.Polynomial(z).Div(n.Derivative(z)))
}

// Closest returns the index of the root nearest to z. Ties keep the lowest
// index. Roots must be non-empty.
func (n Newton) Closest(z geometry.Complex) int {
	closest := 0
	smallest := z.Sub(n.Roots[0]).MagnitudeSquared()
	for i := 1; i < len(n.Roots); i++ {
		d := z.Sub(n.Roots[i]).MagnitudeSquared()
		if d < smallest {
			smallest = d
			closest = i
		}
	}
	return closest
}
