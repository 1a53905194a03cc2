package fractal

// Result is either an EscapeResult or a RootResult.
type Result interface {
	isResult()
}

// EscapeResult is the number of iterations a Mandelbrot or Julia point took
// to escape, or MaxIterations if it never did.
type EscapeResult struct {
	Iterations    int
	MaxIterations int
}

// RootResult is the index of the root a Newton point converged nearest to.
type RootResult struct {
	Closest int
	Roots   int
}

func (EscapeResult) isResult() {}
func (RootResult) isResult()   {}
