package discrete

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
)

// ErrNoConvergence reports that the iterative solver hit its iteration
// budget before reaching the residual tolerance.
var ErrNoConvergence = errors.New("discrete: linear solver did not converge")

// cgTol is the relative residual tolerance of the conjugate gradient solve.
const cgTol = 1e-12

// conjGrad solves Ax = b for symmetric positive definite A by conjugate
// gradients, starting from zero. Fully deterministic: identical inputs give
// bit-identical outputs.
func conjGrad(a *sparse.CSR, b []float64) ([]float64, error) {
	n := len(b)
	x := make([]float64, n)
	bnorm := math.Sqrt(floats.Dot(b, b))
	if bnorm == 0 {
		return x, nil
	}

	r := make([]float64, n)
	copy(r, b)
	p := make([]float64, n)
	copy(p, r)
	ap := make([]float64, n)

	rs := floats.Dot(r, r)
	maxIter := 100 + 50*n
	for k := 0; k < maxIter; k++ {
		mulVec(a, p, ap)
		alpha := rs / floats.Dot(p, ap)
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		rsNew := floats.Dot(r, r)
		if math.Sqrt(rsNew) <= cgTol*bnorm {
			return x, nil
		}
		beta := rsNew / rs
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rs = rsNew
	}
	return nil, fmt.Errorf("%w: residual %.3e after %d iterations",
		ErrNoConvergence, math.Sqrt(rs)/bnorm, maxIter)
}

// mulVec computes dst = a * src over the sparse nonzeros.
func mulVec(a *sparse.CSR, src, dst []float64) {
	for i := range dst {
		dst[i] = 0
	}
	a.DoNonZero(func(i, j int, v float64) {
		dst[i] += v * src[j]
	})
}
