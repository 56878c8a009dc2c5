// Package bspline provides univariate B-spline spaces on open-uniform knot
// vectors, with basis evaluation by the Cox-de Boor recurrence.
package bspline

import (
	"errors"
	"fmt"
)

// ErrBadSpace reports invalid construction parameters.
var ErrBadSpace = errors.New("bspline: invalid space parameters")

// Space is a univariate B-spline space of a given degree on an open-uniform
// knot vector over [lo, hi] with ncells uniform cells.
type Space struct {
	degree int
	ncells int
	knots  []float64
	lo, hi float64
}

// NewUniform constructs a degree-p spline space on [lo, hi] with ncells
// uniform cells. The knot vector is open: both end knots are repeated
// p+1 times, so end basis functions interpolate the interval endpoints.
func NewUniform(degree, ncells int, lo, hi float64) (*Space, error) {
	if degree < 1 || ncells < 1 || !(lo < hi) {
		return nil, fmt.Errorf("%w: degree=%d ncells=%d interval=[%g,%g]",
			ErrBadSpace, degree, ncells, lo, hi)
	}
	knots := make([]float64, ncells+2*degree+1)
	h := (hi - lo) / float64(ncells)
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = lo
		case i >= ncells+degree:
			knots[i] = hi
		default:
			knots[i] = lo + float64(i-degree)*h
		}
	}
	return &Space{degree: degree, ncells: ncells, knots: knots, lo: lo, hi: hi}, nil
}

// Degree returns the polynomial degree.
func (s *Space) Degree() int { return s.degree }

// NumCells returns the number of mesh cells.
func (s *Space) NumCells() int { return s.ncells }

// NumBasis returns the dimension of the space.
func (s *Space) NumBasis() int { return len(s.knots) - s.degree - 1 }

// Bounds returns the interval the space is defined on.
func (s *Space) Bounds() (lo, hi float64) { return s.lo, s.hi }

// Breaks returns the ordered distinct knot values, i.e. the mesh
// breakpoints including both endpoints.
func (s *Space) Breaks() []float64 {
	out := make([]float64, s.ncells+1)
	copy(out, s.knots[s.degree:s.degree+s.ncells+1])
	return out
}

// Knots returns a copy of the full knot vector.
func (s *Space) Knots() []float64 {
	out := make([]float64, len(s.knots))
	copy(out, s.knots)
	return out
}

// Greville returns the Greville abscissae, the knot averages at which each
// basis function is anchored.
func (s *Space) Greville() []float64 {
	n := s.NumBasis()
	p := s.degree
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		g := 0.0
		for j := 1; j <= p; j++ {
			g += s.knots[i+j]
		}
		out[i] = g / float64(p)
	}
	return out
}

// FindSpan returns the knot span index i such that knots[i] <= x < knots[i+1],
// clamped so x at or beyond either endpoint lands in the first or last
// nonempty span. The nonzero basis functions on span i are i-p .. i.
func (s *Space) FindSpan(x float64) int {
	p := s.degree
	n := s.NumBasis() - 1
	if x >= s.knots[n+1] {
		return n
	}
	if x <= s.knots[p] {
		return p
	}
	lo, hi := p, n+1
	for {
		mid := (lo + hi) / 2
		switch {
		case x < s.knots[mid]:
			hi = mid
		case x >= s.knots[mid+1]:
			lo = mid
		default:
			return mid
		}
	}
}

// EvalBasis evaluates the p+1 basis functions that are nonzero on the given
// span at x, writing N_{span-p+j} into out[j]. out must have length p+1.
func (s *Space) EvalBasis(span int, x float64, out []float64) {
	p := s.degree
	if len(out) != p+1 {
		panic("bspline: basis output slice has wrong length")
	}
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	out[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = x - s.knots[span+1-j]
		right[j] = s.knots[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := out[r] / (right[r+1] + left[j-r])
			out[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		out[j] = saved
	}
}

// EvalBasisDerivs evaluates the nonzero basis functions and their first
// derivatives on the given span at x. vals and ders must have length p+1;
// entry j corresponds to basis function span-p+j.
func (s *Space) EvalBasisDerivs(span int, x float64, vals, ders []float64) {
	p := s.degree
	if len(vals) != p+1 || len(ders) != p+1 {
		panic("bspline: basis output slice has wrong length")
	}
	// ndu upper triangle holds lower-degree basis values, lower triangle
	// the knot-difference denominators (Cox-de Boor recurrence table).
	ndu := make([][]float64, p+1)
	for i := range ndu {
		ndu[i] = make([]float64, p+1)
	}
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	ndu[0][0] = 1
	for j := 1; j <= p; j++ {
		left[j] = x - s.knots[span+1-j]
		right[j] = s.knots[span+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			ndu[j][r] = right[r+1] + left[j-r]
			tmp := ndu[r][j-1] / ndu[j][r]
			ndu[r][j] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		ndu[j][j] = saved
	}
	for j := 0; j <= p; j++ {
		vals[j] = ndu[j][p]
	}
	for r := 0; r <= p; r++ {
		d := 0.0
		if r > 0 {
			d += ndu[r-1][p-1] / ndu[p][r-1]
		}
		if r < p {
			d -= ndu[r][p-1] / ndu[p][r]
		}
		ders[r] = float64(p) * d
	}
}
