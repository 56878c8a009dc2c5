package discrete

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/anushkasinghh/igafem/bspline"
)

// quadRule holds Gauss-Legendre points and weights for one cell.
type quadRule struct {
	x, w []float64
}

// cellQuadrature builds an npts-point Gauss-Legendre rule on every cell of
// the break sequence.
func cellQuadrature(breaks []float64, npts int) []quadRule {
	rules := make([]quadRule, len(breaks)-1)
	leg := quad.Legendre{}
	for c := range rules {
		x := make([]float64, npts)
		w := make([]float64, npts)
		leg.FixedLocations(x, w, breaks[c], breaks[c+1])
		rules[c] = quadRule{x: x, w: w}
	}
	return rules
}

// cellBasis holds basis values and first derivatives at each quadrature
// point of one cell. first is the index of the first nonzero basis function.
type cellBasis struct {
	first int
	vals  [][]float64 // [qp][p+1]
	ders  [][]float64 // [qp][p+1]
}

// tabulateBasis evaluates the nonzero basis functions of sp at every
// quadrature point of every cell.
func tabulateBasis(sp *bspline.Space, rules []quadRule) []cellBasis {
	p := sp.Degree()
	out := make([]cellBasis, len(rules))
	for c, rule := range rules {
		cb := cellBasis{
			vals: make([][]float64, len(rule.x)),
			ders: make([][]float64, len(rule.x)),
		}
		for q, x := range rule.x {
			span := sp.FindSpan(x)
			cb.first = span - p
			cb.vals[q] = make([]float64, p+1)
			cb.ders[q] = make([]float64, p+1)
			sp.EvalBasisDerivs(span, x, cb.vals[q], cb.ders[q])
		}
		out[c] = cb
	}
	return out
}
