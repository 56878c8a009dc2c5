package discrete

import (
	"errors"
	"fmt"
	"math"

	"github.com/anushkasinghh/igafem/forms"
)

// ErrUnboundField reports a norm assembled without a binding for one of the
// field placeholders its expression references.
var ErrUnboundField = errors.New("discrete: norm expression references an unbound field")

// Norm is the discretized counterpart of a symbolic norm: a quadrature rule
// over the mesh applied to the norm's integrand.
type Norm struct {
	sym   *forms.Norm
	space *Space
	names []string // placeholder fields the expression references

	expr   forms.Expr
	dxExpr forms.Expr
	dyExpr forms.Expr
}

// DiscretizeNorm lowers a symbolic norm onto the mesh of the given space.
// Gradient terms for H1 kinds are derived symbolically up front.
func DiscretizeNorm(n *forms.Norm, dom *Domain, Vh *Space) (*Norm, error) {
	if Vh.Domain() != dom {
		return nil, fmt.Errorf("%w: space was discretized on a different mesh", ErrWrongDomain)
	}
	if n.Domain() != dom.Symbolic() {
		return nil, fmt.Errorf("%w: norm integrates over %q", ErrWrongDomain, n.Domain().Name())
	}
	dn := &Norm{
		sym:   n,
		space: Vh,
		names: forms.CollectFields(n.Expr()),
		expr:  n.Expr(),
	}
	if n.Kind() != forms.L2 {
		dn.dxExpr = forms.Dx(n.Expr())
		dn.dyExpr = forms.Dy(n.Expr())
	}
	return dn, nil
}

// Kind returns the norm kind.
func (n *Norm) Kind() forms.NormKind { return n.sym.Kind() }

// Assemble binds the named discrete fields into the norm expression and
// integrates it over the mesh, returning the scalar norm value.
func (n *Norm) Assemble(fieldBindings map[string]*Field) (float64, error) {
	bound := make([]*Field, len(n.names))
	for i, name := range n.names {
		f, ok := fieldBindings[name]
		if !ok || f == nil {
			return 0, fmt.Errorf("%w: %q", ErrUnboundField, name)
		}
		bound[i] = f
	}

	sx, sy := n.space.dirs[0], n.space.dirs[1]
	// One extra point over assembly order so the error integrand is
	// resolved a little better than the solution itself.
	rulesX := cellQuadrature(sx.Breaks(), sx.Degree()+2)
	rulesY := cellQuadrature(sy.Breaks(), sy.Degree()+2)

	kind := n.sym.Kind()
	fields := make(forms.Fields, len(n.names))
	total := 0.0
	for cx := range rulesX {
		for cy := range rulesY {
			for qx, xq := range rulesX[cx].x {
				for qy, yq := range rulesY[cy].x {
					w := rulesX[cx].w[qx] * rulesY[cy].w[qy]
					pt := forms.Point{X: xq, Y: yq}
					for i, name := range n.names {
						dx, dy := bound[i].GradAt(xq, yq)
						fields[name] = forms.FieldSample{V: bound[i].At(xq, yq), Dx: dx, Dy: dy}
					}
					acc := 0.0
					if kind != forms.SemiH1 {
						e := n.expr.Eval(pt, fields)
						acc += e * e
					}
					if kind != forms.L2 {
						ex := n.dxExpr.Eval(pt, fields)
						ey := n.dyExpr.Eval(pt, fields)
						acc += ex*ex + ey*ey
					}
					total += w * acc
				}
			}
		}
	}
	return math.Sqrt(total), nil
}
