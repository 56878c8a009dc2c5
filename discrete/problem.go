package discrete

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/anushkasinghh/igafem/forms"
)

// Problem is the discretized counterpart of a variational problem: a sparse
// Galerkin system over the free degrees of freedom, with essential boundary
// values eliminated. Assembly happens once, on first Solve; the assembled
// system is cached so repeated solves are deterministic.
type Problem struct {
	eq    *forms.VariationalProblem
	space *Space

	assembled bool
	mat       *sparse.CSR
	rhs       []float64
	g2r       []int     // global DOF -> reduced index, -1 if constrained
	fixed     []float64 // prescribed values at constrained DOFs
}

// DiscretizeEquation lowers a symbolic variational problem onto the
// discretized space by Galerkin projection.
func DiscretizeEquation(eq *forms.VariationalProblem, dom *Domain, Vh *Space) (*Problem, error) {
	if Vh.Domain() != dom {
		return nil, fmt.Errorf("%w: space was discretized on a different mesh", ErrWrongDomain)
	}
	if eq.Unknown().Space() != Vh.Symbolic() {
		return nil, fmt.Errorf("%w: unknown %q is not in space %q",
			ErrWrongDomain, eq.Unknown().Name(), Vh.Symbolic().Name())
	}
	if eq.LHS().Body().Domain() != dom.Symbolic() {
		return nil, fmt.Errorf("%w: bilinear form integrates over %q",
			ErrWrongDomain, eq.LHS().Body().Domain().Name())
	}
	if eq.Unknown().Name() == eq.Test().Name() {
		return nil, fmt.Errorf("%w: trial and test fields share the name %q",
			forms.ErrFieldMismatch, eq.Unknown().Name())
	}
	return &Problem{eq: eq, space: Vh}, nil
}

// Space returns the discrete trial/test space.
func (p *Problem) Space() *Space { return p.space }

// Solve assembles the system if needed and solves it by conjugate
// gradients. The bilinear form is assumed symmetric positive definite on
// the free DOFs, which holds for the elliptic problems this engine targets.
func (p *Problem) Solve() (*Field, error) {
	if !p.assembled {
		if err := p.assemble(); err != nil {
			return nil, err
		}
		p.assembled = true
	}
	x, err := conjGrad(p.mat, p.rhs)
	if err != nil {
		return nil, err
	}
	coeffs := make([]float64, p.space.NumDOF())
	copy(coeffs, p.fixed)
	for g, r := range p.g2r {
		if r >= 0 {
			coeffs[g] = x[r]
		}
	}
	return NewField(p.space, coeffs), nil
}

func (p *Problem) assemble() error {
	sx, sy := p.space.dirs[0], p.space.dirs[1]
	nbx, nby := sx.NumBasis(), sy.NumBasis()
	ndof := p.space.NumDOF()

	// Mark constrained DOFs and their prescribed values. Boundary values
	// are sampled at the Greville point of each edge DOF; for constant
	// boundary data this is exact by the partition of unity.
	constrained := make([]bool, ndof)
	p.fixed = make([]float64, ndof)
	gx, gy := sx.Greville(), sy.Greville()
	x0, x1 := sx.Bounds()
	y0, y1 := sy.Bounds()
	for _, bc := range p.eq.BCs() {
		val := bc.Value()
		fix := func(ix, iy int, pt forms.Point) {
			g := p.space.index(ix, iy)
			constrained[g] = true
			p.fixed[g] = val.Eval(pt, nil)
		}
		edges := bc.On().Edges()
		for iy := 0; iy < nby; iy++ {
			if edges&forms.Left != 0 {
				fix(0, iy, forms.Point{X: x0, Y: gy[iy]})
			}
			if edges&forms.Right != 0 {
				fix(nbx-1, iy, forms.Point{X: x1, Y: gy[iy]})
			}
		}
		for ix := 0; ix < nbx; ix++ {
			if edges&forms.Bottom != 0 {
				fix(ix, 0, forms.Point{X: gx[ix], Y: y0})
			}
			if edges&forms.Top != 0 {
				fix(ix, nby-1, forms.Point{X: gx[ix], Y: y1})
			}
		}
	}

	p.g2r = make([]int, ndof)
	nFree := 0
	for g := range p.g2r {
		if constrained[g] {
			p.g2r[g] = -1
			continue
		}
		p.g2r[g] = nFree
		nFree++
	}

	dok := sparse.NewDOK(nFree, nFree)
	rhs := make([]float64, nFree)

	rulesX := cellQuadrature(sx.Breaks(), sx.Degree()+1)
	rulesY := cellQuadrature(sy.Breaks(), sy.Degree()+1)
	basisX := tabulateBasis(sx, rulesX)
	basisY := tabulateBasis(sy, rulesY)

	px, py := sx.Degree(), sy.Degree()
	nloc := (px + 1) * (py + 1)
	samples := make([]forms.FieldSample, nloc)
	globals := make([]int, nloc)

	trial := p.eq.Unknown().Name()
	test := p.eq.Test().Name()
	aInt := p.eq.LHS().Body().Integrand()
	lInt := p.eq.RHS().Body().Integrand()
	fields := make(forms.Fields, 2)

	for cx := range rulesX {
		bx := basisX[cx]
		for cy := range rulesY {
			by := basisY[cy]
			for a := 0; a <= px; a++ {
				for b := 0; b <= py; b++ {
					globals[a*(py+1)+b] = p.space.index(bx.first+a, by.first+b)
				}
			}
			for qx, xq := range rulesX[cx].x {
				for qy, yq := range rulesY[cy].x {
					w := rulesX[cx].w[qx] * rulesY[cy].w[qy]
					pt := forms.Point{X: xq, Y: yq}
					for a := 0; a <= px; a++ {
						for b := 0; b <= py; b++ {
							samples[a*(py+1)+b] = forms.FieldSample{
								V:  bx.vals[qx][a] * by.vals[qy][b],
								Dx: bx.ders[qx][a] * by.vals[qy][b],
								Dy: bx.vals[qx][a] * by.ders[qy][b],
							}
						}
					}
					for i := 0; i < nloc; i++ {
						ri := p.g2r[globals[i]]
						fields[test] = samples[i]
						if ri >= 0 {
							delete(fields, trial)
							rhs[ri] += w * lInt.Eval(pt, fields)
						}
						for j := 0; j < nloc; j++ {
							gj := globals[j]
							rj := p.g2r[gj]
							if ri < 0 || (rj < 0 && p.fixed[gj] == 0) {
								continue
							}
							fields[trial] = samples[j]
							v := w * aInt.Eval(pt, fields)
							if rj >= 0 {
								dok.Set(ri, rj, dok.At(ri, rj)+v)
							} else {
								// Lift the prescribed boundary value.
								rhs[ri] -= v * p.fixed[gj]
							}
						}
					}
				}
			}
		}
	}

	p.mat = dok.ToCSR()
	p.rhs = rhs
	return nil
}
