package discrete

import (
	"errors"
	"fmt"

	"github.com/anushkasinghh/igafem/bspline"
	"github.com/anushkasinghh/igafem/forms"
)

// ErrWrongDomain reports a symbolic object discretized against a mesh or
// space built for a different domain.
var ErrWrongDomain = errors.New("discrete: object does not belong to the discretized domain")

// Space is a tensor-product B-spline space over a discretized domain.
// Global degree-of-freedom index of basis (ix, iy) is ix*ny + iy.
type Space struct {
	sym  *forms.ScalarFunctionSpace
	dom  *Domain
	dirs [2]*bspline.Space
}

// DiscretizeSpace lowers a symbolic scalar function space onto the mesh
// with per-dimension polynomial degrees from cfg.
func DiscretizeSpace(V *forms.ScalarFunctionSpace, dom *Domain, cfg Config) (*Space, error) {
	if V.Domain() != dom.Symbolic() {
		return nil, fmt.Errorf("%w: space %q is over %q", ErrWrongDomain, V.Name(), V.Domain().Name())
	}
	if err := cfg.validate(dom.Dim()); err != nil {
		return nil, err
	}
	s := &Space{sym: V, dom: dom}
	for dim := 0; dim < dom.Dim(); dim++ {
		lo, hi := dom.Symbolic().Bounds(dim)
		sp, err := bspline.NewUniform(cfg.Degree[dim], dom.NumCells(dim), lo, hi)
		if err != nil {
			return nil, err
		}
		s.dirs[dim] = sp
	}
	return s, nil
}

// Symbolic returns the symbolic function space.
func (s *Space) Symbolic() *forms.ScalarFunctionSpace { return s.sym }

// Domain returns the discretized domain the space lives on.
func (s *Space) Domain() *Domain { return s.dom }

// Direction returns the univariate spline space along dimension dim.
func (s *Space) Direction(dim int) *bspline.Space { return s.dirs[dim] }

// Degree returns the polynomial degree along dimension dim.
func (s *Space) Degree(dim int) int { return s.dirs[dim].Degree() }

// Breaks returns the mesh breakpoints along dimension dim.
func (s *Space) Breaks(dim int) []float64 { return s.dirs[dim].Breaks() }

// NumDOF returns the total number of degrees of freedom.
func (s *Space) NumDOF() int {
	return s.dirs[0].NumBasis() * s.dirs[1].NumBasis()
}

// index maps tensor basis indices to the global DOF index.
func (s *Space) index(ix, iy int) int {
	return ix*s.dirs[1].NumBasis() + iy
}
