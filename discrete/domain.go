package discrete

import (
	"github.com/anushkasinghh/igafem/forms"
)

// Domain is the discretized counterpart of a symbolic domain: a tensor grid
// of break lines over the rectangle.
type Domain struct {
	sym    *forms.Domain
	breaks [2][]float64
	comm   Communicator
}

// DiscretizeDomain lowers a symbolic domain onto a uniform tensor mesh with
// cfg.NCells cells per dimension.
func DiscretizeDomain(dom *forms.Domain, cfg Config) (*Domain, error) {
	if err := cfg.validate(dom.Dim()); err != nil {
		return nil, err
	}
	d := &Domain{sym: dom, comm: cfg.Comm}
	for dim := 0; dim < dom.Dim(); dim++ {
		lo, hi := dom.Bounds(dim)
		n := cfg.NCells[dim]
		bk := make([]float64, n+1)
		h := (hi - lo) / float64(n)
		for i := range bk {
			bk[i] = lo + float64(i)*h
		}
		bk[n] = hi
		d.breaks[dim] = bk
	}
	return d, nil
}

// Symbolic returns the symbolic domain this mesh discretizes.
func (d *Domain) Symbolic() *forms.Domain { return d.sym }

// Dim returns the spatial dimension.
func (d *Domain) Dim() int { return d.sym.Dim() }

// NumCells returns the number of cells along dimension dim.
func (d *Domain) NumCells(dim int) int { return len(d.breaks[dim]) - 1 }

// Breaks returns the ordered mesh breakpoints along dimension dim.
func (d *Domain) Breaks(dim int) []float64 {
	out := make([]float64, len(d.breaks[dim]))
	copy(out, d.breaks[dim])
	return out
}
