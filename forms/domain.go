package forms

import (
	"errors"
	"fmt"
)

// ErrBadBounds reports a degenerate or inverted rectangle.
var ErrBadBounds = errors.New("forms: invalid domain bounds")

// Edge selects one or more sides of a rectangular domain boundary.
type Edge uint8

const (
	Left Edge = 1 << iota
	Right
	Bottom
	Top

	AllEdges = Left | Right | Bottom | Top
)

// Boundary is a subset of a domain's boundary, identified by its edges.
type Boundary struct {
	dom   *Domain
	edges Edge
}

// Domain returns the domain the boundary belongs to.
func (b Boundary) Domain() *Domain { return b.dom }

// Edges returns the edge selection mask.
func (b Boundary) Edges() Edge { return b.edges }

// Domain is a symbolic axis-aligned rectangular region in the plane.
type Domain struct {
	name           string
	x0, x1, y0, y1 float64
}

// Square constructs a rectangular domain [x0,x1] x [y0,y1].
func Square(name string, x0, x1, y0, y1 float64) (*Domain, error) {
	if !(x0 < x1) || !(y0 < y1) {
		return nil, fmt.Errorf("%w: [%g,%g]x[%g,%g]", ErrBadBounds, x0, x1, y0, y1)
	}
	return &Domain{name: name, x0: x0, x1: x1, y0: y0, y1: y1}, nil
}

// UnitSquare constructs the domain [0,1] x [0,1].
func UnitSquare(name string) *Domain {
	return &Domain{name: name, x0: 0, x1: 1, y0: 0, y1: 1}
}

// Name returns the domain's name.
func (d *Domain) Name() string { return d.name }

// Dim returns the spatial dimension of the domain.
func (d *Domain) Dim() int { return 2 }

// Bounds returns the extent of the domain along dimension dim.
func (d *Domain) Bounds(dim int) (lo, hi float64) {
	if dim == 0 {
		return d.x0, d.x1
	}
	return d.y0, d.y1
}

// Coordinates returns the symbolic coordinate expressions of the domain.
func (d *Domain) Coordinates() (x, y Expr) {
	return coord(VarX), coord(VarY)
}

// Boundary returns the whole boundary of the domain.
func (d *Domain) Boundary() Boundary {
	return Boundary{dom: d, edges: AllEdges}
}

// BoundaryEdges returns the boundary restricted to the selected edges.
func (d *Domain) BoundaryEdges(edges Edge) Boundary {
	return Boundary{dom: d, edges: edges & AllEdges}
}
