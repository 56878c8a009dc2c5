package forms

import (
	"errors"
	"fmt"
)

// ErrBadNormKind reports an unrecognized norm kind.
var ErrBadNormKind = errors.New("forms: invalid norm kind")

// NormKind selects the function-space norm to measure an expression in.
type NormKind uint8

const (
	// L2 is the L2 norm: sqrt(int e^2).
	L2 NormKind = iota
	// H1 is the full H1 norm: sqrt(int e^2 + |grad e|^2).
	H1
	// SemiH1 is the H1 semi-norm: sqrt(int |grad e|^2).
	SemiH1
)

func (k NormKind) String() string {
	switch k {
	case L2:
		return "l2"
	case H1:
		return "h1"
	case SemiH1:
		return "semi-h1"
	}
	return fmt.Sprintf("NormKind(%d)", uint8(k))
}

// Norm is a symbolic norm of an expression over a domain. The expression
// may reference field placeholders; discrete fields are bound to them when
// the discretized norm is assembled.
type Norm struct {
	expr Expr
	dom  *Domain
	kind NormKind
}

// NewNorm builds the norm of e over d in the given kind.
func NewNorm(e Expr, d *Domain, kind NormKind) (*Norm, error) {
	if kind > SemiH1 {
		return nil, fmt.Errorf("%w: %d", ErrBadNormKind, kind)
	}
	return &Norm{expr: e, dom: d, kind: kind}, nil
}

// Expr returns the measured expression.
func (n *Norm) Expr() Expr { return n.expr }

// Domain returns the integration domain.
func (n *Norm) Domain() *Domain { return n.dom }

// Kind returns the norm kind.
func (n *Norm) Kind() NormKind { return n.kind }
