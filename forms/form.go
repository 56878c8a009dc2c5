package forms

import (
	"errors"
	"fmt"
)

var (
	// ErrDomainMismatch reports a form whose integral domain differs from
	// the domain of its trial/test spaces.
	ErrDomainMismatch = errors.New("forms: integral domain does not match function space domain")

	// ErrFieldMismatch reports a problem assembled from forms whose
	// trial/test fields differ from the declared unknowns.
	ErrFieldMismatch = errors.New("forms: trial/test field mismatch")
)

// Integral is an integrand paired with the domain it is integrated over.
type Integral struct {
	dom       *Domain
	integrand Expr
}

// Int builds the integral of e over d.
func Int(d *Domain, e Expr) Integral {
	return Integral{dom: d, integrand: e}
}

// Domain returns the integration domain.
func (i Integral) Domain() *Domain { return i.dom }

// Integrand returns the integrand expression.
func (i Integral) Integrand() Expr { return i.integrand }

// BilinearForm is a symbolic bilinear form a(u, v): the left-hand side of a
// variational equation, linear in both the trial field u and test field v.
type BilinearForm struct {
	trial, test *ScalarField
	body        Integral
}

// NewBilinearForm builds a(trial, test) = body. The trial and test fields
// must live on the body's integration domain.
func NewBilinearForm(trial, test *ScalarField, body Integral) (*BilinearForm, error) {
	for _, f := range []*ScalarField{trial, test} {
		if f.Space().Domain() != body.Domain() {
			return nil, fmt.Errorf("%w: field %q on %q, integral over %q",
				ErrDomainMismatch, f.Name(), f.Space().Domain().Name(), body.Domain().Name())
		}
	}
	return &BilinearForm{trial: trial, test: test, body: body}, nil
}

// Trial returns the trial field placeholder.
func (a *BilinearForm) Trial() *ScalarField { return a.trial }

// Test returns the test field placeholder.
func (a *BilinearForm) Test() *ScalarField { return a.test }

// Body returns the form's integral.
func (a *BilinearForm) Body() Integral { return a.body }

// LinearForm is a symbolic linear form l(v): the right-hand side of a
// variational equation, linear in the test field v.
type LinearForm struct {
	test *ScalarField
	body Integral
}

// NewLinearForm builds l(test) = body.
func NewLinearForm(test *ScalarField, body Integral) (*LinearForm, error) {
	if test.Space().Domain() != body.Domain() {
		return nil, fmt.Errorf("%w: field %q on %q, integral over %q",
			ErrDomainMismatch, test.Name(), test.Space().Domain().Name(), body.Domain().Name())
	}
	return &LinearForm{test: test, body: body}, nil
}

// Test returns the test field placeholder.
func (l *LinearForm) Test() *ScalarField { return l.test }

// Body returns the form's integral.
func (l *LinearForm) Body() Integral { return l.body }

// EssentialBC constrains a field to a prescribed value on part of the
// domain boundary.
type EssentialBC struct {
	field *ScalarField
	value Expr
	on    Boundary
}

// NewEssentialBC builds the Dirichlet constraint field = value on the
// given boundary.
func NewEssentialBC(field *ScalarField, value Expr, on Boundary) EssentialBC {
	return EssentialBC{field: field, value: value, on: on}
}

// Field returns the constrained field placeholder.
func (bc EssentialBC) Field() *ScalarField { return bc.field }

// Value returns the prescribed boundary value.
func (bc EssentialBC) Value() Expr { return bc.value }

// On returns the boundary part the constraint applies to.
func (bc EssentialBC) On() Boundary { return bc.on }

// VariationalProblem is the symbolic statement: find unknown u in V such
// that lhs(u, v) = rhs(v) for all test v in V, subject to the essential
// boundary conditions.
type VariationalProblem struct {
	unknown, test *ScalarField
	lhs           *BilinearForm
	rhs           *LinearForm
	bcs           []EssentialBC
}

// Find assembles the variational problem statement. The forms must be
// stated in terms of the declared unknown and test fields, and all
// boundary conditions must constrain the unknown.
func Find(unknown, test *ScalarField, lhs *BilinearForm, rhs *LinearForm, bcs ...EssentialBC) (*VariationalProblem, error) {
	if lhs.Trial() != unknown || lhs.Test() != test {
		return nil, fmt.Errorf("%w: bilinear form is not stated in (%q, %q)",
			ErrFieldMismatch, unknown.Name(), test.Name())
	}
	if rhs.Test() != test {
		return nil, fmt.Errorf("%w: linear form is not stated in %q",
			ErrFieldMismatch, test.Name())
	}
	for _, bc := range bcs {
		if bc.Field() != unknown {
			return nil, fmt.Errorf("%w: boundary condition constrains %q, not %q",
				ErrFieldMismatch, bc.Field().Name(), unknown.Name())
		}
	}
	return &VariationalProblem{unknown: unknown, test: test, lhs: lhs, rhs: rhs, bcs: bcs}, nil
}

// Unknown returns the trial field the problem solves for.
func (p *VariationalProblem) Unknown() *ScalarField { return p.unknown }

// Test returns the test field.
func (p *VariationalProblem) Test() *ScalarField { return p.test }

// LHS returns the bilinear form.
func (p *VariationalProblem) LHS() *BilinearForm { return p.lhs }

// RHS returns the linear form.
func (p *VariationalProblem) RHS() *LinearForm { return p.rhs }

// BCs returns the essential boundary conditions.
func (p *VariationalProblem) BCs() []EssentialBC { return p.bcs }
