package forms

import "fmt"

// ScalarFunctionSpace is a symbolic space of scalar functions over a domain.
type ScalarFunctionSpace struct {
	name string
	dom  *Domain
}

// NewScalarFunctionSpace constructs a named scalar function space over d.
func NewScalarFunctionSpace(name string, d *Domain) *ScalarFunctionSpace {
	return &ScalarFunctionSpace{name: name, dom: d}
}

// Name returns the space's name.
func (s *ScalarFunctionSpace) Name() string { return s.name }

// Domain returns the domain the space is defined over.
func (s *ScalarFunctionSpace) Domain() *Domain { return s.dom }

// Element returns a named symbolic element of the space, usable as a trial
// or test function in variational forms.
func (s *ScalarFunctionSpace) Element(name string) *ScalarField {
	return &ScalarField{name: name, space: s}
}

// ScalarField is a symbolic placeholder for a function in a scalar space.
// It evaluates through the sample bound under its name.
type ScalarField struct {
	name  string
	space *ScalarFunctionSpace
}

// Name returns the placeholder's name, used as the binding key when
// discrete fields are substituted.
func (f *ScalarField) Name() string { return f.name }

// Space returns the function space the field belongs to.
func (f *ScalarField) Space() *ScalarFunctionSpace { return f.space }

func (f *ScalarField) Eval(_ Point, fs Fields) float64 {
	s, ok := fs[f.name]
	if !ok {
		panic(fmt.Sprintf("forms: no sample bound for field %q", f.name))
	}
	return s.V
}

func (f *ScalarField) Diff(v Var) Expr { return fieldDeriv{name: f.name, v: v} }

func (f *ScalarField) String() string { return f.name }
