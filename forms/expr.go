package forms

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Var identifies a spatial coordinate variable.
type Var uint8

const (
	VarX Var = iota
	VarY
)

func (v Var) String() string {
	if v == VarX {
		return "x"
	}
	return "y"
}

// Point is a position in physical space.
type Point struct {
	X, Y float64
}

// FieldSample holds the value and first derivatives of a discrete field
// at a single point. It is what gets substituted for a ScalarField
// placeholder during numerical evaluation.
type FieldSample struct {
	V, Dx, Dy float64
}

// Fields maps placeholder field names to their samples at the current point.
type Fields map[string]FieldSample

// Expr is a scalar symbolic expression over spatial coordinates and named
// field placeholders.
type Expr interface {
	// Eval evaluates the expression at p, substituting samples for any
	// field placeholders it contains. Panics if a referenced field has no
	// sample bound.
	Eval(p Point, f Fields) float64

	// Diff returns the symbolic partial derivative with respect to v.
	Diff(v Var) Expr

	String() string
}

// constant

type constant float64

// Const returns the constant expression c.
func Const(c float64) Expr { return constant(c) }

func (c constant) Eval(Point, Fields) float64 { return float64(c) }
func (c constant) Diff(Var) Expr              { return constant(0) }
func (c constant) String() string             { return fmt.Sprintf("%g", float64(c)) }

// coordinate

type coord Var

func (c coord) Eval(p Point, _ Fields) float64 {
	if Var(c) == VarX {
		return p.X
	}
	return p.Y
}

func (c coord) Diff(v Var) Expr {
	if Var(c) == v {
		return constant(1)
	}
	return constant(0)
}

func (c coord) String() string { return Var(c).String() }

// n-ary sum

type sum []Expr

// Add returns the sum of the given expressions.
func Add(terms ...Expr) Expr {
	flat := make(sum, 0, len(terms))
	acc := 0.0
	for _, t := range terms {
		switch tt := t.(type) {
		case constant:
			acc += float64(tt)
		case sum:
			flat = append(flat, tt...)
		default:
			flat = append(flat, t)
		}
	}
	if acc != 0 || len(flat) == 0 {
		flat = append(flat, constant(acc))
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return flat
}

// Sub returns a - b.
func Sub(a, b Expr) Expr { return Add(a, Neg(b)) }

// Neg returns -e.
func Neg(e Expr) Expr { return Scale(-1, e) }

func (s sum) Eval(p Point, f Fields) float64 {
	total := 0.0
	for _, t := range s {
		total += t.Eval(p, f)
	}
	return total
}

func (s sum) Diff(v Var) Expr {
	terms := make([]Expr, len(s))
	for i, t := range s {
		terms[i] = t.Diff(v)
	}
	return Add(terms...)
}

func (s sum) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// n-ary product

type prod []Expr

// Mul returns the product of the given expressions.
func Mul(factors ...Expr) Expr {
	flat := make(prod, 0, len(factors))
	acc := 1.0
	for _, t := range factors {
		switch tt := t.(type) {
		case constant:
			acc *= float64(tt)
		case prod:
			flat = append(flat, tt...)
		default:
			flat = append(flat, t)
		}
	}
	if acc == 0 {
		return constant(0)
	}
	if acc != 1 || len(flat) == 0 {
		flat = append(prod{constant(acc)}, flat...)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return flat
}

// Scale returns c * e.
func Scale(c float64, e Expr) Expr { return Mul(constant(c), e) }

func (m prod) Eval(p Point, f Fields) float64 {
	total := 1.0
	for _, t := range m {
		total *= t.Eval(p, f)
	}
	return total
}

func (m prod) Diff(v Var) Expr {
	// Product rule over all factors.
	terms := make([]Expr, 0, len(m))
	for i := range m {
		factors := make([]Expr, len(m))
		copy(factors, m)
		factors[i] = m[i].Diff(v)
		terms = append(terms, Mul(factors...))
	}
	return Add(terms...)
}

func (m prod) String() string {
	parts := make([]string, len(m))
	for i, t := range m {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " * ") + ")"
}

// integer power

type ipow struct {
	base Expr
	n    int
}

// Pow returns base raised to the non-negative integer power n.
func Pow(base Expr, n int) Expr {
	if n < 0 {
		panic("forms: negative integer power")
	}
	switch n {
	case 0:
		return constant(1)
	case 1:
		return base
	}
	return ipow{base: base, n: n}
}

func (e ipow) Eval(p Point, f Fields) float64 {
	b := e.base.Eval(p, f)
	out := b
	for i := 1; i < e.n; i++ {
		out *= b
	}
	return out
}

func (e ipow) Diff(v Var) Expr {
	return Mul(constant(float64(e.n)), Pow(e.base, e.n-1), e.base.Diff(v))
}

func (e ipow) String() string { return fmt.Sprintf("%s^%d", e.base, e.n) }

// elementary functions

type unaryKind uint8

const (
	opSin unaryKind = iota
	opCos
	opExp
)

type unary struct {
	kind unaryKind
	arg  Expr
}

// Sin returns sin(e).
func Sin(e Expr) Expr { return unary{kind: opSin, arg: e} }

// Cos returns cos(e).
func Cos(e Expr) Expr { return unary{kind: opCos, arg: e} }

// Exp returns exp(e).
func Exp(e Expr) Expr { return unary{kind: opExp, arg: e} }

func (u unary) Eval(p Point, f Fields) float64 {
	a := u.arg.Eval(p, f)
	switch u.kind {
	case opSin:
		return math.Sin(a)
	case opCos:
		return math.Cos(a)
	default:
		return math.Exp(a)
	}
}

func (u unary) Diff(v Var) Expr {
	var outer Expr
	switch u.kind {
	case opSin:
		outer = Cos(u.arg)
	case opCos:
		outer = Neg(Sin(u.arg))
	default:
		outer = Exp(u.arg)
	}
	return Mul(outer, u.arg.Diff(v))
}

func (u unary) String() string {
	var name string
	switch u.kind {
	case opSin:
		name = "sin"
	case opCos:
		name = "cos"
	default:
		name = "exp"
	}
	return name + "(" + u.arg.String() + ")"
}

// field placeholder derivative

type fieldDeriv struct {
	name string
	v    Var
}

func (d fieldDeriv) Eval(p Point, f Fields) float64 {
	s, ok := f[d.name]
	if !ok {
		panic(fmt.Sprintf("forms: no sample bound for field %q", d.name))
	}
	if d.v == VarX {
		return s.Dx
	}
	return s.Dy
}

func (d fieldDeriv) Diff(Var) Expr {
	// Discrete fields carry only first derivatives in their samples.
	panic(fmt.Sprintf("forms: second derivative of field %q is not supported", d.name))
}

func (d fieldDeriv) String() string { return fmt.Sprintf("d%s/d%s", d.name, d.v) }

// Dx returns the partial derivative of e with respect to x.
func Dx(e Expr) Expr { return e.Diff(VarX) }

// Dy returns the partial derivative of e with respect to y.
func Dy(e Expr) Expr { return e.Diff(VarY) }

// GradDot expands the inner product of the gradients of a and b,
// grad(a) . grad(b), into a scalar expression.
func GradDot(a, b Expr) Expr {
	return Add(Mul(Dx(a), Dx(b)), Mul(Dy(a), Dy(b)))
}

// CollectFields returns the sorted names of all field placeholders
// referenced by e, directly or through derivatives.
func CollectFields(e Expr) []string {
	seen := make(map[string]bool)
	collectFields(e, seen)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collectFields(e Expr, seen map[string]bool) {
	switch t := e.(type) {
	case *ScalarField:
		seen[t.name] = true
	case fieldDeriv:
		seen[t.name] = true
	case sum:
		for _, c := range t {
			collectFields(c, seen)
		}
	case prod:
		for _, c := range t {
			collectFields(c, seen)
		}
	case ipow:
		collectFields(t.base, seen)
	case unary:
		collectFields(t.arg, seen)
	}
}
