package discrete

// Field is a numerical solution field: a coefficient vector over a
// tensor-product spline space. It is callable at arbitrary points of the
// domain through At and GradAt.
type Field struct {
	space  *Space
	coeffs []float64
}

// NewField wraps a coefficient vector over the space. The vector is copied.
func NewField(space *Space, coeffs []float64) *Field {
	if len(coeffs) != space.NumDOF() {
		panic("discrete: coefficient length does not match space dimension")
	}
	c := make([]float64, len(coeffs))
	copy(c, coeffs)
	return &Field{space: space, coeffs: c}
}

// Space returns the field's discrete space.
func (f *Field) Space() *Space { return f.space }

// Coeffs returns a copy of the coefficient vector.
func (f *Field) Coeffs() []float64 {
	out := make([]float64, len(f.coeffs))
	copy(out, f.coeffs)
	return out
}

// At evaluates the field at (x, y).
func (f *Field) At(x, y float64) float64 {
	sx, sy := f.space.dirs[0], f.space.dirs[1]
	px, py := sx.Degree(), sy.Degree()
	spanX, spanY := sx.FindSpan(x), sy.FindSpan(y)

	nx := make([]float64, px+1)
	ny := make([]float64, py+1)
	sx.EvalBasis(spanX, x, nx)
	sy.EvalBasis(spanY, y, ny)

	v := 0.0
	for a := 0; a <= px; a++ {
		row := f.coeffs[(spanX-px+a)*sy.NumBasis():]
		for b := 0; b <= py; b++ {
			v += nx[a] * ny[b] * row[spanY-py+b]
		}
	}
	return v
}

// GradAt evaluates the field's gradient at (x, y).
func (f *Field) GradAt(x, y float64) (dx, dy float64) {
	sx, sy := f.space.dirs[0], f.space.dirs[1]
	px, py := sx.Degree(), sy.Degree()
	spanX, spanY := sx.FindSpan(x), sy.FindSpan(y)

	nx := make([]float64, px+1)
	dnx := make([]float64, px+1)
	ny := make([]float64, py+1)
	dny := make([]float64, py+1)
	sx.EvalBasisDerivs(spanX, x, nx, dnx)
	sy.EvalBasisDerivs(spanY, y, ny, dny)

	for a := 0; a <= px; a++ {
		row := f.coeffs[(spanX-px+a)*sy.NumBasis():]
		for b := 0; b <= py; b++ {
			c := row[spanY-py+b]
			dx += dnx[a] * ny[b] * c
			dy += nx[a] * dny[b] * c
		}
	}
	return dx, dy
}
