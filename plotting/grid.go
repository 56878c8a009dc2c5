package plotting

import "math"

// Grid is a scalar field sampled on a tensor grid. It implements
// plotter.GridXYZ for heat map rendering.
type Grid struct {
	xs, ys []float64
	z      []float64 // row-major: z[iy*len(xs)+ix]
}

// SampleGrid evaluates f at every point of the tensor grid xs x ys.
func SampleGrid(xs, ys []float64, f func(x, y float64) float64) *Grid {
	g := &Grid{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
		z:  make([]float64, len(xs)*len(ys)),
	}
	for iy, y := range ys {
		for ix, x := range xs {
			g.z[iy*len(xs)+ix] = f(x, y)
		}
	}
	return g
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// X returns the x coordinate of column c.
func (g *Grid) X(c int) float64 { return g.xs[c] }

// Y returns the y coordinate of row r.
func (g *Grid) Y(r int) float64 { return g.ys[r] }

// Z returns the sampled value at column c, row r.
func (g *Grid) Z(c, r int) float64 { return g.z[r*len(g.xs)+c] }

// Sub returns the pointwise difference g - other. The grids must share
// dimensions.
func (g *Grid) Sub(other *Grid) *Grid {
	if len(g.xs) != len(other.xs) || len(g.ys) != len(other.ys) {
		panic("plotting: grid dimension mismatch")
	}
	out := &Grid{xs: g.xs, ys: g.ys, z: make([]float64, len(g.z))}
	for i := range g.z {
		out.z[i] = g.z[i] - other.z[i]
	}
	return out
}

// Range returns the minimum and maximum sampled values.
func (g *Grid) Range() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range g.z {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}
