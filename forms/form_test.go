package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareBounds(t *testing.T) {
	if _, err := Square("bad", 1, 0, 0, 1); !errors.Is(err, ErrBadBounds) {
		t.Errorf("inverted x bounds: err = %v, want ErrBadBounds", err)
	}
	if _, err := Square("bad", 0, 1, 2, 2); !errors.Is(err, ErrBadBounds) {
		t.Errorf("degenerate y bounds: err = %v, want ErrBadBounds", err)
	}
	d, err := Square("ok", -1, 1, 0, 2)
	require.NoError(t, err)
	lo, hi := d.Bounds(0)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 1.0, hi)
	lo, hi = d.Bounds(1)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
}

func TestFormDomainMismatch(t *testing.T) {
	d1 := UnitSquare("Omega1")
	d2 := UnitSquare("Omega2")
	V := NewScalarFunctionSpace("V", d1)
	u := V.Element("u")
	v := V.Element("v")

	_, err := NewBilinearForm(u, v, Int(d2, GradDot(u, v)))
	assert.ErrorIs(t, err, ErrDomainMismatch)

	_, err = NewLinearForm(v, Int(d2, v))
	assert.ErrorIs(t, err, ErrDomainMismatch)
}

func TestFindFieldMismatch(t *testing.T) {
	dom := UnitSquare("Omega")
	V := NewScalarFunctionSpace("V", dom)
	u := V.Element("u")
	v := V.Element("v")
	w := V.Element("w")

	a, err := NewBilinearForm(u, v, Int(dom, GradDot(u, v)))
	require.NoError(t, err)
	l, err := NewLinearForm(v, Int(dom, v))
	require.NoError(t, err)

	// Problem stated in a different unknown than the bilinear form.
	_, err = Find(w, v, a, l)
	assert.ErrorIs(t, err, ErrFieldMismatch)

	// Boundary condition constrains the wrong field.
	bc := NewEssentialBC(w, Const(0), dom.Boundary())
	_, err = Find(u, v, a, l, bc)
	assert.ErrorIs(t, err, ErrFieldMismatch)

	// A well formed statement goes through.
	eq, err := Find(u, v, a, l, NewEssentialBC(u, Const(0), dom.Boundary()))
	require.NoError(t, err)
	assert.Equal(t, u, eq.Unknown())
	assert.Equal(t, v, eq.Test())
	assert.Len(t, eq.BCs(), 1)
}

func TestNormKinds(t *testing.T) {
	dom := UnitSquare("Omega")
	_, err := NewNorm(Const(1), dom, NormKind(42))
	assert.ErrorIs(t, err, ErrBadNormKind)

	for kind, name := range map[NormKind]string{L2: "l2", H1: "h1", SemiH1: "semi-h1"} {
		n, err := NewNorm(Const(1), dom, kind)
		require.NoError(t, err)
		assert.Equal(t, name, n.Kind().String())
	}
}

func TestBoundaryEdges(t *testing.T) {
	dom := UnitSquare("Omega")
	assert.Equal(t, AllEdges, dom.Boundary().Edges())
	assert.Equal(t, Left|Top, dom.BoundaryEdges(Left|Top).Edges())
	assert.Equal(t, dom, dom.Boundary().Domain())
}
