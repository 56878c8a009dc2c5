package discrete_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushkasinghh/igafem/discrete"
	"github.com/anushkasinghh/igafem/forms"
)

// Norms of pure coordinate expressions have closed forms; they exercise
// the quadrature without involving a solve.
func TestNormOfKnownExpression(t *testing.T) {
	dom := forms.UnitSquare("Omega")
	x, y := dom.Coordinates()
	ue := forms.Mul(forms.Sin(forms.Scale(math.Pi, x)), forms.Sin(forms.Scale(math.Pi, y)))

	cfg := discrete.Config{NCells: []int{16, 16}, Degree: []int{3, 3}}
	domH, err := discrete.DiscretizeDomain(dom, cfg)
	require.NoError(t, err)
	V := forms.NewScalarFunctionSpace("V", dom)
	vH, err := discrete.DiscretizeSpace(V, domH, cfg)
	require.NoError(t, err)

	// int sin^2(pi x) sin^2(pi y) = 1/4, so the L2 norm is 1/2.
	// |grad ue|^2 integrates to pi^2/2, so the semi-H1 norm is pi/sqrt(2).
	cases := []struct {
		kind forms.NormKind
		want float64
	}{
		{forms.L2, 0.5},
		{forms.SemiH1, math.Pi / math.Sqrt2},
		{forms.H1, math.Sqrt(0.25 + math.Pi*math.Pi/2)},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			n, err := forms.NewNorm(ue, dom, c.kind)
			require.NoError(t, err)
			nH, err := discrete.DiscretizeNorm(n, domH, vH)
			require.NoError(t, err)
			got, err := nH.Assemble(nil)
			require.NoError(t, err)
			assert.InDelta(t, c.want, got, 1e-8)
		})
	}
}

func TestNormZeroExpression(t *testing.T) {
	dom := forms.UnitSquare("Omega")
	x, _ := dom.Coordinates()
	cfg := discrete.Config{NCells: []int{4, 4}, Degree: []int{2, 2}}
	domH, err := discrete.DiscretizeDomain(dom, cfg)
	require.NoError(t, err)
	V := forms.NewScalarFunctionSpace("V", dom)
	vH, err := discrete.DiscretizeSpace(V, domH, cfg)
	require.NoError(t, err)

	n, err := forms.NewNorm(forms.Sub(x, x), dom, forms.H1)
	require.NoError(t, err)
	nH, err := discrete.DiscretizeNorm(n, domH, vH)
	require.NoError(t, err)
	got, err := nH.Assemble(nil)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestNormUnboundField(t *testing.T) {
	dom := forms.UnitSquare("Omega")
	V := forms.NewScalarFunctionSpace("V", dom)
	u := V.Element("u")

	cfg := discrete.Config{NCells: []int{4, 4}, Degree: []int{2, 2}}
	domH, err := discrete.DiscretizeDomain(dom, cfg)
	require.NoError(t, err)
	vH, err := discrete.DiscretizeSpace(V, domH, cfg)
	require.NoError(t, err)

	n, err := forms.NewNorm(u, dom, forms.L2)
	require.NoError(t, err)
	nH, err := discrete.DiscretizeNorm(n, domH, vH)
	require.NoError(t, err)

	_, err = nH.Assemble(nil)
	assert.ErrorIs(t, err, discrete.ErrUnboundField)
	_, err = nH.Assemble(map[string]*discrete.Field{"w": nil})
	assert.ErrorIs(t, err, discrete.ErrUnboundField)
}
