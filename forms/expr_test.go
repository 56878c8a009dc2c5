package forms

import (
	"math"
	"testing"
)

const tol = 1e-12

// manufactured solution used throughout: sin(pi x) sin(pi y)
func sinsin() Expr {
	x, y := UnitSquare("Omega").Coordinates()
	return Mul(Sin(Scale(math.Pi, x)), Sin(Scale(math.Pi, y)))
}

func TestEvalCoordinates(t *testing.T) {
	dom := UnitSquare("Omega")
	x, y := dom.Coordinates()
	e := Add(Scale(2, x), Scale(3, y), Const(1))
	got := e.Eval(Point{X: 0.5, Y: 0.25}, nil)
	want := 2*0.5 + 3*0.25 + 1
	if math.Abs(got-want) > tol {
		t.Errorf("Eval = %v, want %v", got, want)
	}
}

func TestDiffMatchesAnalytic(t *testing.T) {
	ue := sinsin()
	dx := Dx(ue)
	dy := Dy(ue)

	points := []Point{
		{0.1, 0.2}, {0.5, 0.5}, {0.9, 0.3}, {0.25, 0.75},
	}
	for _, p := range points {
		wantX := math.Pi * math.Cos(math.Pi*p.X) * math.Sin(math.Pi*p.Y)
		wantY := math.Pi * math.Sin(math.Pi*p.X) * math.Cos(math.Pi*p.Y)
		if got := dx.Eval(p, nil); math.Abs(got-wantX) > tol {
			t.Errorf("Dx at %+v = %v, want %v", p, got, wantX)
		}
		if got := dy.Eval(p, nil); math.Abs(got-wantY) > tol {
			t.Errorf("Dy at %+v = %v, want %v", p, got, wantY)
		}
	}
}

func TestLaplacianIdentity(t *testing.T) {
	// -laplace(sin(pi x) sin(pi y)) = 2 pi^2 sin(pi x) sin(pi y)
	ue := sinsin()
	lap := Add(Dx(Dx(ue)), Dy(Dy(ue)))
	f := Scale(2*math.Pi*math.Pi, ue)

	for _, p := range []Point{{0.3, 0.6}, {0.5, 0.5}, {0.05, 0.95}} {
		got := -lap.Eval(p, nil)
		want := f.Eval(p, nil)
		if math.Abs(got-want) > 1e-10 {
			t.Errorf("-laplace at %+v = %v, want %v", p, got, want)
		}
	}
}

func TestPowDiff(t *testing.T) {
	x, _ := UnitSquare("Omega").Coordinates()
	e := Pow(x, 3)
	d := Dx(e)
	p := Point{X: 2}
	if got, want := e.Eval(p, nil), 8.0; math.Abs(got-want) > tol {
		t.Errorf("x^3 at 2 = %v, want %v", got, want)
	}
	if got, want := d.Eval(p, nil), 12.0; math.Abs(got-want) > tol {
		t.Errorf("d/dx x^3 at 2 = %v, want %v", got, want)
	}
}

func TestFieldSampleSubstitution(t *testing.T) {
	dom := UnitSquare("Omega")
	V := NewScalarFunctionSpace("V", dom)
	u := V.Element("u")
	v := V.Element("v")

	e := GradDot(u, v)
	fields := Fields{
		"u": {V: 1, Dx: 2, Dy: 3},
		"v": {V: 4, Dx: 5, Dy: 6},
	}
	got := e.Eval(Point{}, fields)
	want := 2.0*5 + 3.0*6
	if math.Abs(got-want) > tol {
		t.Errorf("GradDot = %v, want %v", got, want)
	}

	if got, want := u.Eval(Point{}, fields), 1.0; got != want {
		t.Errorf("u value = %v, want %v", got, want)
	}
}

func TestUnboundFieldPanics(t *testing.T) {
	V := NewScalarFunctionSpace("V", UnitSquare("Omega"))
	u := V.Element("u")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic evaluating unbound field")
		}
	}()
	u.Eval(Point{}, nil)
}

func TestCollectFields(t *testing.T) {
	dom := UnitSquare("Omega")
	V := NewScalarFunctionSpace("V", dom)
	u := V.Element("u")
	v := V.Element("v")

	e := Add(GradDot(u, v), Mul(u, Const(2)), sinsin())
	got := CollectFields(e)
	want := []string{"u", "v"}
	if len(got) != len(want) {
		t.Fatalf("CollectFields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("CollectFields = %v, want %v", got, want)
		}
	}
	if names := CollectFields(sinsin()); len(names) != 0 {
		t.Errorf("pure coordinate expression references fields: %v", names)
	}
}
