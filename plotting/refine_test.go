package plotting

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestRefineBreaksCount(t *testing.T) {
	for _, k := range []int{2, 3, 5, 9} {
		for _, n := range []int{0, 1, 2, 5} {
			t.Run(fmt.Sprintf("k=%d/n=%d", k, n), func(t *testing.T) {
				breaks := make([]float64, k)
				for i := range breaks {
					breaks[i] = float64(i) / float64(k-1)
				}
				out, err := RefineBreaks(breaks, n)
				if err != nil {
					t.Fatal(err)
				}
				if got, want := len(out), k+(k-1)*n; got != want {
					t.Fatalf("got %d points, want %d", got, want)
				}
				if out[0] != breaks[0] || out[len(out)-1] != breaks[k-1] {
					t.Errorf("endpoints %v, %v, want %v, %v",
						out[0], out[len(out)-1], breaks[0], breaks[k-1])
				}
				for i := 1; i < len(out); i++ {
					if out[i] <= out[i-1] {
						t.Errorf("not strictly increasing at %d: %v <= %v", i, out[i], out[i-1])
					}
				}
			})
		}
	}
}

func TestRefineBreaksSpacing(t *testing.T) {
	out, err := RefineBreaks([]float64{0, 1}, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(out) != len(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-14 {
			t.Errorf("point %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestRefineBreaksErrors(t *testing.T) {
	cases := [][]float64{
		{},
		{1},
		{0, 0, 1},
		{0, 1, 0.5},
	}
	for _, breaks := range cases {
		if _, err := RefineBreaks(breaks, 2); !errors.Is(err, ErrBadBreaks) {
			t.Errorf("RefineBreaks(%v): err = %v, want ErrBadBreaks", breaks, err)
		}
	}
	if _, err := RefineBreaks([]float64{0, 1}, -1); !errors.Is(err, ErrBadBreaks) {
		t.Errorf("negative refinement: err = %v, want ErrBadBreaks", err)
	}
}

func TestSampleGrid(t *testing.T) {
	xs := []float64{0, 0.5, 1}
	ys := []float64{0, 1}
	g := SampleGrid(xs, ys, func(x, y float64) float64 { return x + 10*y })

	c, r := g.Dims()
	if c != 3 || r != 2 {
		t.Fatalf("Dims = (%d, %d), want (3, 2)", c, r)
	}
	if got := g.Z(1, 1); got != 10.5 {
		t.Errorf("Z(1,1) = %v, want 10.5", got)
	}
	if g.X(2) != 1 || g.Y(1) != 1 {
		t.Errorf("coordinates X(2)=%v Y(1)=%v", g.X(2), g.Y(1))
	}

	diff := g.Sub(g)
	min, max := diff.Range()
	if min != 0 || max != 0 {
		t.Errorf("self-difference range = [%v, %v], want [0, 0]", min, max)
	}
}
