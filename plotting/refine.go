// Package plotting renders solution fields as tiled heat maps and provides
// the grid refinement helpers used to sample them.
package plotting

import (
	"errors"
	"fmt"
)

// ErrBadBreaks reports a break sequence that is too short or not strictly
// increasing.
var ErrBadBreaks = errors.New("plotting: invalid break sequence")

// RefineBreaks inserts n equally spaced interior points into every interval
// of a strictly increasing break sequence. k breaks yield k + (k-1)*n
// strictly increasing points with the original endpoints preserved.
func RefineBreaks(breaks []float64, n int) ([]float64, error) {
	if len(breaks) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 breaks, got %d", ErrBadBreaks, len(breaks))
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative refinement count %d", ErrBadBreaks, n)
	}
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			return nil, fmt.Errorf("%w: breaks[%d]=%g <= breaks[%d]=%g",
				ErrBadBreaks, i, breaks[i], i-1, breaks[i-1])
		}
	}
	out := make([]float64, 0, len(breaks)+(len(breaks)-1)*n)
	for i := 0; i < len(breaks)-1; i++ {
		a, b := breaks[i], breaks[i+1]
		out = append(out, a)
		step := (b - a) / float64(n+1)
		for j := 1; j <= n; j++ {
			out = append(out, a+float64(j)*step)
		}
	}
	return append(out, breaks[len(breaks)-1]), nil
}
