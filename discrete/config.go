// Package discrete lowers symbolic variational problems from package forms
// onto tensor-product B-spline spaces, assembles and solves the resulting
// linear systems, and evaluates discretized norms.
package discrete

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch reports configuration whose per-dimension
	// parameters do not match the domain dimension.
	ErrDimensionMismatch = errors.New("discrete: configuration dimension mismatch")

	// ErrBadConfig reports non-positive cell counts or degrees.
	ErrBadConfig = errors.New("discrete: invalid configuration value")
)

// Communicator is an opaque handle for distributed execution. The engine
// runs sequentially; a non-nil communicator is carried through untouched
// for callers that orchestrate parallelism themselves.
type Communicator interface {
	Rank() int
	Size() int
}

// Config parameterizes discretization: cells and polynomial degree per
// spatial dimension, plus an optional communicator (nil means sequential).
type Config struct {
	NCells []int
	Degree []int
	Comm   Communicator
}

func (c Config) validate(dim int) error {
	if len(c.NCells) != dim {
		return fmt.Errorf("%w: got %d cell counts for a %dD domain", ErrDimensionMismatch, len(c.NCells), dim)
	}
	if len(c.Degree) != dim {
		return fmt.Errorf("%w: got %d degrees for a %dD domain", ErrDimensionMismatch, len(c.Degree), dim)
	}
	for d := 0; d < dim; d++ {
		if c.NCells[d] < 1 {
			return fmt.Errorf("%w: ncells[%d]=%d", ErrBadConfig, d, c.NCells[d])
		}
		if c.Degree[d] < 1 {
			return fmt.Errorf("%w: degree[%d]=%d", ErrBadConfig, d, c.Degree[d])
		}
	}
	return nil
}
