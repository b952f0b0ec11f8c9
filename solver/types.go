// Package solver defines objectives, options, results and sentinel errors.
package solver

import (
	"errors"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilTriangle indicates a nil *triangle.Triangle was passed in.
	ErrNilTriangle = errors.New("solver: triangle is nil")

	// ErrOverflow indicates a running path total left the range of the
	// element type (integer wrap-around, or ±Inf for floats).
	ErrOverflow = errors.New("solver: arithmetic overflow")
)

// Objective selects whether the solver looks for the smallest or the
// largest path total.
type Objective int

const (
	// Minimize finds the path with the smallest total (default).
	Minimize Objective = iota

	// Maximize finds the path with the largest total.
	Maximize
)

// String returns "min" or "max".
func (o Objective) String() string {
	if o == Maximize {
		return "max"
	}

	return "min"
}

// Options configures a solver run.
//
// Fields:
//   - Objective     - Minimize (default) or Maximize.
//   - CheckOverflow - detect wrapping integer sums and infinite float sums.
//     Default true.
type Options struct {
	Objective     Objective
	CheckOverflow bool
}

// DefaultOptions returns Options{Objective: Minimize, CheckOverflow: true}.
func DefaultOptions() Options {
	return Options{
		Objective:     Minimize,
		CheckOverflow: true,
	}
}

// Option mutates Options before a run.
type Option func(*Options)

// WithObjective selects Minimize or Maximize.
// Panics on an unknown objective; that is a programmer error.
func WithObjective(o Objective) Option {
	if o != Minimize && o != Maximize {
		panic("solver: WithObjective(unknown objective)")
	}
	return func(opts *Options) {
		opts.Objective = o
	}
}

// WithOverflowCheck toggles checked addition.
func WithOverflowCheck(on bool) Option {
	return func(opts *Options) {
		opts.CheckOverflow = on
	}
}

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Path is one top-to-bottom route through a triangle.
//
//   - Values  - the value taken from each row, apex first.
//   - Columns - the column index chosen in each row; Columns[0] is always 0
//     and consecutive entries differ by 0 or 1.
//   - Sum     - the total of Values.
type Path[T any] struct {
	Values  []T
	Columns []int
	Sum     T
}

// Len returns the number of steps (equal to the triangle's row count).
func (p Path[T]) Len() int {
	return len(p.Values)
}
