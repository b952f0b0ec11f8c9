package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/trianglepath/triangle"
)

// MinPathSum returns the best top-to-bottom path total of t.
//
// Algorithm Outline (bottom-up, single working row):
//  1. working = copy of the last row.
//  2. For i = n-2 .. 0, for j = 0 .. i:
//     working[j] = t[i][j] + best(working[j], working[j+1])
//  3. working[0] is the answer.
//
// best is min for Minimize (the default) and max for Maximize. The input is
// never modified.
//
// Errors:
//   - ErrNilTriangle           - t is nil.
//   - triangle.ErrEmptyTriangle - t has no rows.
//   - ErrOverflow              - a partial sum left the range of T.
//
// Complexity: O(n²) time, O(n) extra memory.
func MinPathSum[T triangle.Number](t *triangle.Triangle[T], opts ...Option) (T, error) {
	var zero T
	if err := validate(t); err != nil {
		return zero, err
	}
	o := gatherOptions(opts)

	n := t.Len()
	working := t.Row(n - 1)
	for i := n - 2; i >= 0; i-- {
		row := t.Row(i)
		for j := 0; j <= i; j++ {
			s, err := add(row[j], pick(o.Objective, working[j], working[j+1]), o.CheckOverflow)
			if err != nil {
				return zero, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			working[j] = s
		}
	}

	return working[0], nil
}

// FindPath returns the best path through t, not only its total.
//
// It builds the full table of best-remaining totals (row i, column j holds
// the best total from (i, j) down to the base), then walks down from the
// apex, stepping right only when the right child is strictly better. Of
// several equally good paths the one that keeps left at every decision
// point is returned.
//
// Errors are the same as MinPathSum.
//
// Complexity: O(n²) time, O(n²) memory.
func FindPath[T triangle.Number](t *triangle.Triangle[T], opts ...Option) (Path[T], error) {
	if err := validate(t); err != nil {
		return Path[T]{}, err
	}
	o := gatherOptions(opts)

	n := t.Len()
	rows := t.Rows()
	best := t.Rows()
	for i := n - 2; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			s, err := add(best[i][j], pick(o.Objective, best[i+1][j], best[i+1][j+1]), o.CheckOverflow)
			if err != nil {
				return Path[T]{}, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			best[i][j] = s
		}
	}

	p := Path[T]{
		Values:  make([]T, n),
		Columns: make([]int, n),
		Sum:     best[0][0],
	}
	col := 0
	for i := 0; i < n; i++ {
		if i > 0 && better(o.Objective, best[i][col+1], best[i][col]) {
			col++
		}
		p.Columns[i] = col
		p.Values[i] = rows[i][col]
	}

	return p, nil
}

// validate rejects nil and empty triangles.
func validate[T triangle.Number](t *triangle.Triangle[T]) error {
	if t == nil {
		return ErrNilTriangle
	}
	if t.Len() == 0 {
		return triangle.ErrEmptyTriangle
	}

	return nil
}

// better reports whether a is strictly preferable to b under obj.
func better[T triangle.Number](obj Objective, a, b T) bool {
	if obj == Maximize {
		return a > b
	}

	return a < b
}

// pick returns the preferable of left and right; ties keep left.
func pick[T triangle.Number](obj Objective, left, right T) T {
	if better(obj, right, left) {
		return right
	}

	return left
}

// add returns a+b. With check set, a sum that wrapped around (integers) or
// became infinite (floats) is reported as ErrOverflow.
func add[T triangle.Number](a, b T, check bool) (T, error) {
	s := a + b
	if !check {
		return s, nil
	}
	if (b > 0 && s < a) || (b < 0 && s > a) || math.IsInf(float64(s), 0) {
		return s, fmt.Errorf("%w: %s + %s", ErrOverflow, triangle.Format(a), triangle.Format(b))
	}

	return s, nil
}
