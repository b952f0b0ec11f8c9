// Package solver_test provides a brute-force oracle shared by the solver
// tests. It is intentionally naive: every one of the 2^(n-1) paths is
// enumerated, so keep n small (≤ 20).
package solver_test

import (
	"github.com/katalvlaran/trianglepath/solver"
	"github.com/katalvlaran/trianglepath/triangle"
)

// pathByID returns the columns of path id. Bit (n-1-i) of id decides the
// step into row i: 0 keeps the column, 1 moves right. Path 0 follows the
// left edge, path 2^(n-1)-1 the right edge.
func pathByID(n int, id uint32) []int {
	cols := make([]int, n)
	for i := 1; i < n; i++ {
		cols[i] = cols[i-1]
		if id&(1<<uint(n-1-i)) != 0 {
			cols[i]++
		}
	}

	return cols
}

// bruteForce enumerates all paths in increasing id order and keeps the first
// strictly better one, which yields the leftmost optimal path.
func bruteForce[T triangle.Number](t *triangle.Triangle[T], obj solver.Objective) solver.Path[T] {
	n := t.Len()
	rows := t.Rows()
	var best solver.Path[T]
	for id := uint32(0); id < 1<<uint(n-1); id++ {
		cols := pathByID(n, id)
		vals := make([]T, n)
		var sum T
		for i, c := range cols {
			vals[i] = rows[i][c]
			sum += vals[i]
		}
		improves := sum < best.Sum
		if obj == solver.Maximize {
			improves = sum > best.Sum
		}
		if id == 0 || improves {
			best = solver.Path[T]{Values: vals, Columns: cols, Sum: sum}
		}
	}

	return best
}
