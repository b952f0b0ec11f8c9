// Package solver finds minimum (or maximum) top-to-bottom paths through a
// triangle.Triangle.
//
// 🚀 What is a triangle path?
//
//	Start at the apex and move down one row at a time, either straight
//	down-left (i+1, j) or down-right (i+1, j+1), until the base row:
//
//	      2
//	     3 4          2 + 3 + 5 + 1 = 11
//	    6 5 7
//	   4 1 8 3
//
// ✨ Key features:
//   - MinPathSum: bottom-up dynamic programming with a single working row.
//   - FindPath:   keeps the full table of best-remaining totals so the path
//     itself can be walked back down from the apex.
//   - Ties go left: among equally good paths, FindPath returns the one that
//     keeps left at every decision point.
//   - WithObjective(Maximize) answers the maximum-path variant.
//   - Checked arithmetic: integer sums that wrap, or float sums that reach
//     ±Inf, fail with ErrOverflow (disable with WithOverflowCheck(false)).
//
// ⚙️ Usage:
//
//	t, _ := triangle.New([][]int64{{2}, {3, 4}, {6, 5, 7}, {4, 1, 8, 3}})
//	sum, err := solver.MinPathSum(t)            // 11
//	p, err := solver.FindPath(t)                // p.Values = [2 3 5 1]
//
// Performance:
//
//   - Time:   O(n²) for both operations (each cell visited once).
//   - Memory: O(n) for MinPathSum, O(n²) for FindPath.
//
// Both operations are pure: the input triangle is never modified and
// repeated calls return identical results.
package solver
