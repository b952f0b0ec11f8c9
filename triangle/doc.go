// Package triangle defines the triangular numeric grid consumed by the
// path solvers of github.com/katalvlaran/trianglepath.
//
// What:
//
//   - Triangle[T] holds n rows where row i has exactly i+1 values.
//   - T is any integer or floating-point kind (see Number).
//   - Rows are deep-copied on the way in and on the way out, so a built
//     Triangle cannot be changed by the caller.
//
// Shape:
//
//	      2
//	     3 4
//	    6 5 7
//	   4 1 8 3
//
// Construction:
//
//   - New validates a complete [][]T in one call.
//   - The zero value is an empty triangle; AddRow appends rows at the
//     bottom one by one (used by streaming readers).
//
// Errors:
//
//   - ErrInvalidInput: umbrella sentinel; every error below matches it.
//   - ErrEmptyTriangle: zero rows.
//   - *ShapeError: a row has the wrong number of values.
//   - *ValueError: a value is NaN, ±Inf or could not be parsed.
//   - ErrOutOfRange: At(i, j) outside the triangle.
//
// Complexity:
//
//   - New, Clone, Equal, String: O(n²) time and memory.
//   - AddRow: O(row length).
//   - At, Len: O(1).
package triangle
