// Package trianglepath finds the optimal top-to-bottom path through a
// triangle of numbers: from the apex, step to one of the two adjacent
// values on the next row until the base, minimizing (or maximizing) the
// total.
//
// 🚀 What is trianglepath?
//
//	A small, dependency-light library plus a CLI:
//		• Validated triangle container, generic over int and float kinds
//		• Bottom-up dynamic programming in O(n²) time
//		• Sum-only solver with O(n) extra memory
//		• Path recovery with deterministic, leftmost tie-breaking
//		• Checked arithmetic: overflow is an error, never a wrapped result
//
// ✨ Why choose trianglepath?
//
//   - Explicit errors - every invalid input maps to one sentinel kind
//   - Deterministic - same triangle, same path, every time
//   - Generic - int8 through uint64, float32 and float64
//
// Packages:
//
//	triangle/ - Triangle[T] container, Number constraint, input errors
//	solver/   - MinPathSum, FindPath, objectives & overflow checks
//	parse/    - line-oriented text and YAML/JSON readers
//	builder/  - Random and Constant triangle constructors
//	render/   - summary line, JSON report, highlighted drawing
//
// Quick ASCII example:
//
//	       7
//	      6 3
//	     3 8 5
//	   11 2 10 9
//
//	Minimal path is: 7 + 6 + 3 + 2 = 18
//
// Command line:
//
//	go install github.com/katalvlaran/trianglepath/cmd/mintrianglepath@latest
//	mintrianglepath < triangle.txt
package trianglepath
