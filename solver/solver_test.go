package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/trianglepath/builder"
	"github.com/katalvlaran/trianglepath/solver"
	"github.com/katalvlaran/trianglepath/triangle"
)

// TestMinPathSum_Table covers the fixed cases every implementation must meet.
func TestMinPathSum_Table(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want int64
	}{
		{"SingleRow", [][]int64{{5}}, 5},
		{"TwoRows", [][]int64{{2}, {3, 4}}, 5},
		{"Classic", [][]int64{{2}, {3, 4}, {6, 5, 7}, {4, 1, 8, 3}}, 11},
		{"ProvidedExample", [][]int64{{7}, {6, 3}, {3, 8, 5}, {11, 2, 10, 9}}, 18},
		{"ZeroDiagonal", [][]int64{{0}, {0, 1}, {2, 0, 3}, {4, 5, 0, 6}, {7, 8, 0, 9, 10}}, 0},
		{"Negatives", [][]int64{{-1}, {2, 3}, {1, -1, -3}}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := triangle.New(tc.rows)
			require.NoError(t, err)

			got, err := solver.MinPathSum(tr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			p, err := solver.FindPath(tr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Sum, "FindPath sum must agree with MinPathSum")
		})
	}
}

// TestFindPath_Values checks the exact path for two reference triangles.
func TestFindPath_Values(t *testing.T) {
	tr := triangle.MustNew([][]int{{7}, {6, 3}, {3, 8, 5}, {11, 2, 10, 9}})
	p, err := solver.FindPath(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 6, 3, 2}, p.Values)
	assert.Equal(t, []int{0, 0, 0, 1}, p.Columns)
	assert.Equal(t, 18, p.Sum)
	assert.Equal(t, 4, p.Len())

	tr = triangle.MustNew([][]int{{0}, {0, 1}, {2, 0, 3}, {4, 5, 0, 6}, {7, 8, 0, 9, 10}})
	p, err = solver.FindPath(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, p.Values)
}

// TestFindPath_TiesGoLeft: [1 2 3] and [1 3 2] both total 6; the left one wins.
func TestFindPath_TiesGoLeft(t *testing.T) {
	tr := triangle.MustNew([][]int{{1}, {2, 3}, {3, 4, 2}})
	p, err := solver.FindPath(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, p.Values)
	assert.Equal(t, []int{0, 0, 0}, p.Columns)
}

// TestMinPathSum_Constant: an all-equal triangle of depth n and value v sums to n*v.
func TestMinPathSum_Constant(t *testing.T) {
	for _, n := range []int{1, 2, 7, 40} {
		for _, v := range []int64{-3, 0, 9} {
			tr, err := builder.Constant(n, v)
			require.NoError(t, err)
			got, err := solver.MinPathSum(tr)
			require.NoError(t, err)
			assert.Equal(t, int64(n)*v, got, "n=%d v=%d", n, v)
		}
	}
}

// TestMinPathSum_Floats checks float triangles and the strict comparison.
func TestMinPathSum_Floats(t *testing.T) {
	tr := triangle.MustNew([][]float64{{0.5}, {0.25, 0.25}, {1, 0.125, 2}})
	got, err := solver.MinPathSum(tr)
	require.NoError(t, err)
	assert.InDelta(t, 0.875, got, 1e-12)

	p, err := solver.FindPath(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, p.Columns)
}

// TestErrors covers nil, empty and malformed input.
func TestErrors(t *testing.T) {
	_, err := solver.MinPathSum[int](nil)
	assert.ErrorIs(t, err, solver.ErrNilTriangle)
	_, err = solver.FindPath[int](nil)
	assert.ErrorIs(t, err, solver.ErrNilTriangle)

	var empty triangle.Triangle[int]
	_, err = solver.MinPathSum(&empty)
	assert.ErrorIs(t, err, triangle.ErrEmptyTriangle)
	assert.ErrorIs(t, err, triangle.ErrInvalidInput)
	_, err = solver.FindPath(&empty)
	assert.ErrorIs(t, err, triangle.ErrInvalidInput)

	_, err = triangle.New([][]int{{2}, {3, 4, 5}})
	assert.ErrorIs(t, err, triangle.ErrInvalidInput, "row 1 with 3 elements must be rejected")
}

// TestOverflow mirrors the int32 boundary cases: MaxInt32 itself is fine,
// one more wraps.
func TestOverflow(t *testing.T) {
	ok := triangle.MustNew([][]int32{{10}, {math.MaxInt32 - 10, math.MaxInt32 - 10}})
	got, err := solver.MinPathSum(ok)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), got)

	over := triangle.MustNew([][]int32{{11}, {math.MaxInt32 - 10, math.MaxInt32 - 10}})
	_, err = solver.MinPathSum(over)
	assert.ErrorIs(t, err, solver.ErrOverflow)
	_, err = solver.FindPath(over)
	assert.ErrorIs(t, err, solver.ErrOverflow)

	okLow := triangle.MustNew([][]int32{{-10}, {math.MinInt32 + 10, math.MinInt32 + 10}})
	_, err = solver.MinPathSum(okLow)
	require.NoError(t, err)

	under := triangle.MustNew([][]int32{{-11}, {math.MinInt32 + 10, math.MinInt32 + 10}})
	_, err = solver.MinPathSum(under)
	assert.ErrorIs(t, err, solver.ErrOverflow)

	wrapped, err := solver.MinPathSum(over, solver.WithOverflowCheck(false))
	require.NoError(t, err, "unchecked addition wraps silently")
	assert.Less(t, wrapped, int32(0))
}

// TestOverflow_FloatAndUnsigned covers ±Inf float sums and unsigned wrap.
func TestOverflow_FloatAndUnsigned(t *testing.T) {
	f := triangle.MustNew([][]float64{{math.MaxFloat64}, {math.MaxFloat64, math.MaxFloat64}})
	_, err := solver.MinPathSum(f)
	assert.ErrorIs(t, err, solver.ErrOverflow)

	u := triangle.MustNew([][]uint8{{200}, {100, 55}})
	_, err = solver.MinPathSum(u, solver.WithObjective(solver.Maximize))
	assert.ErrorIs(t, err, solver.ErrOverflow)
	got, err := solver.MinPathSum(u)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), got)
}

// TestMaximize checks the maximum-path variant.
func TestMaximize(t *testing.T) {
	tr := triangle.MustNew([][]int{{3}, {7, 4}, {2, 4, 6}, {8, 5, 9, 3}})
	got, err := solver.MinPathSum(tr, solver.WithObjective(solver.Maximize))
	require.NoError(t, err)
	assert.Equal(t, 23, got)

	p, err := solver.FindPath(tr, solver.WithObjective(solver.Maximize))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 4, 9}, p.Values)
	assert.Equal(t, "max", solver.Maximize.String())
	assert.Equal(t, "min", solver.Minimize.String())
}

// TestWithObjective_UnknownPanics locks in the option-constructor panic contract.
func TestWithObjective_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { solver.WithObjective(solver.Objective(7)) })
}

// OracleSuite compares the solver against exhaustive enumeration.
type OracleSuite struct {
	suite.Suite
}

// TestRandomAgainstBruteForce runs every row count from 1 to 16 with a few
// seeds, for both objectives, and requires identical paths (including the
// left tie-break) and sums.
func (s *OracleSuite) TestRandomAgainstBruteForce() {
	for rows := 1; rows <= 16; rows++ {
		for seed := int64(1); seed <= 3; seed++ {
			// A narrow value range produces plenty of ties.
			tr, err := builder.Random(rows, 0, 9, builder.WithSeed(seed*100+int64(rows)))
			require.NoError(s.T(), err)

			for _, obj := range []solver.Objective{solver.Minimize, solver.Maximize} {
				want := bruteForce(tr, obj)

				sum, err := solver.MinPathSum(tr, solver.WithObjective(obj))
				require.NoError(s.T(), err)
				require.Equal(s.T(), want.Sum, sum, "rows=%d seed=%d obj=%s", rows, seed, obj)

				p, err := solver.FindPath(tr, solver.WithObjective(obj))
				require.NoError(s.T(), err)
				require.Equal(s.T(), want.Columns, p.Columns, "rows=%d seed=%d obj=%s", rows, seed, obj)
				require.Equal(s.T(), want.Values, p.Values)
			}
		}
	}
}

// TestIdempotent verifies repeated runs give identical results and leave the
// input untouched.
func (s *OracleSuite) TestIdempotent() {
	tr, err := builder.Random(50, -100, 100, builder.WithSeed(9))
	require.NoError(s.T(), err)
	before := tr.Clone()

	a, err := solver.MinPathSum(tr)
	require.NoError(s.T(), err)
	b, err := solver.MinPathSum(tr)
	require.NoError(s.T(), err)
	p1, err := solver.FindPath(tr)
	require.NoError(s.T(), err)
	p2, err := solver.FindPath(tr)
	require.NoError(s.T(), err)

	s.Equal(a, b)
	s.Equal(p1, p2)
	s.Equal(a, p1.Sum)
	s.True(before.Equal(tr), "solver must not mutate its input")
}

// TestPathShape checks the column invariants on a large triangle.
func (s *OracleSuite) TestPathShape() {
	tr, err := builder.Random(500, 0, 99, builder.WithSeed(3))
	require.NoError(s.T(), err)

	p, err := solver.FindPath(tr)
	require.NoError(s.T(), err)
	s.Len(p.Columns, 500)
	s.Equal(0, p.Columns[0])

	var total int64
	for i, c := range p.Columns {
		if i > 0 {
			d := c - p.Columns[i-1]
			s.True(d == 0 || d == 1, "step %d moves by %d", i, d)
		}
		v, err := tr.At(i, c)
		s.Require().NoError(err)
		s.Equal(v, p.Values[i])
		total += v
	}
	s.Equal(p.Sum, total)
}

func TestOracleSuite(t *testing.T) {
	suite.Run(t, new(OracleSuite))
}
