package triangle

import (
	"math"
	"strconv"
	"strings"
)

// New builds a Triangle from rows, validating the shape and deep-copying
// every row so later changes to rows do not leak into the result.
// Returns ErrEmptyTriangle for zero rows, *ShapeError for a bad row length
// and *ValueError for NaN/±Inf values.
// Complexity: O(n²) time and memory.
func New[T Number](rows [][]T) (*Triangle[T], error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTriangle
	}
	t := &Triangle[T]{rows: make([][]T, 0, len(rows))}
	for _, row := range rows {
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustNew is New for static tables in tests and examples; it panics on error.
func MustNew[T Number](rows [][]T) *Triangle[T] {
	t, err := New(rows)
	if err != nil {
		panic(err)
	}

	return t
}

// AddRow appends a copy of row at the bottom of the triangle.
// The row must hold exactly Len()+1 finite values.
// Complexity: O(len(row)).
func (t *Triangle[T]) AddRow(row []T) error {
	want := len(t.rows) + 1
	if len(row) != want {
		return &ShapeError{Row: want, Got: len(row), Want: want}
	}
	for j, v := range row {
		if !finite(v) {
			return &ValueError{Line: want, Column: j + 1, Text: format(v)}
		}
	}
	cp := make([]T, len(row))
	copy(cp, row)
	t.rows = append(t.rows, cp)

	return nil
}

// Len returns the number of rows.
func (t *Triangle[T]) Len() int {
	if t == nil {
		return 0
	}

	return len(t.rows)
}

// At returns the value at row i, column j (both 0-based).
// Complexity: O(1).
func (t *Triangle[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= t.Len() || j < 0 || j > i {
		return zero, ErrOutOfRange
	}

	return t.rows[i][j], nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (t *Triangle[T]) Row(i int) []T {
	if i < 0 || i >= t.Len() {
		return nil
	}
	cp := make([]T, len(t.rows[i]))
	copy(cp, t.rows[i])

	return cp
}

// Rows returns a deep copy of all rows.
func (t *Triangle[T]) Rows() [][]T {
	out := make([][]T, t.Len())
	for i := range out {
		out[i] = t.Row(i)
	}

	return out
}

// Clone returns an independent copy; changing one never affects the other.
func (t *Triangle[T]) Clone() *Triangle[T] {
	return &Triangle[T]{rows: t.Rows()}
}

// Equal reports whether t and other have the same rows and values.
func (t *Triangle[T]) Equal(other *Triangle[T]) bool {
	if t.Len() != other.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if t.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// String renders one row per line with single spaces between values.
// The output is accepted back by parse.Text.
func (t *Triangle[T]) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for i, row := range t.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(format(v))
		}
	}

	return sb.String()
}

// finite reports whether v is neither NaN nor ±Inf.
// Integer kinds are always finite.
func finite[T Number](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Format renders a single value the way String does.
func Format[T Number](v T) string {
	return format(v)
}

// format prints integers exactly and floats in the shortest form that
// round-trips through strconv.ParseFloat.
func format[T Number](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if isFloat[T]() {
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatUint(uint64(v), 10)
}

// isFloat reports whether T is a floating-point kind.
func isFloat[T Number]() bool {
	var one T = 1

	return one/2 != 0
}
