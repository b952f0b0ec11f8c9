// Package triangle defines the Number constraint and the Triangle type.
package triangle

// Number is the set of element types a Triangle may hold.
// Integer kinds are summed exactly (with optional overflow detection in the
// solver); float kinds use IEEE arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Triangle is an ordered list of rows where row i holds exactly i+1 values.
// The zero value is an empty triangle; rows are appended with AddRow.
// A Triangle is not safe for concurrent AddRow calls; once built it is
// read-only and may be shared freely.
type Triangle[T Number] struct {
	rows [][]T
}
