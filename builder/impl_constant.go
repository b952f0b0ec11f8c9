// SPDX-License-Identifier: MIT
// Package: trianglepath/builder
//
// impl_constant.go - Constant(rows, v) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trianglepath/triangle"
)

const methodConstant = "Constant"

// Constant returns a rows-deep triangle where every cell holds v.
// Every path through it totals rows*v.
// Complexity: O(rows²).
func Constant[T triangle.Number](rows int, v T) (*triangle.Triangle[T], error) {
	if rows < minRows {
		return nil, fmt.Errorf("%s: rows=%d < min=%d: %w", methodConstant, rows, minRows, ErrBadSize)
	}
	t := &triangle.Triangle[T]{}
	for i := 0; i < rows; i++ {
		row := make([]T, i+1)
		for j := range row {
			row[j] = v
		}
		if err := t.AddRow(row); err != nil {
			return nil, fmt.Errorf("%s: AddRow(%d): %w", methodConstant, i+1, err)
		}
	}

	return t, nil
}
