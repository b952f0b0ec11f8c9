// SPDX-License-Identifier: MIT

package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the single error kind for data that does not form a
	// valid triangle. Callers branch on it with errors.Is.
	ErrInvalidInput = errors.New("triangle: invalid input")

	// ErrEmptyTriangle indicates a triangle with zero rows.
	ErrEmptyTriangle = fmt.Errorf("%w: triangle has no rows", ErrInvalidInput)

	// ErrOutOfRange indicates that (row, col) lies outside the triangle.
	ErrOutOfRange = errors.New("triangle: index out of range")
)

// ShapeError reports a row whose length breaks the i+1 invariant.
// Row is 1-based, so Want == Row for a well-formed triangle.
type ShapeError struct {
	Row  int
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	noun := "numbers"
	if e.Got == 1 {
		noun = "number"
	}

	return fmt.Sprintf("triangle: row #%d contains %d %s instead of %d", e.Row, e.Got, noun, e.Want)
}

// Is makes every ShapeError match ErrInvalidInput.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ValueError reports a value that is not an acceptable number.
// Line and Column are 1-based; Text holds the offending token when known.
type ValueError struct {
	Line   int
	Column int
	Text   string
	Err    error
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("triangle: row #%d value #%d is not a valid number: %q", e.Line, e.Column, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is makes every ValueError match ErrInvalidInput.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
