package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/trianglepath/triangle"
)

var (
	// ErrRead indicates the underlying io.Reader returned an error.
	ErrRead = errors.New("parse: read failed")

	// ErrDecode indicates structured (YAML/JSON) input could not be decoded
	// into rows of numbers.
	ErrDecode = fmt.Errorf("%w: cannot decode rows", triangle.ErrInvalidInput)

	// ErrLineTooLong indicates a text line longer than the reader accepts.
	ErrLineTooLong = fmt.Errorf("%w: line too long", triangle.ErrInvalidInput)

	// ErrNilConverter indicates Text was called without a Converter.
	ErrNilConverter = errors.New("parse: converter is nil")
)

// maxLineBytes bounds a single input line (a 500-row triangle of 10-digit
// values is about 5.5 KiB per line).
const maxLineBytes = 16 << 20

// Converter turns one token into a value.
type Converter[T triangle.Number] func(string) (T, error)

// Int64 parses a base-10 signed 64-bit integer.
func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// Int parses a base-10 int.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// Float64 parses a 64-bit float. "NaN" and "Inf" parse but are rejected by
// the triangle as non-finite.
func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// config is the resolved reader configuration.
type config struct {
	skipBlank bool
	comment   string
	maxLine   int
}

// Option customizes Text.
type Option func(*config)

// WithSkipBlankLines ignores lines that are empty or whitespace-only.
func WithSkipBlankLines() Option {
	return func(c *config) {
		c.skipBlank = true
	}
}

// WithComment ignores lines whose first non-blank characters are prefix.
// An empty prefix disables comment handling.
func WithComment(prefix string) Option {
	return func(c *config) {
		c.comment = prefix
	}
}
