package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/trianglepath/triangle"
)

// Text reads a triangle in line format from r, converting tokens with conv.
//
// Line numbers in errors count every physical line, including skipped blank
// and comment lines, so they match what an editor shows.
//
// Complexity: O(total input size).
func Text[T triangle.Number](r io.Reader, conv Converter[T], opts ...Option) (*triangle.Triangle[T], error) {
	if conv == nil {
		return nil, ErrNilConverter
	}
	cfg := config{maxLine: maxLineBytes}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, cfg.maxLine)), cfg.maxLine)

	t := &triangle.Triangle[T]{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if cfg.comment != "" && strings.HasPrefix(text, cfg.comment) {
			continue
		}
		if text == "" && cfg.skipBlank {
			continue
		}

		fields := strings.FieldsFunc(text, isSeparator)
		row := make([]T, len(fields))
		for k, f := range fields {
			v, err := conv(f)
			if err != nil {
				return nil, &triangle.ValueError{Line: line, Column: k + 1, Text: f, Err: err}
			}
			row[k] = v
		}

		if err := t.AddRow(row); err != nil {
			var ve *triangle.ValueError
			if errors.As(err, &ve) {
				ve.Line = line
				ve.Text = fields[ve.Column-1]

				return nil, ve
			}

			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d is longer than %d bytes", ErrLineTooLong, line+1, cfg.maxLine)
		}
		return nil, fmt.Errorf("%w: line %d: %w", ErrRead, line+1, err)
	}
	if t.Len() == 0 {
		return nil, triangle.ErrEmptyTriangle
	}

	return t, nil
}

// isSeparator accepts commas and any Unicode white space between values.
func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
