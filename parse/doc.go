// Package parse reads triangles from text streams.
//
// Two formats are supported:
//
//   - Text: one row per line, values separated by one or more spaces, tabs or
//     commas. Leading and trailing whitespace is ignored.
//
//     7
//     6 3
//     3, 8, 5
//     11 2 10 9
//
//   - YAML: a sequence of sequences. JSON is accepted too, since it is a
//     subset of YAML: [[7], [6, 3], [3, 8, 5], [11, 2, 10, 9]].
//
// Blank lines are rejected by default (they are reported as a row with zero
// values); WithSkipBlankLines and WithComment relax that for hand-written
// files.
//
// Errors:
//
//   - triangle.ErrEmptyTriangle - no rows at all.
//   - *triangle.ShapeError      - a row has the wrong length.
//   - *triangle.ValueError      - a token is not a number (1-based line/column).
//   - ErrDecode                 - YAML could not be decoded into rows.
//   - ErrLineTooLong            - a text line exceeds the 16 MiB limit.
//   - ErrRead                   - the underlying reader failed.
//
// All but ErrRead match triangle.ErrInvalidInput.
package parse
