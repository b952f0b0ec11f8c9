package parse

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trianglepath/triangle"
)

// YAML tags accepted for a single value.
const (
	tagInt   = "!!int"
	tagFloat = "!!float"
)

// YAML reads a triangle encoded as a YAML (or JSON) sequence of sequences.
// Empty input yields triangle.ErrEmptyTriangle.
//
// Every value must be a plain number: for integer T only !!int scalars are
// accepted (2.5 is rejected, never truncated); for float T !!int and !!float
// both are. A rejected value is reported as ErrDecode wrapping a
// *triangle.ValueError whose Line and Column are the 1-based row and
// position in the row.
//
// Complexity: O(total input size).
func YAML[T triangle.Number](r io.Reader) (*triangle.Triangle[T], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var nodes [][]yaml.Node
	if err := yaml.Unmarshal(b, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	rows := make([][]T, len(nodes))
	for i, row := range nodes {
		rows[i] = make([]T, len(row))
		for j := range row {
			v, err := decodeValue[T](&row[j])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrDecode,
					&triangle.ValueError{Line: i + 1, Column: j + 1, Text: row[j].Value, Err: err})
			}
			rows[i][j] = v
		}
	}

	return triangle.New(rows)
}

// decodeValue converts one scalar node to T, rejecting non-numeric tags and
// fractional values for integer kinds.
func decodeValue[T triangle.Number](n *yaml.Node) (T, error) {
	var v T
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return v, errors.New("expected a number, found a collection")
	}

	tag := n.ShortTag()
	switch {
	case tag == tagInt:
	case tag == tagFloat && isFloat[T]():
	default:
		return v, fmt.Errorf("expected %s, found %s", wantTag[T](), tag)
	}
	if err := n.Decode(&v); err != nil {
		return v, err
	}

	return v, nil
}

func wantTag[T triangle.Number]() string {
	if isFloat[T]() {
		return "a number"
	}
	return "an integer"
}

// isFloat reports whether T is a floating-point kind.
func isFloat[T triangle.Number]() bool {
	var one T = 1
	return one/2 != 0
}
