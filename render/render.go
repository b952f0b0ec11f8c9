package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/trianglepath/solver"
	"github.com/katalvlaran/trianglepath/triangle"
)

// Summary writes a single line listing the path values and their total:
//
//	Minimal path is: 7 + 6 + 3 + 2 = 18
//
// "Maximal" replaces "Minimal" for the Maximize objective.
func Summary[T triangle.Number](w io.Writer, p solver.Path[T], obj solver.Objective) error {
	label := "Minimal"
	if obj == solver.Maximize {
		label = "Maximal"
	}

	parts := make([]string, len(p.Values))
	for i, v := range p.Values {
		parts[i] = triangle.Format(v)
	}
	_, err := fmt.Fprintf(w, "%s path is: %s = %s\n", label, strings.Join(parts, " + "), triangle.Format(p.Sum))

	return err
}

// Report is the JSON shape of a solved triangle.
type Report[T triangle.Number] struct {
	Objective string `json:"objective"`
	Rows      int    `json:"rows"`
	Sum       T      `json:"sum"`
	Values    []T    `json:"values"`
	Columns   []int  `json:"columns"`
}

// NewReport builds a Report from a solver path.
func NewReport[T triangle.Number](p solver.Path[T], obj solver.Objective) Report[T] {
	return Report[T]{
		Objective: obj.String(),
		Rows:      p.Len(),
		Sum:       p.Sum,
		Values:    p.Values,
		Columns:   p.Columns,
	}
}

// JSON writes r as a single line of JSON followed by a newline.
func JSON[T triangle.Number](w io.Writer, r Report[T]) error {
	if err := json.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("render: encode report: %w", err)
	}

	return nil
}
