package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/trianglepath/solver"
	"github.com/katalvlaran/trianglepath/triangle"
)

// ErrPathMismatch indicates the path does not fit the triangle it is drawn on.
var ErrPathMismatch = errors.New("render: path does not match triangle")

// pathColor is the foreground used for cells on the path (ANSI bright green).
const pathColor = lipgloss.Color("10")

// Highlight draws t centred, one row per line, wrapping the cells visited by
// p in brackets. On a colour-capable w the bracketed cells are also bold and
// green. Every cell is padded to the widest value so columns line up.
//
//	       [ 7]
//	     [ 6]   3
//	  [ 3]   8    5
//	 11  [ 2]  10    9
//
// Complexity: O(n²).
func Highlight[T triangle.Number](w io.Writer, t *triangle.Triangle[T], p solver.Path[T]) error {
	if err := checkPath(t.Len(), p.Columns); err != nil {
		return err
	}
	n := t.Len()

	rows := t.Rows()
	width := 0
	for _, row := range rows {
		for _, v := range row {
			width = max(width, len(triangle.Format(v)))
		}
	}

	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(pathColor)
	cell := width + 2
	var sb strings.Builder
	for i, row := range rows {
		line := strings.Repeat(" ", (n-1-i)*(cell+1)/2)
		for j, v := range row {
			if j > 0 {
				line += " "
			}
			text := fmt.Sprintf("%*s", width, triangle.Format(v))
			if j == p.Columns[i] {
				line += style.Render("[" + text + "]")
			} else {
				line += " " + text + " "
			}
		}
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// checkPath verifies that columns is a top-to-bottom route through an n-row
// triangle: one column per row, starting at 0, each step 0 or 1 to the right.
func checkPath(n int, columns []int) error {
	if n == 0 || len(columns) != n {
		return fmt.Errorf("%w: %d rows, %d path steps", ErrPathMismatch, n, len(columns))
	}
	for i, c := range columns {
		if c < 0 || c > i {
			return fmt.Errorf("%w: row %d has no column %d", ErrPathMismatch, i+1, c)
		}
		if i > 0 {
			if step := c - columns[i-1]; step != 0 && step != 1 {
				return fmt.Errorf("%w: row %d jumps from column %d to %d", ErrPathMismatch, i+1, columns[i-1], c)
			}
		}
	}

	return nil
}
