// Package render formats solver results for people and programs.
//
//   - Summary:   "Minimal path is: 7 + 6 + 3 + 2 = 18"
//   - JSON:      one object per result, for scripts.
//   - Highlight: the triangle itself, centred, with the chosen cells in
//     brackets and, on colour terminals, bold green.
//
// Colour handling is delegated to lipgloss: writers that are not terminals
// (files, pipes, buffers) get plain text, and NO_COLOR is honoured.
package render
