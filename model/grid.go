package model

// RawGrid is the grid recovered from fragment coordinates before any
// normalization: one slice per distinct row coordinate in ascending order,
// each holding cell texts in ascending column-coordinate order. Rows may be
// ragged; nothing is typed or named yet.
type RawGrid [][]string

// RowCount returns the number of rows in the grid.
func (g RawGrid) RowCount() int {
	return len(g)
}

// Header is the final ordered column name list, including any synthetic
// leading columns for values the source leaves unlabeled.
type Header []string
