package model

import "fmt"

// Table is the final normalized result: named columns and string-valued rows.
// Columns holds metadata columns first (broadcast to every row), then the
// reconstructed header. Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given column names.
func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// AppendRow adds a row to the table. The row must have exactly one cell per
// column.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) != len(t.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.Columns))
	}
	row := make([]string, len(cells))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
	return nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

// Get returns the value at the given row for the named column. It returns
// "" when the row index is out of range or the column does not exist.
func (t *Table) Get(row int, column string) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	i := t.columnIndex(column)
	if i < 0 {
		return ""
	}
	return t.Rows[row][i]
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
