package tables

import (
	"fmt"
	"strings"

	"github.com/tsawler/labelgrid/model"
)

// Normalize turns the remaining grid rows into the final table.
//
// Filtering is driven entirely by each row's first cell: a letter anywhere in
// it marks a footer or annotation row, and an empty or all-dash value marks a
// placeholder; both drop the whole row. Surviving first cells have their
// internal whitespace removed. Row order is grid order, which is already
// coordinate order. Each metadata key becomes a leading column with its value
// broadcast to every row.
//
// Rows narrower than the header are padded with empty cells; a row wider
// than the header means the coordinate structure does not match the header
// and fails the run.
func Normalize(grid model.RawGrid, header model.Header, meta *model.Metadata) (*model.Table, error) {
	metaKeys := meta.Keys()
	columns := make([]string, 0, len(metaKeys)+len(header))
	columns = append(columns, metaKeys...)
	columns = append(columns, header...)
	tbl := model.NewTable(columns)

	metaValues := make([]string, len(metaKeys))
	for i, k := range metaKeys {
		metaValues[i], _ = meta.Get(k)
	}

	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		first := row[0]
		if containsLetter(first) {
			continue
		}
		if first == "" || isDashPlaceholder(first) {
			continue
		}
		if len(row) > len(header) {
			return nil, fmt.Errorf("tables: row %v has %d cells but header has %d columns", row, len(row), len(header))
		}

		cells := make([]string, 0, len(columns))
		cells = append(cells, metaValues...)
		cells = append(cells, stripSpaces(first))
		cells = append(cells, row[1:]...)
		for len(cells) < len(columns) {
			cells = append(cells, "")
		}
		if err := tbl.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// containsLetter reports whether s contains an ASCII letter.
func containsLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// isDashPlaceholder reports whether s is nothing but dashes, two or more.
func isDashPlaceholder(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, r := range s {
		if r != '-' {
			return false
		}
	}
	return true
}

// stripSpaces removes all whitespace from s.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
