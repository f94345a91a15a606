package export

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/labelgrid/model"
)

// RowIDColumn is the name of the synthetic per-row identifier column added
// when Options.RowIDs is set.
const RowIDColumn = "uuid"

// flatFilePrefix is prepended to every flat-file artifact name.
const flatFilePrefix = "phone_data_"

// Options configures flat-file writers.
type Options struct {
	// RowIDs prepends a uuid column with a fresh identifier per row.
	// Useful when rows from many reports land in one place downstream.
	RowIDs bool
}

// FlatFileName derives the output artifact name from the source document's
// identifier: "reports/june.html" becomes "phone_data_june.csv".
func FlatFileName(source, ext string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "report"
	}
	return flatFilePrefix + base + "." + ext
}

// columnsAndRows materializes the output view of a table, prepending the
// uuid column when requested. Fresh identifiers are generated per call.
func columnsAndRows(tbl *model.Table, rowIDs bool) ([]string, [][]string) {
	if !rowIDs {
		return tbl.Columns, tbl.Rows
	}

	columns := make([]string, 0, len(tbl.Columns)+1)
	columns = append(columns, RowIDColumn)
	columns = append(columns, tbl.Columns...)

	rows := make([][]string, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out := make([]string, 0, len(row)+1)
		out = append(out, uuid.NewString())
		out = append(out, row...)
		rows = append(rows, out)
	}
	return columns, rows
}
