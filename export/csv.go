package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/labelgrid/model"
)

// WriteCSV writes the table to path as a comma-delimited flat file with a
// header row. The file appears atomically: content is written to a temporary
// file in the same directory and renamed into place, so a failed run leaves
// no partial artifact.
func WriteCSV(tbl *model.Table, path string, opts Options) error {
	columns, rows := columnsAndRows(tbl, opts.RowIDs)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("writing rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("finalizing output: %w", err)
	}
	return nil
}
