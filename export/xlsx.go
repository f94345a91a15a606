package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/labelgrid/model"
)

// sheetName is the single worksheet the XLSX writer produces.
const sheetName = "Sheet1"

// WriteXLSX writes the table to path as an XLSX workbook with one worksheet:
// a header row followed by the data rows, all cells as text.
func WriteXLSX(tbl *model.Table, path string, opts Options) error {
	columns, rows := columnsAndRows(tbl, opts.RowIDs)

	f := excelize.NewFile()
	defer f.Close()

	for colIdx, name := range columns {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("writing header cell: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("writing cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
