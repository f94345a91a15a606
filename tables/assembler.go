package tables

import (
	"fmt"
	"sort"

	"github.com/tsawler/labelgrid/model"
)

// DuplicatePolicy decides what happens when two fragments claim the same
// grid cell (identical row and column coordinates).
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the later-encountered fragment. Deterministic
	// last-write-wins in document order.
	DuplicateOverwrite DuplicatePolicy = iota

	// DuplicateError fails the run with a *DuplicateCellError.
	DuplicateError
)

// DuplicateCellError reports two fragments claiming the same grid cell under
// the DuplicateError policy.
type DuplicateCellError struct {
	At     model.Point
	First  string
	Second string
}

func (e *DuplicateCellError) Error() string {
	return fmt.Sprintf("tables: duplicate cell at (%d,%d): %q and %q",
		e.At.Row, e.At.Col, e.First, e.Second)
}

// AssembleGrid groups data fragments into a raw grid: one row per distinct
// row coordinate in ascending order, cells within a row in ascending column
// order. Document order is never trusted for sequencing; only coordinates
// decide placement.
func AssembleGrid(data []model.Fragment, policy DuplicatePolicy) (model.RawGrid, error) {
	cells := make(map[int]map[int]string)
	for _, f := range data {
		row, ok := cells[f.At.Row]
		if !ok {
			row = make(map[int]string)
			cells[f.At.Row] = row
		}
		if first, claimed := row[f.At.Col]; claimed && policy == DuplicateError {
			return nil, &DuplicateCellError{At: f.At, First: first, Second: f.Text}
		}
		row[f.At.Col] = f.Text
	}

	rowCoords := make([]int, 0, len(cells))
	for r := range cells {
		rowCoords = append(rowCoords, r)
	}
	sort.Ints(rowCoords)

	grid := make(model.RawGrid, 0, len(rowCoords))
	for _, r := range rowCoords {
		colCoords := make([]int, 0, len(cells[r]))
		for c := range cells[r] {
			colCoords = append(colCoords, c)
		}
		sort.Ints(colCoords)

		row := make([]string, 0, len(colCoords))
		for _, c := range colCoords {
			row = append(row, cells[r][c])
		}
		grid = append(grid, row)
	}
	return grid, nil
}
