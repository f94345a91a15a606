package labelgrid

import "github.com/tsawler/labelgrid/tables"

// DuplicatePolicy decides what happens when two fragments claim the same
// grid cell. Re-exported from the tables package for callers that only use
// the fluent API.
type DuplicatePolicy = tables.DuplicatePolicy

const (
	// DuplicateOverwrite keeps the later-encountered fragment (default).
	DuplicateOverwrite = tables.DuplicateOverwrite

	// DuplicateError fails the run when a cell is claimed twice.
	DuplicateError = tables.DuplicateError
)

// ExtractOptions holds configuration for table reconstruction.
type ExtractOptions struct {
	// headerLines is how many wrapped visual lines make up the column
	// header in the source template.
	headerLines int

	// duplicatePolicy controls colliding cell coordinates.
	duplicatePolicy DuplicatePolicy

	// timestampLabel is the mandatory metadata label carrying the report
	// timestamp.
	timestampLabel string
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		headerLines:     tables.DefaultHeaderLines,
		duplicatePolicy: DuplicateOverwrite,
		timestampLabel:  tables.DefaultTimestampLabel,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		headerLines:     o.headerLines,
		duplicatePolicy: o.duplicatePolicy,
		timestampLabel:  o.timestampLabel,
	}
}
