package labelgrid

import (
	"fmt"

	"github.com/tsawler/labelgrid/labeldoc"
	"github.com/tsawler/labelgrid/model"
	"github.com/tsawler/labelgrid/tables"
)

// Extractor provides a fluent interface for reconstructing a table from a
// report document. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining;
// a single document run is a pure, sequential batch transform with no state
// shared between runs.
type Extractor struct {
	filename string
	reader   *labeldoc.Reader
	options  ExtractOptions
}

// clone creates a copy of the Extractor with a copy of its options. Each
// chain method returns a new instance rather than mutating the receiver.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		reader:   e.reader,
		options:  e.options.clone(),
	}
}

// HeaderLines sets how many wrapped visual lines the source template uses
// for its column header. The default is 2.
func (e *Extractor) HeaderLines(n int) *Extractor {
	ne := e.clone()
	ne.options.headerLines = n
	return ne
}

// OnDuplicate sets the policy for two fragments claiming the same grid cell.
// The default is DuplicateOverwrite.
func (e *Extractor) OnDuplicate(policy DuplicatePolicy) *Extractor {
	ne := e.clone()
	ne.options.duplicatePolicy = policy
	return ne
}

// TimestampLabel sets the metadata label that carries the mandatory report
// timestamp. The default is "Date".
func (e *Extractor) TimestampLabel(label string) *Extractor {
	ne := e.clone()
	ne.options.timestampLabel = label
	return ne
}

// Name returns the identifier of the source document: the filename, or "" for
// stream input.
func (e *Extractor) Name() string {
	if e.filename != "" {
		return e.filename
	}
	if e.reader != nil {
		return e.reader.Name()
	}
	return ""
}

// Table runs the full reconstruction pipeline and returns the normalized
// table together with the report metadata. Any failure aborts before
// anything is produced and carries the document identifier.
func (e *Extractor) Table() (*model.Table, *model.Metadata, error) {
	tbl, meta, err := e.table()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", e.describe(), err)
	}
	return tbl, meta, nil
}

// RawGrid runs the pipeline up to grid assembly, before metadata extraction
// and normalization. Mostly useful for diagnosing misaligned reports.
func (e *Extractor) RawGrid() (model.RawGrid, error) {
	labels, err := e.labels()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.describe(), err)
	}

	_, data, err := tables.Classify(labels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.describe(), err)
	}

	grid, err := tables.AssembleGrid(data, e.options.duplicatePolicy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.describe(), err)
	}
	return grid, nil
}

func (e *Extractor) table() (*model.Table, *model.Metadata, error) {
	labels, err := e.labels()
	if err != nil {
		return nil, nil, err
	}

	headerFrags, data, err := tables.Classify(labels)
	if err != nil {
		return nil, nil, err
	}

	header, err := tables.ReconstructHeader(headerFrags, e.options.headerLines)
	if err != nil {
		return nil, nil, err
	}

	grid, err := tables.AssembleGrid(data, e.options.duplicatePolicy)
	if err != nil {
		return nil, nil, err
	}

	meta, grid, err := tables.ExtractMetadata(grid, e.options.timestampLabel)
	if err != nil {
		return nil, nil, err
	}

	tbl, err := tables.Normalize(grid, header, meta)
	if err != nil {
		return nil, nil, err
	}
	return tbl, meta, nil
}

func (e *Extractor) labels() ([]labeldoc.Label, error) {
	if e.reader != nil {
		return e.reader.Labels(), nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no input document specified")
	}
	r, err := labeldoc.Open(e.filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Labels(), nil
}

func (e *Extractor) describe() string {
	if name := e.Name(); name != "" {
		return name
	}
	return "<stream>"
}
