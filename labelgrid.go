// Package labelgrid reconstructs relational tables from report documents
// that encode a grid purely through absolutely positioned text elements.
//
// Legacy report generators emit one positioned <label> per cell instead of a
// real table; nothing in the markup links the cells. labelgrid infers rows
// and columns from the coordinates alone, reassembles the wrapped column
// header, lifts free-standing "Label: value" facts into a metadata record,
// and produces a clean table with the metadata broadcast onto every row.
//
// Basic usage:
//
//	tbl, meta, err := labelgrid.Open("phone_data.html").Table()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	tbl, meta, err := labelgrid.Open("phone_data.html").
//	    HeaderLines(2).
//	    OnDuplicate(labelgrid.DuplicateError).
//	    Table()
//
// For export to CSV, XLSX, or a relational database, see the export package.
package labelgrid

import (
	"github.com/tsawler/labelgrid/labeldoc"
)

// Open prepares an Extractor for the given report file. Nothing is read
// until a terminal operation like Table() runs.
//
// Example:
//
//	tbl, meta, err := labelgrid.Open("phone_data.html").Table()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-parsed labeldoc.Reader.
// Useful when the document arrives as a stream rather than a file.
//
// Example:
//
//	r, err := labeldoc.OpenReader(stream)
//	if err != nil {
//	    // handle error
//	}
//	tbl, meta, err := labelgrid.FromReader(r).Table()
func FromReader(r *labeldoc.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
