// Package model provides the intermediate representation for reconstructed
// report content.
//
// The types here trace the pipeline from raw positioned text to a finished
// table:
//
//   - [Fragment] - one positioned text element, decoded from the source markup
//   - [RawGrid] - fragments grouped into rows and columns purely by coordinate
//   - [Header] - the final ordered column name list
//   - [Metadata] - report-level key/value facts lifted out of the grid
//   - [Table] - normalized rows with metadata columns prepended
//
// Fragment, RawGrid, Header, and Metadata are intermediate: they are built
// fresh for each document and discarded once the [Table] is constructed. The
// Table is the sole artifact handed to exporters.
package model
