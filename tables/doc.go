// Package tables implements the coordinate-to-grid inference engine: it
// recovers a relational table from a flat collection of positioned text
// fragments that carry no row, column, or table markup of their own.
//
// # Pipeline
//
// The stages run in a fixed order, each consuming the previous stage's
// output:
//
//  1. [Classify] partitions raw labels into header-styled and data
//     fragments, decoding coordinates along the way.
//  2. [ReconstructHeader] merges the wrapped header fragments into one
//     ordered column name list.
//  3. [AssembleGrid] groups data fragments into rows by row coordinate and
//     orders each row by column coordinate.
//  4. [ExtractMetadata] lifts free-standing "Label: value" rows out of the
//     grid into a report-level record, including the mandatory timestamp.
//  5. [Normalize] drops footer and placeholder rows, assigns column names,
//     and prepends the metadata columns.
//
// # Determinism
//
// Row and column order are always derived from coordinates, never from
// document order, so the same fragment set yields the same table regardless
// of how the source serializes it. No stage keeps state between runs:
// documents can be processed concurrently without locking.
package tables
