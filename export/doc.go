// Package export persists reconstructed tables.
//
// Three targets are supported:
//
//   - CSV flat file (the default), named after the source document
//   - XLSX workbook, same naming, for consumers who want a spreadsheet
//   - a SQLite database, with rows routed to a target table by which
//     columns the table carries
//
// Routing is the exporter's concern, not the core's: a reconstruction run
// produces one table, and the presence of a known column (a "Skill" column,
// a "VDN" column) decides which database table receives it. Routes and the
// database location live in [Config], loadable from YAML.
//
// Every writer either produces a complete artifact or none: SQL rows go in
// one transaction, and flat files are written to a temporary name and
// renamed into place.
package export
