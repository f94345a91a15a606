package export

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/tsawler/labelgrid/model"
)

// RouteTable picks the database table for a reconstructed table by column
// presence: the first route whose column the table carries wins, otherwise
// the default table.
func RouteTable(tbl *model.Table, cfg *Config) string {
	for _, route := range cfg.Routes {
		if tbl.HasColumn(route.Column) {
			return route.Table
		}
	}
	return cfg.DefaultTable
}

// WriteSQL inserts the table's rows into the routed database table, creating
// it first if needed (every column TEXT). All rows go in a single
// transaction: a failure leaves the database untouched.
func WriteSQL(tbl *model.Table, cfg *Config) error {
	columns, rows := columnsAndRows(tbl, cfg.RowIDs)
	target := RouteTable(tbl, cfg)

	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createStatement(target, columns)); err != nil {
		return fmt.Errorf("creating table %s: %w", target, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertStatement(target, columns))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting into %s: %w", target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func createStatement(table string, columns []string) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = quoteIdent(c) + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
}

func insertStatement(table string, columns []string) string {
	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}

// quoteIdent quotes an identifier for SQLite. Column names come from report
// headers, which can contain spaces and arbitrary punctuation.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
