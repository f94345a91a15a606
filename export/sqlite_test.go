package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/tsawler/labelgrid/model"
)

func TestWriteSQLRoundTrip(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Database = filepath.Join(t.TempDir(), "reports.sqlite")

	if err := WriteSQL(testTable(t), cfg); err != nil {
		t.Fatalf("WriteSQL: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT "TIME", "Agent Name" FROM "phone_data" ORDER BY "TIME"`)
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	defer rows.Close()

	var got [][2]string
	for rows.Next() {
		var tm, agent string
		if err := rows.Scan(&tm, &agent); err != nil {
			t.Fatalf("scanning: %v", err)
		}
		got = append(got, [2]string{tm, agent})
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterating: %v", err)
	}

	want := [][2]string{{"09:15", "John"}, {"09:16", "Jane"}}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestWriteSQLRoutesByColumn(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Database = filepath.Join(t.TempDir(), "reports.sqlite")

	tbl := model.NewTable([]string{"Date", "TIME", "Skill"})
	if err := tbl.AppendRow([]string{"2024-01-01T10:00:00Z", "09:15", "12"}); err != nil {
		t.Fatal(err)
	}
	if err := WriteSQL(tbl, cfg); err != nil {
		t.Fatalf("WriteSQL: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "skill_data"`).Scan(&n); err != nil {
		t.Fatalf("counting skill_data rows: %v", err)
	}
	if n != 1 {
		t.Errorf("skill_data has %d rows, want 1", n)
	}
}

func TestWriteSQLAppendsAcrossRuns(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	cfg.Database = filepath.Join(t.TempDir(), "reports.sqlite")

	if err := WriteSQL(testTable(t), cfg); err != nil {
		t.Fatalf("first WriteSQL: %v", err)
	}
	if err := WriteSQL(testTable(t), cfg); err != nil {
		t.Fatalf("second WriteSQL: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.Database)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "phone_data"`).Scan(&n); err != nil {
		t.Fatalf("counting rows: %v", err)
	}
	if n != 4 {
		t.Errorf("phone_data has %d rows, want 4", n)
	}
}

func TestInsertStatementQuoting(t *testing.T) {
	got := insertStatement("skill_data", []string{"Agent Name", `odd"col`})
	want := `INSERT INTO "skill_data" ("Agent Name", "odd""col") VALUES (?, ?)`
	if got != want {
		t.Errorf("insertStatement = %q, want %q", got, want)
	}
}
