package labelgrid

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/labelgrid/labeldoc"
	"github.com/tsawler/labelgrid/style"
	"github.com/tsawler/labelgrid/tables"
)

// sampleReport mimics the structure the legacy report generator emits: one
// absolutely positioned <label> per cell, a two-line bold header, a
// free-standing Date row, a footer row, and a placeholder row.
const sampleReport = `<html><body>
<label style="top: 0px; left: 30px">Date: 10:00 AM Mon Jan 01, 2024</label>
<label style="top: 20px; left: 30px; font: bold 12px verdana">Agent&nbsp;ACD</label>
<label style="top: 32px; left: 30px; font: bold 12px verdana">Name&nbsp;Calls</label>
<label style="top: 50px; left: 0px">09:15</label>
<label style="top: 50px; left: 50px">John</label>
<label style="top: 50px; left: 120px">7</label>
<label style="top: 60px; left: 0px">09:16</label>
<label style="top: 60px; left: 50px">Jane</label>
<label style="top: 60px; left: 120px">4</label>
<label style="top: 70px; left: 0px">--</label>
<label style="top: 70px; left: 50px">Totals</label>
<label style="top: 80px; left: 0px">Report issued by system</label>
</body></html>`

func openSample(t *testing.T, doc string) *Extractor {
	t.Helper()
	r, err := labeldoc.OpenReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parsing sample: %v", err)
	}
	return FromReader(r)
}

func TestTableEndToEnd(t *testing.T) {
	tbl, meta, err := openSample(t, sampleReport).Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}

	wantCols := []string{"Date", "TIME", "Agent Name", "ACD Calls"}
	if !reflect.DeepEqual(tbl.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, wantCols)
	}

	wantRows := [][]string{
		{"2024-01-01T10:00:00Z", "09:15", "John", "7"},
		{"2024-01-01T10:00:00Z", "09:16", "Jane", "4"},
	}
	if !reflect.DeepEqual(tbl.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", tbl.Rows, wantRows)
	}

	if meta.Timestamp.IsZero() {
		t.Error("metadata timestamp not parsed")
	}
	if _, ok := meta.Get("Date"); !ok {
		t.Error("Date missing from metadata record")
	}
}

func TestTableScenarioMinimal(t *testing.T) {
	// Header fragments producing ["Agent"] and ["Name"] zip into a single
	// column "Agent Name"; final columns are TIME plus that.
	doc := `<body>
<label style="top: 0px; left: 0px">Date: 10:00 AM Mon Jan 01, 2024</label>
<label style="top: 5px; left: 0px; font: bold 12px verdana">Agent</label>
<label style="top: 8px; left: 0px; font: bold 12px verdana">Name</label>
<label style="top: 10px; left: 0px">09:15</label>
<label style="top: 10px; left: 50px">John</label>
<label style="top: 20px; left: 0px">09:16</label>
<label style="top: 20px; left: 50px">Jane</label>
</body>`

	tbl, _, err := openSample(t, doc).Table()
	if err != nil {
		t.Fatalf("Table: %v", err)
	}

	wantCols := []string{"Date", "TIME", "Agent Name"}
	if !reflect.DeepEqual(tbl.Columns, wantCols) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, wantCols)
	}
	wantData := [][]string{
		{"09:15", "John"},
		{"09:16", "Jane"},
	}
	for i, want := range wantData {
		if tbl.Get(i, "TIME") != want[0] || tbl.Get(i, "Agent Name") != want[1] {
			t.Errorf("row %d = %v, want %v", i, tbl.Rows[i], want)
		}
	}
}

func TestTableMalformedStyleAborts(t *testing.T) {
	doc := `<body>
<label style="top: 0px; left: 0px">Date: 10:00 AM Mon Jan 01, 2024</label>
<label style="top: 5px; left: 0px; font: bold 12px verdana">Agent</label>
<label style="top: px; left: 10px">42</label>
</body>`

	_, _, err := openSample(t, doc).Table()
	var mse *style.MalformedStyleError
	if !errors.As(err, &mse) {
		t.Fatalf("error = %v, want *style.MalformedStyleError", err)
	}
}

func TestTableNoHeader(t *testing.T) {
	doc := `<body>
<label style="top: 0px; left: 0px">Date: 10:00 AM Mon Jan 01, 2024</label>
<label style="top: 10px; left: 0px">09:15</label>
</body>`

	_, _, err := openSample(t, doc).Table()
	if !errors.Is(err, tables.ErrHeaderNotFound) {
		t.Fatalf("error = %v, want ErrHeaderNotFound", err)
	}
}

func TestTableErrorCarriesDocumentIdentifier(t *testing.T) {
	_, _, err := Open("missing-report.html").Table()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing-report.html") {
		t.Errorf("error %q does not name the document", err)
	}
}

func TestOnDuplicatePolicies(t *testing.T) {
	doc := `<body>
<label style="top: 0px; left: 0px">Date: 10:00 AM Mon Jan 01, 2024</label>
<label style="top: 5px; left: 0px; font: bold 12px verdana">Agent</label>
<label style="top: 10px; left: 0px">09:15</label>
<label style="top: 10px; left: 0px">09:59</label>
</body>`

	// Default policy: the later fragment wins, silently.
	tbl, _, err := openSample(t, doc).Table()
	if err != nil {
		t.Fatalf("Table with overwrite policy: %v", err)
	}
	if got := tbl.Get(0, "TIME"); got != "09:59" {
		t.Errorf("TIME = %q, want later fragment %q", got, "09:59")
	}

	// Strict policy: same document fails.
	_, _, err = openSample(t, doc).OnDuplicate(DuplicateError).Table()
	var dce *tables.DuplicateCellError
	if !errors.As(err, &dce) {
		t.Fatalf("error = %v, want *tables.DuplicateCellError", err)
	}
}

func TestConfigurationDoesNotMutateOriginal(t *testing.T) {
	base := Open("report.html")
	configured := base.HeaderLines(3).OnDuplicate(DuplicateError).TimestampLabel("Generated")

	if base.options.headerLines != tables.DefaultHeaderLines {
		t.Error("HeaderLines mutated the original extractor")
	}
	if base.options.duplicatePolicy != DuplicateOverwrite {
		t.Error("OnDuplicate mutated the original extractor")
	}
	if configured.options.headerLines != 3 ||
		configured.options.duplicatePolicy != DuplicateError ||
		configured.options.timestampLabel != "Generated" {
		t.Errorf("configured options = %+v", configured.options)
	}
}

func TestRawGrid(t *testing.T) {
	grid, err := openSample(t, sampleReport).RawGrid()
	if err != nil {
		t.Fatalf("RawGrid: %v", err)
	}

	// One row per distinct row coordinate among data fragments: the Date
	// row, two data rows, the placeholder row, and the footer row.
	if grid.RowCount() != 5 {
		t.Fatalf("RowCount = %d, want 5: %v", grid.RowCount(), grid)
	}
	// Within a row, strictly ascending column coordinates.
	if !reflect.DeepEqual(grid[1], []string{"09:15", "John", "7"}) {
		t.Errorf("grid[1] = %v", grid[1])
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
