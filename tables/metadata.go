package tables

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tsawler/labelgrid/model"
)

// DefaultTimestampLabel is the metadata label the source template uses for
// the report timestamp.
const DefaultTimestampLabel = "Date"

// TimestampLayout is the fixed format of the report timestamp, e.g.
// "10:00 AM Mon Jan 01, 2024". The unpadded verbs also accept zero-padded
// values.
const TimestampLayout = "3:04 PM Mon Jan 2, 2006"

// labelPattern matches metadata labels: letters and spaces up to a colon
// that is not immediately followed by a digit. The digit guard keeps clock
// values like "09:15" from being read as labels.
var labelPattern = regexp.MustCompile(`^[A-Za-z\s]+:(?:[^0-9]|$)`)

var spaceRuns = regexp.MustCompile(` +`)

// TimestampFormatError reports a missing or unparsable report timestamp.
// The timestamp is mandatory metadata: a report that cannot be dated cannot
// be exported.
type TimestampFormatError struct {
	Label string
	Value string // "" when the label was absent entirely
	Err   error
}

func (e *TimestampFormatError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("tables: metadata %q not found in report", e.Label)
	}
	return fmt.Sprintf("tables: metadata %q value %q does not match %q", e.Label, e.Value, TimestampLayout)
}

func (e *TimestampFormatError) Unwrap() error { return e.Err }

// ExtractMetadata lifts "Label: value" rows out of the grid into a metadata
// record and returns the remaining data rows.
//
// A single-cell row whose cell matches the label pattern is split on its
// first colon. In a multi-cell row, every cell matching the pattern takes
// the next cell in the row as its value, with runs of internal spaces
// collapsed; a match in the last cell has no value to take and is ignored.
// Matched rows never reach the normalizer.
//
// The timestampLabel entry must exist and parse with [TimestampLayout]; its
// parsed value lands in Metadata.Timestamp and its record entry is rewritten
// as RFC 3339.
func ExtractMetadata(grid model.RawGrid, timestampLabel string) (*model.Metadata, model.RawGrid, error) {
	if timestampLabel == "" {
		timestampLabel = DefaultTimestampLabel
	}

	meta := model.NewMetadata()
	remaining := make(model.RawGrid, 0, len(grid))

	for _, row := range grid {
		if len(row) == 1 {
			if labelPattern.MatchString(row[0]) {
				label, value, _ := strings.Cut(row[0], ":")
				meta.Set(strings.TrimSpace(label), strings.TrimSpace(value))
				continue
			}
			remaining = append(remaining, row)
			continue
		}

		matched := false
		for i, cell := range row {
			if i+1 >= len(row) || !labelPattern.MatchString(cell) {
				continue
			}
			matched = true
			label := collapseSpaces(strings.TrimSuffix(cell, ":"))
			meta.Set(label, collapseSpaces(row[i+1]))
		}
		if !matched {
			remaining = append(remaining, row)
		}
	}

	raw, ok := meta.Get(timestampLabel)
	if !ok {
		return nil, nil, &TimestampFormatError{Label: timestampLabel}
	}
	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return nil, nil, &TimestampFormatError{Label: timestampLabel, Value: raw, Err: err}
	}
	meta.Timestamp = ts
	meta.Set(timestampLabel, ts.Format(time.RFC3339))

	return meta, remaining, nil
}

// collapseSpaces squeezes runs of spaces to one and trims the ends.
func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}
