// Package style decodes inline CSS declaration lists of the kind the legacy
// report generator attaches to every positioned text element, and extracts
// the absolute pixel coordinates that drive grid reconstruction.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/labelgrid/model"
)

// unit is the coordinate unit suffix the report generator always emits.
const unit = "px"

// MalformedStyleError reports a style whose coordinate properties are missing
// or unparsable. A fragment without a usable coordinate cannot be placed in
// the grid, so this is fatal for the whole document.
type MalformedStyleError struct {
	Property string // the property that failed ("top" or "left")
	Value    string // the raw declared value, "" when absent
	Style    string // the full declaration list, for diagnostics
}

func (e *MalformedStyleError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("style: missing %q in %q", e.Property, e.Style)
	}
	return fmt.Sprintf("style: cannot parse %q value %q in %q", e.Property, e.Value, e.Style)
}

// ParseDeclarations turns a "prop: value; prop2: value2;" declaration list
// into a property map. Keys and values are whitespace-trimmed, a trailing
// separator produces no spurious entry, and a repeated property keeps the
// last value. Declarations without a colon are ignored.
func ParseDeclarations(s string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return props
}

// Coordinate extracts the (top, left) pixel pair from a declaration map.
// Both properties must be present as an integer followed by the px suffix.
func Coordinate(props map[string]string) (model.Point, error) {
	row, err := pixels(props, "top")
	if err != nil {
		return model.Point{}, err
	}
	col, err := pixels(props, "left")
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{Row: row, Col: col}, nil
}

// Font returns the raw font declaration, or "" when the style has none.
func Font(props map[string]string) string {
	return props["font"]
}

func pixels(props map[string]string, property string) (int, error) {
	raw, ok := props[property]
	if !ok {
		return 0, &MalformedStyleError{Property: property, Style: rebuild(props)}
	}
	n, err := strconv.Atoi(strings.TrimSuffix(raw, unit))
	if err != nil {
		return 0, &MalformedStyleError{Property: property, Value: raw, Style: rebuild(props)}
	}
	return n, nil
}

// rebuild reconstructs a declaration list for error messages. Order is not
// significant there.
func rebuild(props map[string]string) string {
	parts := make([]string, 0, len(props))
	for name, value := range props {
		parts = append(parts, name+": "+value)
	}
	return strings.Join(parts, "; ")
}
