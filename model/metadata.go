package model

import "time"

// Metadata holds report-level key/value facts extracted from free-standing
// "Label: value" rows in the grid. Keys are unique (a repeated label
// overwrites its value) and first-seen order is preserved so that downstream
// output is deterministic.
type Metadata struct {
	// Timestamp is the parsed report timestamp. The raw string stays in the
	// record under its original label, normalized to RFC 3339.
	Timestamp time.Time

	keys   []string
	values map[string]string
}

// NewMetadata creates an empty metadata record.
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]string)}
}

// Set stores a value under label. A repeated label keeps its original
// position but takes the new value.
func (m *Metadata) Set(label, value string) {
	if _, ok := m.values[label]; !ok {
		m.keys = append(m.keys, label)
	}
	m.values[label] = value
}

// Get returns the value stored under label and whether it exists.
func (m *Metadata) Get(label string) (string, bool) {
	v, ok := m.values[label]
	return v, ok
}

// Keys returns the labels in first-seen order.
func (m *Metadata) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of distinct labels.
func (m *Metadata) Len() int {
	return len(m.keys)
}
