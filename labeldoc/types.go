package labeldoc

// Label is one <label> element as it appears in the source document: a raw
// style declaration list and a raw text value. Either may be empty; the core
// pipeline decides what to do with them.
type Label struct {
	Style string
	Text  string
}
