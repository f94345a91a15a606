package model

// Point is a position in the source document's coordinate space. Row and Col
// are pixel offsets from the top-left corner, not grid indices: several
// fragments may share a Row (same visual row) or a Col (same visual column),
// and no canonical grid index exists until the grid is assembled.
type Point struct {
	Row int
	Col int
}

// Before reports whether p precedes other in reading order: top to bottom,
// then left to right.
func (p Point) Before(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Fragment is one positioned text element from the source document. Fragments
// are produced once, when the markup is decoded, and never mutated.
type Fragment struct {
	At          Point
	Text        string
	HeaderStyle bool
}
