package scrollinfo

import "strings"

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeLeft
	EdgeBottom
	EdgeRight
)

const (
	// EdgeNone is the empty edge set.
	EdgeNone Edges = 0

	// EdgeAll is the set of all four edges.
	EdgeAll = EdgeTop | EdgeLeft | EdgeBottom | EdgeRight
)

// Contains returns true if every edge in other is present in e.
func (e Edges) Contains(other Edges) bool {
	return e&other == other
}

// Add returns the union of e and other.
func (e Edges) Add(other Edges) Edges {
	return e | other
}

// Remove returns e with the edges in other cleared.
func (e Edges) Remove(other Edges) Edges {
	return e &^ other
}

// String renders the set as a comma-separated list, e.g. "top, left".
func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	names := make([]string, 0, 4)
	if e.Contains(EdgeTop) {
		names = append(names, "top")
	}
	if e.Contains(EdgeLeft) {
		names = append(names, "left")
	}
	if e.Contains(EdgeBottom) {
		names = append(names, "bottom")
	}
	if e.Contains(EdgeRight) {
		names = append(names, "right")
	}

	return strings.Join(names, ", ")
}
