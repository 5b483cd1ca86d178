package scrollinfo

import "github.com/eugenegrebnev/Listable/internal/layout"

// PositionInfo is a snapshot of which list content was visible at the
// moment of a scroll event, together with the scroll view geometry
// captured at the same moment. It holds facts; its only computation is
// delegating edge visibility to [VisibleContentEdges].
//
// ID is the externally supplied, opaque item identifier type.
type PositionInfo[ID comparable] struct {
	visibleItems        map[ID]struct{}
	orderedVisibleItems []ID
	firstItemVisible    bool
	lastItemVisible     bool

	bounds      layout.Rect
	contentSize layout.Size
	insets      layout.Insets
}

// NewPositionInfo captures a scroll snapshot. The visible set and
// ordered sequence are copied, so later caller mutations do not leak
// into the snapshot.
func NewPositionInfo[ID comparable](
	visible map[ID]struct{},
	ordered []ID,
	firstItemVisible, lastItemVisible bool,
	bounds layout.Rect,
	contentSize layout.Size,
	insets layout.Insets,
) PositionInfo[ID] {
	items := make(map[ID]struct{}, len(visible))
	for id := range visible {
		items[id] = struct{}{}
	}

	sequence := make([]ID, len(ordered))
	copy(sequence, ordered)

	return PositionInfo[ID]{
		visibleItems:        items,
		orderedVisibleItems: sequence,
		firstItemVisible:    firstItemVisible,
		lastItemVisible:     lastItemVisible,
		bounds:              bounds,
		contentSize:         contentSize,
		insets:              insets,
	}
}

// VisibleItems returns the identifiers of the items that were at least
// partially visible. Callers must not modify the returned map.
func (p PositionInfo[ID]) VisibleItems() map[ID]struct{} {
	return p.visibleItems
}

// OrderedVisibleItems returns the visible identifiers in first-to-last
// order. Callers must not modify the returned slice.
func (p PositionInfo[ID]) OrderedVisibleItems() []ID {
	return p.orderedVisibleItems
}

// FirstItemVisible returns true if the first item of the list was at
// least partially visible.
func (p PositionInfo[ID]) FirstItemVisible() bool {
	return p.firstItemVisible
}

// LastItemVisible returns true if the last item of the list was at
// least partially visible.
func (p PositionInfo[ID]) LastItemVisible() bool {
	return p.lastItemVisible
}

// Bounds returns the captured viewport rectangle in content
// coordinates.
func (p PositionInfo[ID]) Bounds() layout.Rect {
	return p.bounds
}

// ContentSize returns the captured scroll content size.
func (p PositionInfo[ID]) ContentSize() layout.Size {
	return p.contentSize
}

// SafeAreaInsets returns the captured safe-area insets.
func (p PositionInfo[ID]) SafeAreaInsets() layout.Insets {
	return p.insets
}

// VisibleContentEdges reports which edges of the scroll content were
// visible at snapshot time, honoring safe-area insets only for the
// edges in including.
func (p PositionInfo[ID]) VisibleContentEdges(including Edges) Edges {
	return VisibleContentEdges(p.bounds, p.contentSize, p.insets, including)
}
