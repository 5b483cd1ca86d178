// scroll.go re-exports scroll visibility types from internal/scrollinfo.
// Any changes to internal/scrollinfo types must be mirrored here.
package listable

import "github.com/eugenegrebnev/Listable/internal/scrollinfo"

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges = scrollinfo.Edges

const (
	EdgeTop    = scrollinfo.EdgeTop
	EdgeLeft   = scrollinfo.EdgeLeft
	EdgeBottom = scrollinfo.EdgeBottom
	EdgeRight  = scrollinfo.EdgeRight
	EdgeNone   = scrollinfo.EdgeNone
	EdgeAll    = scrollinfo.EdgeAll
)

// ScrollPositionInfo is a snapshot of which list content was visible at
// the moment of a scroll event. ID is the externally supplied item
// identifier type.
type ScrollPositionInfo[ID comparable] = scrollinfo.PositionInfo[ID]

// VisibleContentEdges reports which edges of scroll content are inside
// the viewport described by bounds, honoring safe-area insets only for
// the requested edges.
func VisibleContentEdges(bounds Rect, contentSize Size, insets Insets, requested Edges) Edges {
	return scrollinfo.VisibleContentEdges(bounds, contentSize, insets, requested)
}

// NewScrollPositionInfo captures a scroll snapshot from externally
// computed visibility facts and scroll view geometry.
func NewScrollPositionInfo[ID comparable](
	visible map[ID]struct{},
	ordered []ID,
	firstItemVisible, lastItemVisible bool,
	bounds Rect,
	contentSize Size,
	insets Insets,
) ScrollPositionInfo[ID] {
	return scrollinfo.NewPositionInfo(
		visible, ordered,
		firstItemVisible, lastItemVisible,
		bounds, contentSize, insets,
	)
}
