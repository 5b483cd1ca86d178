package scrollinfo

import "github.com/eugenegrebnev/Listable/internal/layout"

// VisibleContentEdges reports which edges of the scroll content are
// inside the viewport described by bounds. The content's origin is
// (0, 0); bounds is the viewport rectangle in content coordinates, so
// bounds.Y is the vertical scroll offset.
//
// Safe-area insets are applied only for the edges named in requested;
// the other sides contribute zero inset. This lets a caller treat, say,
// the bottom edge as visible even when it sits under the home
// indicator. All four edges are always evaluated and reported.
func VisibleContentEdges(bounds layout.Rect, contentSize layout.Size, insets layout.Insets, requested Edges) Edges {
	visible := bounds.Inset(maskInsets(insets, requested))

	edges := EdgeNone
	if visible.Y <= 0 {
		edges = edges.Add(EdgeTop)
	}
	if visible.X <= 0 {
		edges = edges.Add(EdgeLeft)
	}
	if visible.Bottom() >= contentSize.Height {
		edges = edges.Add(EdgeBottom)
	}
	if visible.Right() >= contentSize.Width {
		edges = edges.Add(EdgeRight)
	}

	return edges
}

// maskInsets zeroes the inset sides whose edges are not requested.
func maskInsets(insets layout.Insets, requested Edges) layout.Insets {
	if !requested.Contains(EdgeTop) {
		insets.Top = 0
	}
	if !requested.Contains(EdgeLeft) {
		insets.Left = 0
	}
	if !requested.Contains(EdgeBottom) {
		insets.Bottom = 0
	}
	if !requested.Contains(EdgeRight) {
		insets.Right = 0
	}
	return insets
}
