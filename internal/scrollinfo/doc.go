// Package scrollinfo reports which parts of scrollable list content
// are visible at a given scroll position.
//
// [VisibleContentEdges] computes which rectangular edges of the content
// are inside the viewport, honoring safe-area insets per edge.
// [PositionInfo] is an immutable snapshot of a scroll event combining
// visible item identifiers with the captured scroll geometry.
package scrollinfo
