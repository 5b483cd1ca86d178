package layout

// Insets represents distances inward from each side of a rectangle,
// such as a scroll view's safe-area insets.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// InsetsAll creates Insets with the same value on all sides.
func InsetsAll(n float64) Insets {
	return Insets{Top: n, Right: n, Bottom: n, Left: n}
}

// InsetsTRBL creates Insets following CSS order: Top, Right, Bottom, Left.
func InsetsTRBL(t, r, b, l float64) Insets {
	return Insets{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (i Insets) Horizontal() float64 {
	return i.Left + i.Right
}

// Vertical returns the sum of Top and Bottom.
func (i Insets) Vertical() float64 {
	return i.Top + i.Bottom
}

// IsZero returns true if all inset values are zero.
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Right == 0 && i.Bottom == 0 && i.Left == 0
}
