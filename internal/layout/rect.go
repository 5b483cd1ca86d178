package layout

// Rect represents a rectangle in point coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset returns a new Rect inset by the given Insets.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(insets Insets) Rect {
	return Rect{
		X:      r.X + insets.Left,
		Y:      r.Y + insets.Top,
		Width:  r.Width - insets.Left - insets.Right,
		Height: r.Height - insets.Top - insets.Bottom,
	}
}
