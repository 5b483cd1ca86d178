package layout

import "math"

// Size represents a width/height pair in points.
type Size struct {
	Width, Height float64
}

// NewSize creates a new Size with the given dimensions.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Ceil returns the size with each dimension rounded up to the nearest
// whole point. Fractional measurements are always rounded up so content
// never renders on sub-pixel boundaries.
func (s Size) Ceil() Size {
	return Size{Width: math.Ceil(s.Width), Height: math.Ceil(s.Height)}
}

// IsEmpty returns true if the size has zero or negative area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
