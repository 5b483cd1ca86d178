package layout

import (
	"fmt"
	"math"
)

// WidthConstraintMode specifies how a WidthConstraint resolves a width
// from available space.
type WidthConstraintMode uint8

const (
	WidthConstraintNone   WidthConstraintMode = iota // Use the available width unchanged
	WidthConstraintFixed                             // Use an explicit width
	WidthConstraintAtMost                            // Ceiling the available width
)

// WidthConstraint resolves a concrete width magnitude from the space a
// parent makes available.
type WidthConstraint struct {
	Mode  WidthConstraintMode
	Value float64
}

// NoWidthConstraint returns the constraint that uses the available
// width unchanged.
func NoWidthConstraint() WidthConstraint {
	return WidthConstraint{Mode: WidthConstraintNone}
}

// FixedWidth returns the constraint that always resolves to value.
func FixedWidth(value float64) WidthConstraint {
	return WidthConstraint{Mode: WidthConstraintFixed, Value: value}
}

// AtMostWidth returns the constraint that ceilings the available width
// at max.
func AtMostWidth(max float64) WidthConstraint {
	return WidthConstraint{Mode: WidthConstraintAtMost, Value: max}
}

// Clamp resolves the constraint against the available width. Negative
// available widths propagate through unchanged; callers own input
// sanity.
func (c WidthConstraint) Clamp(available float64) float64 {
	switch c.Mode {
	case WidthConstraintNone:
		return available
	case WidthConstraintFixed:
		return c.Value
	case WidthConstraintAtMost:
		return math.Min(c.Value, available)
	default:
		return available
	}
}

// HorizontalPadding is space reserved on either side of resolved
// content width. The zero value pads nothing.
type HorizontalPadding struct {
	Left, Right float64
}

// Horizontal returns the sum of Left and Right.
func (p HorizontalPadding) Horizontal() float64 {
	return p.Left + p.Right
}

// Alignment positions resolved content within the parent's width.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String implements fmt.Stringer.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// Origin computes the x origin for content of the given width laid out
// inside parentWidth with the given padding.
func (a Alignment) Origin(parentWidth, width float64, padding HorizontalPadding) float64 {
	switch a {
	case AlignLeft:
		return padding.Left
	case AlignCenter:
		available := parentWidth - padding.Horizontal()
		return math.Round((available-width)/2.0) + padding.Left
	case AlignRight:
		return parentWidth - width - padding.Right
	default:
		return padding.Left
	}
}

// Position is a resolved horizontal placement.
type Position struct {
	Origin float64
	Width  float64
}

// CustomWidth fully specifies an element's horizontal extent and
// placement: how much of the available width to take, and where to put
// it.
type CustomWidth struct {
	Padding   HorizontalPadding
	Width     WidthConstraint
	Alignment Alignment
}

// Position resolves the placement within parentWidth. Padding larger
// than parentWidth yields a negative width; the result is degenerate
// but defined.
func (c CustomWidth) Position(parentWidth float64) Position {
	width := c.Width.Clamp(parentWidth - c.Padding.Horizontal())

	return Position{
		Origin: c.Alignment.Origin(parentWidth, width, c.Padding),
		Width:  width,
	}
}

// WidthMode discriminates Width policies.
type WidthMode uint8

const (
	WidthDefault WidthMode = iota // Centered at the layout's default width
	WidthFill                     // Fill the parent's full width
	WidthCustom                   // Fully specified placement
)

// Width specifies how a list element's horizontal extent and placement
// are determined.
type Width struct {
	Mode   WidthMode
	Custom CustomWidth // WidthCustom only
}

// DefaultWidth returns the policy that centers content at the layout's
// default width.
func DefaultWidth() Width {
	return Width{Mode: WidthDefault}
}

// FillWidth returns the policy that fills the parent's full width.
func FillWidth() Width {
	return Width{Mode: WidthFill}
}

// NewCustomWidth returns the policy that uses a fully specified
// placement.
func NewCustomWidth(custom CustomWidth) Width {
	return Width{Mode: WidthCustom, Custom: custom}
}

// Merge resolves inheritance against a parent policy: WidthDefault
// defers entirely to the parent, WidthFill and WidthCustom always win.
// Merge is idempotent.
func (w Width) Merge(parent Width) Width {
	if w.Mode == WidthDefault {
		return parent
	}
	return w
}

// Position resolves the policy to a concrete origin and width within
// parentWidth. For WidthDefault, defaultWidth is centered (rounded to
// whole points); the other modes ignore it.
func (w Width) Position(parentWidth, defaultWidth float64) Position {
	switch w.Mode {
	case WidthDefault:
		return Position{
			Origin: math.Round((parentWidth - defaultWidth) / 2.0),
			Width:  defaultWidth,
		}
	case WidthFill:
		return Position{Origin: 0, Width: parentWidth}
	case WidthCustom:
		return w.Custom.Position(parentWidth)
	default:
		panic(fmt.Sprintf("listable: unknown width mode %d", w.Mode))
	}
}
