// sizing.go re-exports sizing resolution types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package listable

import "github.com/eugenegrebnev/Listable/internal/layout"

// Direction specifies the axis along which list content flows.
type Direction = layout.Direction

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// Size represents a width/height pair in points.
type Size = layout.Size

// Rect represents a rectangle in point coordinates.
type Rect = layout.Rect

// Insets represents distances inward from each side of a rectangle.
type Insets = layout.Insets

// Value represents a constraint magnitude (fixed or default-resolved).
type Value = layout.Value

// ValueMode specifies how a Value is interpreted.
type ValueMode = layout.ValueMode

const (
	ValueDefault = layout.ValueDefault
	ValueFixed   = layout.ValueFixed
)

// Axis bounds a measured value along a single dimension.
type Axis = layout.Axis

// AxisMode specifies how an Axis bounds a measured value.
type AxisMode = layout.AxisMode

const (
	AxisNone    = layout.AxisNone
	AxisAtLeast = layout.AxisAtLeast
	AxisAtMost  = layout.AxisAtMost
	AxisWithin  = layout.AxisWithin
)

// Constraint bounds a measured size, each axis independently.
type Constraint = layout.Constraint

// Measurer reports the intrinsic size of content within a bound.
type Measurer = layout.Measurer

// MeasureInfo carries the context of a single measurement pass.
type MeasureInfo = layout.MeasureInfo

// Sizing specifies how a list element's size is determined.
type Sizing = layout.Sizing

// SizingMode discriminates Sizing policies.
type SizingMode = layout.SizingMode

const (
	SizingDefault    = layout.SizingDefault
	SizingFixed      = layout.SizingFixed
	SizingThatFits   = layout.SizingThatFits
	SizingAutolayout = layout.SizingAutolayout
)

// Constructors

func NewSize(width, height float64) Size        { return layout.NewSize(width, height) }
func NewRect(x, y, width, height float64) Rect  { return layout.NewRect(x, y, width, height) }
func InsetsAll(n float64) Insets                { return layout.InsetsAll(n) }
func InsetsTRBL(t, r, b, l float64) Insets      { return layout.InsetsTRBL(t, r, b, l) }
func DefaultValue() Value                       { return layout.DefaultValue() }
func FixedValue(v float64) Value                { return layout.FixedValue(v) }
func NoConstraint() Axis                        { return layout.NoConstraint() }
func AtLeast(min Value) Axis                    { return layout.AtLeast(min) }
func AtMost(max float64) Axis                   { return layout.AtMost(max) }
func Within(min Value, max float64) Axis        { return layout.Within(min, max) }
func NewConstraint(width, height Axis) Constraint { return layout.NewConstraint(width, height) }
func Unconstrained() Constraint                 { return layout.Unconstrained() }
func ConstraintAtLeast(min Value) Constraint    { return layout.ConstraintAtLeast(min) }
func ConstraintAtMost(max float64) Constraint   { return layout.ConstraintAtMost(max) }
func ConstraintWithin(min Value, max float64) Constraint {
	return layout.ConstraintWithin(min, max)
}
func DefaultSizing() Sizing                     { return layout.DefaultSizing() }
func FixedSizing(width, height float64) Sizing  { return layout.FixedSizing(width, height) }
func ThatFits(c Constraint) Sizing              { return layout.ThatFits(c) }
func Autolayout(c Constraint) Sizing            { return layout.Autolayout(c) }
