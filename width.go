// width.go re-exports width and position resolution types from
// internal/layout. Any changes to internal/layout types must be
// mirrored here.
package listable

import "github.com/eugenegrebnev/Listable/internal/layout"

// Width specifies how a list element's horizontal extent and placement
// are determined.
type Width = layout.Width

// WidthMode discriminates Width policies.
type WidthMode = layout.WidthMode

const (
	WidthDefault = layout.WidthDefault
	WidthFill    = layout.WidthFill
	WidthCustom  = layout.WidthCustom
)

// CustomWidth fully specifies an element's horizontal extent and
// placement.
type CustomWidth = layout.CustomWidth

// WidthConstraint resolves a concrete width from available space.
type WidthConstraint = layout.WidthConstraint

// WidthConstraintMode specifies how a WidthConstraint resolves.
type WidthConstraintMode = layout.WidthConstraintMode

const (
	WidthConstraintNone   = layout.WidthConstraintNone
	WidthConstraintFixed  = layout.WidthConstraintFixed
	WidthConstraintAtMost = layout.WidthConstraintAtMost
)

// HorizontalPadding is space reserved on either side of resolved
// content width.
type HorizontalPadding = layout.HorizontalPadding

// Alignment positions resolved content within the parent's width.
type Alignment = layout.Alignment

const (
	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight
)

// Position is a resolved horizontal placement.
type Position = layout.Position

// Constructors

func DefaultWidth() Width                    { return layout.DefaultWidth() }
func FillWidth() Width                       { return layout.FillWidth() }
func NewCustomWidth(custom CustomWidth) Width { return layout.NewCustomWidth(custom) }
func NoWidthConstraint() WidthConstraint     { return layout.NoWidthConstraint() }
func FixedWidth(value float64) WidthConstraint { return layout.FixedWidth(value) }
func AtMostWidth(max float64) WidthConstraint { return layout.AtMostWidth(max) }
