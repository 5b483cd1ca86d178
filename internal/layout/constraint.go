package layout

import "math"

// AxisMode specifies how an Axis bounds a measured value.
type AxisMode uint8

const (
	AxisNone    AxisMode = iota // Pass the measured value through unchanged
	AxisAtLeast                 // Floor the measured value
	AxisAtMost                  // Ceiling the measured value
	AxisWithin                  // Apply both floor and ceiling
)

// Axis bounds a measured value along a single dimension. The floor may
// be a Value deferred to a contextual default; the ceiling is always a
// fixed magnitude.
type Axis struct {
	Mode AxisMode
	Min  Value
	Max  float64
}

// NoConstraint returns an Axis that passes measured values through.
func NoConstraint() Axis {
	return Axis{Mode: AxisNone}
}

// AtLeast returns an Axis that floors measured values at min.
func AtLeast(min Value) Axis {
	return Axis{Mode: AxisAtLeast, Min: min}
}

// AtMost returns an Axis that ceilings measured values at max.
func AtMost(max float64) Axis {
	return Axis{Mode: AxisAtMost, Max: max}
}

// Within returns an Axis that bounds measured values to [min, max].
func Within(min Value, max float64) Axis {
	return Axis{Mode: AxisWithin, Min: min, Max: max}
}

// Clamp bounds value, resolving a default floor against fallback.
// If a Within floor exceeds its ceiling after resolution, the floor
// wins (matches CSS behavior).
func (a Axis) Clamp(value, fallback float64) float64 {
	switch a.Mode {
	case AxisNone:
		return value
	case AxisAtLeast:
		return math.Max(a.Min.Resolve(fallback), value)
	case AxisAtMost:
		return math.Min(a.Max, value)
	case AxisWithin:
		return math.Max(a.Min.Resolve(fallback), math.Min(a.Max, value))
	default:
		return value
	}
}

// Constraint bounds a measured size, each axis independently.
type Constraint struct {
	Width, Height Axis
}

// NewConstraint creates a Constraint with the given per-axis bounds.
func NewConstraint(width, height Axis) Constraint {
	return Constraint{Width: width, Height: height}
}

// Unconstrained returns a Constraint that passes measured sizes through.
func Unconstrained() Constraint {
	return Constraint{Width: NoConstraint(), Height: NoConstraint()}
}

// ConstraintAtLeast bounds both axes with the same floor.
func ConstraintAtLeast(min Value) Constraint {
	return Constraint{Width: AtLeast(min), Height: AtLeast(min)}
}

// ConstraintAtMost bounds both axes with the same ceiling.
func ConstraintAtMost(max float64) Constraint {
	return Constraint{Width: AtMost(max), Height: AtMost(max)}
}

// ConstraintWithin bounds both axes to the same [min, max] range.
func ConstraintWithin(min Value, max float64) Constraint {
	return Constraint{Width: Within(min, max), Height: Within(min, max)}
}

// Clamp bounds size on each axis, resolving default floors against
// the corresponding axis of defaultSize.
func (c Constraint) Clamp(size, defaultSize Size) Size {
	return Size{
		Width:  c.Width.Clamp(size.Width, defaultSize.Width),
		Height: c.Height.Clamp(size.Height, defaultSize.Height),
	}
}
