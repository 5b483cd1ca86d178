package layout

import "fmt"

// Measurer reports the intrinsic size of a piece of content within a
// bounding size. It is injected by the presentation layer so the core
// stays independent of any concrete rendering technology.
type Measurer interface {
	// SizeThatFits returns the content's natural size within bound.
	SizeThatFits(bound Size) Size

	// AutolayoutSize returns the content's size under constraint-based
	// measurement. The direction's fixed axis (width when Vertical,
	// height when Horizontal) is held at the bound; the other axis
	// floats to the smallest size that fits the content.
	AutolayoutSize(bound Size, direction Direction) Size
}

// MeasureInfo carries the context of a single measurement pass.
type MeasureInfo struct {
	// SizeConstraint is the maximum bounding box offered by the layout,
	// for example the full row width with unbounded height.
	SizeConstraint Size

	// DefaultSize is the layout's baseline size, for example the
	// default row height.
	DefaultSize Size

	// Direction is the axis along which the list content flows.
	Direction Direction
}

// SizingMode discriminates Sizing policies.
type SizingMode uint8

const (
	SizingDefault    SizingMode = iota // Use the layout's default size
	SizingFixed                        // Use an explicit absolute size
	SizingThatFits                     // Measure via SizeThatFits
	SizingAutolayout                   // Measure via AutolayoutSize
)

// Sizing specifies how a list element's size is determined.
type Sizing struct {
	Mode       SizingMode
	FixedSize  Size       // SizingFixed only
	Constraint Constraint // SizingThatFits and SizingAutolayout only
}

// DefaultSizing returns the policy that uses the layout's default size.
func DefaultSizing() Sizing {
	return Sizing{Mode: SizingDefault}
}

// FixedSizing returns the policy that uses an explicit absolute size.
func FixedSizing(width, height float64) Sizing {
	return Sizing{Mode: SizingFixed, FixedSize: Size{Width: width, Height: height}}
}

// ThatFits returns the policy that measures content via SizeThatFits,
// bounded by the given constraint.
func ThatFits(c Constraint) Sizing {
	return Sizing{Mode: SizingThatFits, Constraint: c}
}

// Autolayout returns the policy that measures content via
// AutolayoutSize, bounded by the given constraint.
func Autolayout(c Constraint) Sizing {
	return Sizing{Mode: SizingAutolayout, Constraint: c}
}

// maxMeasurement is the sanity ceiling for a resolved dimension. A
// result beyond this indicates broken caller constraints (for example
// an unsatisfiable autolayout setup), not a recoverable condition.
const maxMeasurement = 10000.0

// Measure resolves the policy to a concrete size. The result is
// rounded up to whole points on each axis. SizingDefault and
// SizingFixed never consult the measurer.
//
// Measure panics if either resolved dimension exceeds 10,000 points;
// that is a programmer error in the caller's constraint setup.
func (s Sizing) Measure(m Measurer, info MeasureInfo) Size {
	size := s.resolve(m, info).Ceil()

	if size.Width > maxMeasurement || size.Height > maxMeasurement {
		panic(fmt.Sprintf(
			"listable: measured size of %.0f x %.0f is greater than the maximum of %.0f x %.0f; check your constraints",
			size.Width, size.Height, maxMeasurement, maxMeasurement,
		))
	}

	return size
}

func (s Sizing) resolve(m Measurer, info MeasureInfo) Size {
	switch s.Mode {
	case SizingDefault:
		return info.DefaultSize
	case SizingFixed:
		return s.FixedSize
	case SizingThatFits:
		measured := m.SizeThatFits(info.SizeConstraint)
		return s.Constraint.Clamp(measured, info.DefaultSize)
	case SizingAutolayout:
		measured := m.AutolayoutSize(info.SizeConstraint, info.Direction)
		return s.Constraint.Clamp(measured, info.DefaultSize)
	default:
		panic(fmt.Sprintf("listable: unknown sizing mode %d", s.Mode))
	}
}
