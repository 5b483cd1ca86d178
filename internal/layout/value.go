package layout

// ValueMode specifies how a Value is interpreted.
type ValueMode uint8

const (
	ValueDefault ValueMode = iota // Resolves to a caller-supplied default magnitude
	ValueFixed                    // Absolute points
)

// Value represents a constraint magnitude that is either fixed or
// deferred to a contextual default (for example "at least the default
// row height").
type Value struct {
	Amount float64
	Mode   ValueMode
}

// DefaultValue returns a Value that resolves to the contextual default.
func DefaultValue() Value {
	return Value{Mode: ValueDefault}
}

// FixedValue returns a Value representing an absolute number of points.
func FixedValue(v float64) Value {
	return Value{Amount: v, Mode: ValueFixed}
}

// Resolve computes the actual magnitude given the contextual fallback.
func (v Value) Resolve(fallback float64) float64 {
	switch v.Mode {
	case ValueFixed:
		return v.Amount
	case ValueDefault:
		return fallback
	default:
		return fallback
	}
}

// IsDefault returns true if this value resolves to the contextual default.
func (v Value) IsDefault() bool {
	return v.Mode == ValueDefault
}
