package layout

import (
	"strings"
	"testing"
)

// stubMeasurer is a call-counting Measurer for verifying which oracle
// a policy consults and with what inputs.
type stubMeasurer struct {
	fitSize        Size
	autolayoutSize Size

	fitCalls        int
	autolayoutCalls int

	lastBound     Size
	lastDirection Direction
}

func (m *stubMeasurer) SizeThatFits(bound Size) Size {
	m.fitCalls++
	m.lastBound = bound
	return m.fitSize
}

func (m *stubMeasurer) AutolayoutSize(bound Size, direction Direction) Size {
	m.autolayoutCalls++
	m.lastBound = bound
	m.lastDirection = direction
	return m.autolayoutSize
}

func defaultInfo() MeasureInfo {
	return MeasureInfo{
		SizeConstraint: Size{Width: 320, Height: 10000},
		DefaultSize:    Size{Width: 320, Height: 44},
		Direction:      Vertical,
	}
}

func TestSizing_Measure_Default(t *testing.T) {
	m := &stubMeasurer{}

	got := DefaultSizing().Measure(m, defaultInfo())
	want := Size{Width: 320, Height: 44}

	if got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
	if m.fitCalls != 0 || m.autolayoutCalls != 0 {
		t.Errorf("oracle calls = %d fit, %d autolayout, want none",
			m.fitCalls, m.autolayoutCalls)
	}
}

func TestSizing_Measure_Fixed(t *testing.T) {
	m := &stubMeasurer{}

	got := FixedSizing(200, 60).Measure(m, defaultInfo())
	want := Size{Width: 200, Height: 60}

	if got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
	if m.fitCalls != 0 || m.autolayoutCalls != 0 {
		t.Errorf("oracle calls = %d fit, %d autolayout, want none",
			m.fitCalls, m.autolayoutCalls)
	}
}

func TestSizing_Measure_ThatFits(t *testing.T) {
	m := &stubMeasurer{fitSize: Size{Width: 300, Height: 25}}
	info := defaultInfo()

	got := ThatFits(ConstraintAtLeast(DefaultValue())).Measure(m, info)

	// Both axes floor at their defaults: 300 -> 320, 25 -> 44.
	want := Size{Width: 320, Height: 44}
	if got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}

	if m.fitCalls != 1 {
		t.Errorf("fit calls = %d, want 1", m.fitCalls)
	}
	if m.autolayoutCalls != 0 {
		t.Errorf("autolayout calls = %d, want 0", m.autolayoutCalls)
	}
	if m.lastBound != info.SizeConstraint {
		t.Errorf("bound = %+v, want %+v", m.lastBound, info.SizeConstraint)
	}
}

func TestSizing_Measure_ThatFits_Unconstrained(t *testing.T) {
	m := &stubMeasurer{fitSize: Size{Width: 300, Height: 25}}

	got := ThatFits(Unconstrained()).Measure(m, defaultInfo())
	want := Size{Width: 300, Height: 25}

	if got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
}

func TestSizing_Measure_Autolayout(t *testing.T) {
	type tc struct {
		direction Direction
	}

	tests := map[string]tc{
		"vertical":   {direction: Vertical},
		"horizontal": {direction: Horizontal},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := &stubMeasurer{autolayoutSize: Size{Width: 280, Height: 52}}
			info := defaultInfo()
			info.Direction = tt.direction

			got := Autolayout(Unconstrained()).Measure(m, info)
			want := Size{Width: 280, Height: 52}

			if got != want {
				t.Errorf("Measure = %+v, want %+v", got, want)
			}
			if m.autolayoutCalls != 1 {
				t.Errorf("autolayout calls = %d, want 1", m.autolayoutCalls)
			}
			if m.fitCalls != 0 {
				t.Errorf("fit calls = %d, want 0", m.fitCalls)
			}
			if m.lastDirection != tt.direction {
				t.Errorf("direction = %v, want %v", m.lastDirection, tt.direction)
			}
			if m.lastBound != info.SizeConstraint {
				t.Errorf("bound = %+v, want %+v", m.lastBound, info.SizeConstraint)
			}
		})
	}
}

func TestSizing_Measure_RoundsUp(t *testing.T) {
	type tc struct {
		measured Size
		expected Size
	}

	tests := map[string]tc{
		"fractional rounds up": {
			measured: Size{Width: 10.2, Height: 5.0},
			expected: Size{Width: 11, Height: 5},
		},
		"barely fractional rounds up": {
			measured: Size{Width: 100.001, Height: 44.999},
			expected: Size{Width: 101, Height: 45},
		},
		"whole passes through": {
			measured: Size{Width: 320, Height: 44},
			expected: Size{Width: 320, Height: 44},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := &stubMeasurer{fitSize: tt.measured}

			got := ThatFits(Unconstrained()).Measure(m, defaultInfo())
			if got != tt.expected {
				t.Errorf("Measure = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSizing_Measure_ClampThenRound(t *testing.T) {
	// The ceiling is applied to the clamped value, so a fractional
	// floor still produces a whole-point result.
	m := &stubMeasurer{fitSize: Size{Width: 10, Height: 10}}

	sizing := ThatFits(NewConstraint(NoConstraint(), AtLeast(FixedValue(43.5))))

	got := sizing.Measure(m, defaultInfo())
	want := Size{Width: 10, Height: 44}

	if got != want {
		t.Errorf("Measure = %+v, want %+v", got, want)
	}
}

func TestSizing_Measure_PanicsBeyondSanityLimit(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for oversized measurement")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "listable:") {
			t.Errorf("panic = %v, want listable-prefixed message", r)
		}
	}()

	m := &stubMeasurer{fitSize: Size{Width: 320, Height: 50000}}
	ThatFits(Unconstrained()).Measure(m, defaultInfo())
}

func TestSizing_Measure_PanicsOnUnknownMode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown sizing mode")
		}
	}()

	bad := Sizing{Mode: SizingMode(99)}
	bad.Measure(&stubMeasurer{}, defaultInfo())
}
