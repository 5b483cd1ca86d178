package layout

// Direction specifies the axis along which list content flows.
type Direction uint8

const (
	Vertical   Direction = iota // Items stacked top-to-bottom; width is the fixed axis
	Horizontal                  // Items laid out left-to-right; height is the fixed axis
)
