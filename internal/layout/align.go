package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	if d == Column {
		return "column"
	}
	return "row"
}

// Align specifies how a box is positioned within a region along one axis.
type Align uint8

const (
	AlignStretch Align = iota // Fill the whole region (default)
	AlignStart                // Size to content at the start of the region
	AlignCenter               // Size to content, centered
	AlignEnd                  // Size to content at the end of the region
)

// String returns the lowercase name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "stretch"
	}
}

// AlignSpan places a span of the given size inside [start, start+avail).
// Stretch fills the whole span; the other modes size to content, capped
// at the available extent.
func AlignSpan(a Align, start, avail, size float64) (pos, extent float64) {
	if a == AlignStretch {
		return start, avail
	}
	extent = min(size, avail)
	switch a {
	case AlignCenter:
		return start + (avail-extent)/2, extent
	case AlignEnd:
		return start + avail - extent, extent
	default:
		return start, extent
	}
}

// AlignBox places a box of the given content size inside region using
// independent horizontal and vertical alignment.
func AlignBox(region Rect, content Size, h, v Align) Rect {
	x, w := AlignSpan(h, region.X, region.Width, content.Width)
	y, ht := AlignSpan(v, region.Y, region.Height, content.Height)
	return Rect{X: x, Y: y, Width: w, Height: ht}
}
