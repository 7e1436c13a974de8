package layout

import "math"

// Size is a width/height pair in logical pixels. An infinite component
// means the dimension is unconstrained.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Unbounded returns a Size with both dimensions unconstrained.
func Unbounded() Size {
	return Size{Width: math.Inf(1), Height: math.Inf(1)}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Shrink removes the edges from the size, never going below zero.
// Infinite dimensions stay infinite.
func (s Size) Shrink(e Edges) Size {
	return Size{
		Width:  max(0, s.Width-e.Horizontal()),
		Height: max(0, s.Height-e.Vertical()),
	}
}

// Grow adds the edges to the size.
func (s Size) Grow(e Edges) Size {
	return Size{
		Width:  s.Width + e.Horizontal(),
		Height: s.Height + e.Vertical(),
	}
}

// Main returns the component along the direction's main axis.
func (s Size) Main(d Direction) float64 {
	if d == Column {
		return s.Height
	}
	return s.Width
}

// Cross returns the component along the direction's cross axis.
func (s Size) Cross(d Direction) float64 {
	if d == Column {
		return s.Width
	}
	return s.Height
}

// FromAxes builds a Size from main and cross components.
func FromAxes(d Direction, main, cross float64) Size {
	if d == Column {
		return Size{Width: cross, Height: main}
	}
	return Size{Width: main, Height: cross}
}

// IsInf reports whether v is positive infinity.
func IsInf(v float64) bool {
	return math.IsInf(v, 1)
}
