package layout

// Transform maps logical coordinates to physical screen coordinates.
// It is owned by the windowing collaborator and treated as a pure function.
type Transform interface {
	LogicalToPhysical(Rect) Rect
}

// TransformFunc adapts a plain function to the Transform interface.
type TransformFunc func(Rect) Rect

// LogicalToPhysical calls f(r).
func (f TransformFunc) LogicalToPhysical(r Rect) Rect {
	return f(r)
}

// Identity is the Transform that returns its input unchanged.
var Identity Transform = TransformFunc(func(r Rect) Rect { return r })

// ScaleTransform scales logical pixels by Scale and then translates by Offset,
// the usual mapping for a HiDPI window whose client area starts at Offset.
type ScaleTransform struct {
	Scale  float64
	Offset Point
}

// LogicalToPhysical applies the scale and offset to r.
func (t ScaleTransform) LogicalToPhysical(r Rect) Rect {
	return Rect{
		X:      r.X*t.Scale + t.Offset.X,
		Y:      r.Y*t.Scale + t.Offset.Y,
		Width:  r.Width * t.Scale,
		Height: r.Height * t.Scale,
	}
}

// PhysicalToLogical inverts LogicalToPhysical for a point.
func (t ScaleTransform) PhysicalToLogical(p Point) Point {
	if t.Scale == 0 {
		return p
	}
	return Point{X: (p.X - t.Offset.X) / t.Scale, Y: (p.Y - t.Offset.Y) / t.Scale}
}
