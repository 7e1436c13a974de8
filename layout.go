// layout.go re-exports geometry types from internal/layout and
// attached-property types from internal/attached.
// Any changes to those types must be mirrored here.
package gui

import (
	"github.com/grindlemire/go-gui/internal/attached"
	"github.com/grindlemire/go-gui/internal/layout"
)

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Align specifies how an element's box is placed in the region its parent grants.
type Align = layout.Align

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Edges represents insets on four sides (top, right, bottom, left).
type Edges = layout.Edges

// LayoutResult holds the geometry computed for an element by Arrange.
type LayoutResult = layout.Layout

// Transform maps logical rectangles to physical screen coordinates.
type Transform = layout.Transform

// TransformFunc adapts a function to Transform.
type TransformFunc = layout.TransformFunc

// ScaleTransform scales and offsets logical coordinates.
type ScaleTransform = layout.ScaleTransform

// IdentityTransform returns rectangles unchanged.
var IdentityTransform = layout.Identity

// PropertyStore holds an element's attached properties.
type PropertyStore = attached.Store

// Key is a typed accessor for an attached property.
type Key[T any] = attached.Key[T]

// NewKey declares an attached property named name whose absent value reads as def.
func NewKey[T any](name string, def T) Key[T] {
	return attached.NewKey(name, def)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Sz creates a Size.
func Sz(w, h float64) Size {
	return layout.Sz(w, h)
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return layout.Pt(x, y)
}

// Unbounded returns a Size with both dimensions unconstrained.
func Unbounded() Size {
	return layout.Unbounded()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
