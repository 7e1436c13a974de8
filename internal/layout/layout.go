package layout

// Layout holds the geometry computed for an element by the last Arrange.
type Layout struct {
	// BoundingBox is the space allocated by the parent after removing this
	// element's margin and applying alignment. Use for hit testing and bounds.
	BoundingBox Rect

	// ContentRect is BoundingBox minus padding, the area where children or
	// intrinsic content are placed.
	ContentRect Rect

	// ClipRect is the intersection of this element's BoundingBox with every
	// ancestor's BoundingBox (excluding the root), in physical coordinates.
	ClipRect Rect
}
