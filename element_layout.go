package gui

import (
	"github.com/grindlemire/go-gui/internal/layout"
)

// Measure computes the element's desired size, including margin and
// padding, for the given available size and stores it as ActualSize.
//
// Collapsed elements measure as zero. Otherwise margin and padding are
// removed from available, the result is capped by any maximum, and the
// layouter measures the content. Fixed, minimum and maximum sizes are then
// applied in that order before margin and padding are added back.
// Measure is pure with respect to the element's properties: repeated calls
// with the same input return the same size. A valid element measured again
// with its previous input returns the cached size without recursing.
func (e *Element) Measure(available Size) Size {
	if e.measured && !e.isRoot && available == e.lastAvailable && !e.NeedsArrange() {
		return e.actualSize
	}
	e.system.countMeasure()
	e.lastAvailable = available
	e.measured = true

	if e.visibility == Collapsed {
		e.actualSize = Size{}
		return Size{}
	}

	insets := e.margin.Add(e.padding)
	inner := available.Shrink(insets)
	if e.maxWidth > 0 {
		inner.Width = min(inner.Width, e.maxWidth)
	}
	if e.maxHeight > 0 {
		inner.Height = min(inner.Height, e.maxHeight)
	}

	desired := e.measureOverride(inner)

	if e.width > 0 {
		desired.Width = e.width
	}
	if e.height > 0 {
		desired.Height = e.height
	}
	if e.minWidth > 0 {
		desired.Width = max(desired.Width, e.minWidth)
	}
	if e.minHeight > 0 {
		desired.Height = max(desired.Height, e.minHeight)
	}
	if e.maxWidth > 0 {
		desired.Width = min(desired.Width, e.maxWidth)
	}
	if e.maxHeight > 0 {
		desired.Height = min(desired.Height, e.maxHeight)
	}

	e.actualSize = desired.Grow(insets)
	return e.actualSize
}

// Arrange assigns the element its final rectangle within r, the region
// granted by the parent, and recurses into children through the layouter.
// It does nothing unless the element or one of its ancestors is invalid.
func (e *Element) Arrange(r Rect) {
	if !e.NeedsArrange() {
		return
	}
	e.arrange(r)
}

// arrange performs Arrange unconditionally.
func (e *Element) arrange(r Rect) {
	e.system.countArrange()

	if e.visibility == Collapsed {
		e.actualSize = Size{}
		origin := Rect{X: r.X, Y: r.Y}
		e.layout = LayoutResult{BoundingBox: origin, ContentRect: origin}
		e.invalid = false
		return
	}

	size := e.Measure(r.Size())

	region := r.Inset(e.margin)
	box := layout.AlignBox(region, size.Shrink(e.margin), e.hAlign, e.vAlign)
	e.layout.BoundingBox = box
	e.layout.ContentRect = box.Inset(e.padding)
	e.layout.ClipRect = e.computeClip()

	e.arrangeOverride(e.layout.ContentRect)
	e.invalid = false
}

// computeClip intersects the bounding boxes of e and its ancestors, up to
// but excluding the root, and maps the result to physical coordinates.
func (e *Element) computeClip() Rect {
	clip := e.layout.BoundingBox
	for n := e.parent; n != nil && !n.isRoot; n = n.parent {
		clip = clip.Intersect(n.layout.BoundingBox)
	}
	return e.transform().LogicalToPhysical(clip)
}

// transform returns the System's logical-to-physical transform, or the
// identity for trees that are not attached to a System.
func (e *Element) transform() Transform {
	if e.system == nil || e.system.transform == nil {
		return layout.Identity
	}
	return e.system.transform
}

func (e *Element) measureOverride(available Size) Size {
	if e.layouter != nil {
		return e.layouter.MeasureOverride(e, available)
	}
	return panelLayout{}.MeasureOverride(e, available)
}

func (e *Element) arrangeOverride(content Rect) {
	if e.layouter != nil {
		e.layouter.ArrangeOverride(e, content)
		return
	}
	panelLayout{}.ArrangeOverride(e, content)
}

// panelLayout is the default layouter: intrinsic content if present,
// otherwise the largest child, and every child stretched over the
// content rectangle.
type panelLayout struct{}

func (panelLayout) MeasureOverride(e *Element, available Size) Size {
	var desired Size
	if e.content != nil {
		desired = e.content.MeasureContent(available)
	}
	for _, child := range e.children {
		s := child.Measure(available)
		desired.Width = max(desired.Width, s.Width)
		desired.Height = max(desired.Height, s.Height)
	}
	return desired
}

func (panelLayout) ArrangeOverride(e *Element, content Rect) {
	for _, child := range e.children {
		child.Arrange(content)
	}
}

// --- Computed geometry ---

// BoundingBox returns the box computed by the last Arrange: the granted
// region minus margin, aligned. Use for hit testing and bounds.
func (e *Element) BoundingBox() Rect {
	return e.layout.BoundingBox
}

// ContentRect returns BoundingBox minus padding, where children and
// intrinsic content are placed.
func (e *Element) ContentRect() Rect {
	return e.layout.ContentRect
}

// ClipRect returns the physical-space rectangle outside which this
// element's subtree must not render.
func (e *Element) ClipRect() Rect {
	return e.layout.ClipRect
}

// ActualSize returns the size recorded by the last Measure, including
// margin and padding.
func (e *Element) ActualSize() Size {
	return e.actualSize
}

// Layout returns all geometry computed by the last Arrange.
func (e *Element) Layout() LayoutResult {
	return e.layout
}
