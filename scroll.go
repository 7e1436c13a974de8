package gui

import (
	"math"
)

// DefaultWheelStep is the number of logical pixels one wheel notch scrolls
// when neither the container nor its System configures a step.
const DefaultWheelStep = 40

// ScrollContainer shows a vertical window onto a single child that may be
// taller than the container. The child is measured with unconstrained height
// and shifted up by the scroll offset; its clip rectangle hides the overflow.
type ScrollContainer struct {
	// WheelStep overrides the System's wheel step when positive.
	WheelStep float64

	offset        float64
	pageHeight    float64
	contentHeight float64
	arranged      bool
}

// NewScrollContainer creates a vertical scroll container. Add at most one child.
func NewScrollContainer(opts ...Option) *Element {
	return New(append([]Option{WithLayouter(&ScrollContainer{})}, opts...)...)
}

// Kind implements kinded.
func (s *ScrollContainer) Kind() string {
	return "scroll"
}

func (s *ScrollContainer) acceptChild(parent, child *Element) error {
	if len(parent.children) > 0 {
		return NewError(ErrCodeOwnership, "scroll container %s already has child %s, cannot add %s",
			parent.label(), parent.children[0].label(), child.label())
	}
	return nil
}

// MeasureOverride implements Layouter.
func (s *ScrollContainer) MeasureOverride(e *Element, available Size) Size {
	if len(e.children) == 0 {
		return Size{}
	}
	desired := e.children[0].Measure(Size{Width: available.Width, Height: math.Inf(1)})
	if !math.IsInf(available.Height, 1) {
		desired.Height = min(desired.Height, available.Height)
	}
	return desired
}

// ArrangeOverride implements Layouter.
func (s *ScrollContainer) ArrangeOverride(e *Element, content Rect) {
	s.pageHeight = content.Height
	s.arranged = true
	if len(e.children) == 0 {
		s.contentHeight = 0
		s.offset = 0
		return
	}

	child := e.children[0]
	s.contentHeight = child.Measure(Size{Width: content.Width, Height: math.Inf(1)}).Height
	s.offset = s.clamp(s.offset)

	child.Arrange(Rect{
		X:      content.X,
		Y:      content.Y - s.offset,
		Width:  content.Width,
		Height: s.contentHeight,
	})
}

// maxOffset returns the largest valid offset from the last arrangement.
func (s *ScrollContainer) maxOffset() float64 {
	return max(0, s.contentHeight-s.pageHeight)
}

// clamp limits y to [0, maxOffset]. Before the first arrangement the
// content height is unknown and only the lower bound applies.
func (s *ScrollContainer) clamp(y float64) float64 {
	if math.IsNaN(y) || y < 0 {
		return 0
	}
	if !s.arranged {
		return y
	}
	return min(y, s.maxOffset())
}

// --- Scroll Query Methods ---

// scroller returns e's ScrollContainer, or nil.
func (e *Element) scroller() *ScrollContainer {
	s, _ := e.layouter.(*ScrollContainer)
	return s
}

// IsScrollable reports whether e is a scroll container.
func (e *Element) IsScrollable() bool {
	return e.scroller() != nil
}

// ScrollOffset returns the number of pixels scrolled down from the top.
func (e *Element) ScrollOffset() float64 {
	if s := e.scroller(); s != nil {
		return s.offset
	}
	return 0
}

// MaxScroll returns the largest offset allowed by the last arrangement.
func (e *Element) MaxScroll() float64 {
	if s := e.scroller(); s != nil {
		return s.maxOffset()
	}
	return 0
}

// PageHeight returns the visible height from the last arrangement.
func (e *Element) PageHeight() float64 {
	if s := e.scroller(); s != nil {
		return s.pageHeight
	}
	return 0
}

// ContentHeight returns the child's full height from the last arrangement.
func (e *Element) ContentHeight() float64 {
	if s := e.scroller(); s != nil {
		return s.contentHeight
	}
	return 0
}

// --- Scroll Control Methods ---

// ScrollTo sets the scroll offset directly, clamped to the valid range.
// Does nothing on elements that are not scroll containers.
func (e *Element) ScrollTo(y float64) {
	s := e.scroller()
	if s == nil {
		return
	}
	y = s.clamp(y)
	// Only update if changed
	if y != s.offset {
		s.offset = y
		e.Invalidate()
	}
}

// ScrollBy adjusts the scroll offset by dy pixels. Positive dy scrolls down.
func (e *Element) ScrollBy(dy float64) {
	e.ScrollTo(e.ScrollOffset() + dy)
}

// Wheel applies scroll-wheel input. Positive notches move toward the top of
// the content, following the platform wheel convention.
func (e *Element) Wheel(notches float64) {
	s := e.scroller()
	if s == nil {
		return
	}
	e.ScrollBy(-notches * e.wheelStep(s))
}

// ScrollToTop scrolls to the top of the content.
func (e *Element) ScrollToTop() {
	e.ScrollTo(0)
}

// ScrollToBottom scrolls to the bottom of the content.
func (e *Element) ScrollToBottom() {
	e.ScrollTo(e.MaxScroll())
}

// ScrollIntoView scrolls minimally so that descendant's bounding box is
// inside the visible page. Does nothing if descendant is not inside e.
func (e *Element) ScrollIntoView(descendant *Element) {
	s := e.scroller()
	if s == nil || descendant == nil || descendant == e || !e.isAncestorOf(descendant) {
		return
	}
	box := descendant.BoundingBox()
	content := e.ContentRect()

	// Child boxes are in absolute coordinates; convert to content-relative.
	top := box.Y - content.Y + s.offset
	switch {
	case top < s.offset:
		e.ScrollTo(top)
	case top+box.Height > s.offset+s.pageHeight:
		e.ScrollTo(top + box.Height - s.pageHeight)
	}
}

func (e *Element) wheelStep(s *ScrollContainer) float64 {
	if s.WheelStep > 0 {
		return s.WheelStep
	}
	if e.system != nil && e.system.wheelStep > 0 {
		return e.system.wheelStep
	}
	return DefaultWheelStep
}
