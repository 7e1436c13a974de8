package gui

// AnchorRect locates a child against its parent's content rectangle in
// fractions of the parent's size. Left and Top give the anchor point.
// Right and Bottom, when positive, give the child's width and height as
// fractions of the parent's; when zero the child keeps its measured size.
type AnchorRect struct {
	Left, Top, Right, Bottom float64
}

// AnchorStretch anchors a child over the parent's whole content rectangle.
var AnchorStretch = AnchorRect{Left: 0, Top: 0, Right: 1, Bottom: 1}

// Attached properties read by FreeCanvas.
var (
	// Anchor is the child's anchor rectangle.
	Anchor = NewKey("Canvas.Anchor", AnchorRect{})
	// AnchorAlign is the point on the child's own box, in fractions of its
	// size, that attaches to the anchor point. (0.5, 0.5) centers the child.
	AnchorAlign = NewKey("Canvas.AnchorAlign", Point{})
	// Position is a pixel offset added after anchoring.
	Position = NewKey("Canvas.Position", Point{})
	// ExplicitSize is the size used instead of measuring when AutoSize is set.
	ExplicitSize = NewKey("Canvas.Size", Size{})
	// AutoSize makes the canvas use ExplicitSize rather than measuring the child.
	AutoSize = NewKey("Canvas.AutoSize", false)
)

// FreeCanvas positions each child independently by fractional anchors
// against its content rectangle. The canvas measures as the largest of its
// children; anchors never make it grow.
//
// A positive Right or Bottom anchor sets the child's extent as a fraction of
// the content rectangle. The alignment fraction is applied to that final
// extent, so a stretched child centered with AnchorAlign(0.5, 0.5) is
// centered on its anchor point at its stretched size, not its measured one.
type FreeCanvas struct{}

// NewFreeCanvas creates an anchored free-form container.
func NewFreeCanvas(opts ...Option) *Element {
	return New(append([]Option{WithLayouter(FreeCanvas{})}, opts...)...)
}

// WithAnchor sets the anchor rectangle.
func WithAnchor(a AnchorRect) Option {
	return WithProperty(Anchor, a)
}

// WithAnchorAlign sets the attach point on the child's own box.
func WithAnchorAlign(x, y float64) Option {
	return WithProperty(AnchorAlign, Point{X: x, Y: y})
}

// WithPosition sets the pixel offset applied after anchoring.
func WithPosition(x, y float64) Option {
	return WithProperty(Position, Point{X: x, Y: y})
}

// WithExplicitSize stores an explicit size and turns AutoSize on.
func WithExplicitSize(w, h float64) Option {
	return func(e *Element) {
		SetProperty(e, ExplicitSize, Size{Width: w, Height: h})
		SetProperty(e, AutoSize, true)
	}
}

// Kind implements kinded.
func (FreeCanvas) Kind() string {
	return "canvas"
}

// MeasureOverride implements Layouter.
func (FreeCanvas) MeasureOverride(e *Element, available Size) Size {
	var desired Size
	for _, child := range e.children {
		s := canvasChildSize(child, available)
		desired.Width = max(desired.Width, s.Width)
		desired.Height = max(desired.Height, s.Height)
	}
	return desired
}

// ArrangeOverride implements Layouter.
func (FreeCanvas) ArrangeOverride(e *Element, content Rect) {
	for _, child := range e.children {
		anchor := GetProperty(child, Anchor)
		align := GetProperty(child, AnchorAlign)
		offset := GetProperty(child, Position)

		size := child.actualSize
		if GetProperty(child, AutoSize) {
			size = GetProperty(child, ExplicitSize)
		}
		if anchor.Right > 0 {
			size.Width = content.Width * anchor.Right
		}
		if anchor.Bottom > 0 {
			size.Height = content.Height * anchor.Bottom
		}

		x := content.X + content.Width*anchor.Left - size.Width*align.X + offset.X
		y := content.Y + content.Height*anchor.Top - size.Height*align.Y + offset.Y
		child.Arrange(Rect{X: x, Y: y, Width: size.Width, Height: size.Height})
	}
}

// canvasChildSize is the stored explicit size under AutoSize, otherwise a
// full Measure.
func canvasChildSize(child *Element, available Size) Size {
	if GetProperty(child, AutoSize) {
		if child.visibility == Collapsed {
			return Size{}
		}
		return GetProperty(child, ExplicitSize)
	}
	return child.Measure(available)
}
