package gui

import (
	"github.com/grindlemire/go-gui/internal/layout"
)

// FillWeight is the Stacker's attached fill weight, in [0, 1]. Children with
// weight 0 are sized to content; children with a positive weight share the
// main-axis space left over by the content-sized children.
var FillWeight = NewKey("Stacker.Fill", 0.0)

// Stacker lays out children in a single row or column.
//
// Measurement is two-pass. Content-sized children are measured first, each
// against the main-axis budget left by the ones before it. Each fill child
// is then measured against remaining×weight on its own, without normalizing
// by the other fill weights, so two weight-1 children are each offered the
// whole remainder.
//
// Arrangement gives each fill child, in order, remaining/fillLeft×weight of
// the leftover space, where remaining and fillLeft shrink as fill children
// are placed. Every child is stretched across the cross axis.
type Stacker struct {
	Direction Direction
	// Spacing is inserted between adjacent visible children.
	Spacing float64
}

// NewStacker creates an element that stacks its children along d.
func NewStacker(d Direction, opts ...Option) *Element {
	return New(append([]Option{WithLayouter(&Stacker{Direction: d})}, opts...)...)
}

// SetFill sets child's fill weight.
func SetFill(child *Element, weight float64) error {
	if child == nil {
		return NewError(ErrCodeInvalidArgument, "cannot set fill weight on nil element")
	}
	if weight < 0 || weight > 1 {
		return NewError(ErrCodeInvalidArgument, "fill weight %v outside [0, 1]", weight)
	}
	SetProperty(child, FillWeight, weight)
	return nil
}

// WithFill sets the fill weight at construction time.
func WithFill(weight float64) Option {
	return func(e *Element) {
		must(SetFill(e, weight))
	}
}

// Kind implements kinded.
func (s *Stacker) Kind() string {
	return "stack"
}

// MeasureOverride implements Layouter.
func (s *Stacker) MeasureOverride(e *Element, available Size) Size {
	d := s.Direction
	cross := available.Cross(d)
	remaining := max(0, available.Main(d)-s.spacing(e))

	var totalMain, maxCross float64
	var fills []*Element
	for _, child := range e.children {
		if GetProperty(child, FillWeight) > 0 {
			fills = append(fills, child)
			continue
		}
		size := child.Measure(layout.FromAxes(d, remaining, cross))
		remaining = max(0, remaining-size.Main(d))
		totalMain += size.Main(d)
		maxCross = max(maxCross, size.Cross(d))
	}

	for _, child := range fills {
		segment := remaining * GetProperty(child, FillWeight)
		size := child.Measure(layout.FromAxes(d, segment, cross))
		totalMain += size.Main(d)
		maxCross = max(maxCross, size.Cross(d))
	}

	return layout.FromAxes(d, totalMain+s.spacing(e), maxCross)
}

// ArrangeOverride implements Layouter.
func (s *Stacker) ArrangeOverride(e *Element, content Rect) {
	d := s.Direction
	totalSpace := content.Size().Main(d)
	crossSize := content.Size().Cross(d)

	totalFixed := s.spacing(e)
	fillLeft := 0
	for _, child := range e.children {
		if isFill(child) {
			fillLeft++
			continue
		}
		totalFixed += child.actualSize.Main(d)
	}

	remaining := totalSpace - totalFixed
	distribute := remaining > 0

	mainStart := content.X
	crossStart := content.Y
	if d == Column {
		mainStart, crossStart = content.Y, content.X
	}

	cursor := mainStart
	first := true
	for _, child := range e.children {
		main := child.actualSize.Main(d)
		if isFill(child) && distribute {
			main = remaining / float64(fillLeft) * GetProperty(child, FillWeight)
			remaining -= main
			fillLeft--
		}
		if child.visibility != Collapsed {
			if !first {
				cursor += s.Spacing
			}
			first = false
		}

		slot := layout.FromAxes(d, main, crossSize)
		origin := Point{X: cursor, Y: crossStart}
		if d == Column {
			origin = Point{X: crossStart, Y: cursor}
		}
		child.Arrange(layout.RectFrom(origin, slot))
		cursor += main
	}
}

// spacing returns the total spacing between e's visible children.
func (s *Stacker) spacing(e *Element) float64 {
	if s.Spacing <= 0 {
		return 0
	}
	n := visibleCount(e)
	if n < 2 {
		return 0
	}
	return s.Spacing * float64(n-1)
}

// isFill reports whether child takes a share of the leftover space.
// Collapsed children never do.
func isFill(child *Element) bool {
	return child.visibility != Collapsed && GetProperty(child, FillWeight) > 0
}

func visibleCount(e *Element) int {
	n := 0
	for _, child := range e.children {
		if child.visibility != Collapsed {
			n++
		}
	}
	return n
}
