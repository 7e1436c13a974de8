package gui

import (
	"github.com/grindlemire/go-gui/internal/layout"
)

// WrapPanel lays out children along a main axis and starts a new line
// whenever the next child would overflow the main-axis extent. A line
// always holds at least one child, so a child wider than the panel gets a
// line of its own.
type WrapPanel struct {
	Direction Direction
	// Spacing is inserted between adjacent children on a line and between lines.
	Spacing float64
}

// NewWrapPanel creates an element that flows its children along d.
func NewWrapPanel(d Direction, opts ...Option) *Element {
	return New(append([]Option{WithLayouter(&WrapPanel{Direction: d})}, opts...)...)
}

// Kind implements kinded.
func (w *WrapPanel) Kind() string {
	return "wrap"
}

// MeasureOverride implements Layouter.
func (w *WrapPanel) MeasureOverride(e *Element, available Size) Size {
	d := w.Direction
	limit := available.Main(d)

	var totalMain, totalCross float64
	var linePos, lineSize float64
	lines, onLine := 0, 0

	closeLine := func() {
		totalMain = max(totalMain, linePos)
		if lines > 0 {
			totalCross += w.Spacing
		}
		totalCross += lineSize
		lines++
		linePos, lineSize, onLine = 0, 0, 0
	}

	for _, child := range e.children {
		size := child.Measure(available)
		if child.visibility == Collapsed {
			continue
		}
		main, cross := size.Main(d), size.Cross(d)
		gap := 0.0
		if onLine > 0 {
			gap = w.Spacing
		}
		if onLine > 0 && linePos+gap+main > limit {
			closeLine()
			gap = 0
		}
		linePos += gap + main
		lineSize = max(lineSize, cross)
		onLine++
	}
	if onLine > 0 {
		closeLine()
	}

	return layout.FromAxes(d, totalMain, totalCross)
}

// ArrangeOverride implements Layouter.
func (w *WrapPanel) ArrangeOverride(e *Element, content Rect) {
	d := w.Direction
	limit := content.Size().Main(d)

	mainStart := content.X
	crossStart := content.Y
	if d == Column {
		mainStart, crossStart = content.Y, content.X
	}

	mainCursor, crossCursor := mainStart, crossStart
	var lineSize float64
	onLine := 0

	for _, child := range e.children {
		size := child.actualSize
		main, cross := size.Main(d), size.Cross(d)

		if child.visibility != Collapsed {
			gap := 0.0
			if onLine > 0 {
				gap = w.Spacing
			}
			if onLine > 0 && mainCursor-mainStart+gap+main > limit {
				mainCursor = mainStart
				crossCursor += lineSize + w.Spacing
				lineSize = 0
				onLine = 0
				gap = 0
			}
			mainCursor += gap
			lineSize = max(lineSize, cross)
			onLine++
		}

		origin := Point{X: mainCursor, Y: crossCursor}
		if d == Column {
			origin = Point{X: crossCursor, Y: mainCursor}
		}
		child.Arrange(layout.RectFrom(origin, size))
		mainCursor += main
	}
}
