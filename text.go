package gui

import (
	"github.com/grindlemire/go-gui/internal/textmeasure"
)

// TextMeasurer reports the extent of a string at a font size. It is the
// capability leaf elements use for intrinsic measurement; the engine does
// no text shaping of its own.
type TextMeasurer interface {
	Measure(s string, size float64) (width, height float64)
}

// BasicFace returns a TextMeasurer over a built-in 7x13 bitmap font.
func BasicFace() TextMeasurer {
	return textmeasure.Basic()
}

// CellMeasurer returns a TextMeasurer for a monospace grid of
// cellWidth x cellHeight pixels at font size refSize.
func CellMeasurer(cellWidth, cellHeight, refSize float64) TextMeasurer {
	return textmeasure.Cells{CellWidth: cellWidth, CellHeight: cellHeight, RefSize: refSize}
}

// Text is intrinsic text content.
type Text struct {
	text     string
	fontSize float64
	measurer TextMeasurer
}

// Kind implements kinded.
func (t *Text) Kind() string {
	return "text"
}

// MeasureContent returns the text extent, ignoring the available size.
func (t *Text) MeasureContent(Size) Size {
	if t.measurer == nil {
		return Size{}
	}
	w, h := t.measurer.Measure(t.text, t.fontSize)
	return Size{Width: w, Height: h}
}

// NewText creates a leaf element displaying s at fontSize.
func NewText(s string, m TextMeasurer, fontSize float64, opts ...Option) *Element {
	t := &Text{text: s, fontSize: fontSize, measurer: m}
	return New(append([]Option{WithContent(t)}, opts...)...)
}

// Text returns the text of a text element, or "" for other elements.
func (e *Element) Text() string {
	if t, ok := e.content.(*Text); ok {
		return t.text
	}
	return ""
}

// SetText updates the text of a text element and invalidates layout.
func (e *Element) SetText(s string) error {
	t, ok := e.content.(*Text)
	if !ok {
		return NewError(ErrCodeInvalidArgument, "%s has no text content", e.label())
	}
	if t.text != s {
		t.text = s
		e.Invalidate()
	}
	return nil
}

// SetFontSize updates the font size of a text element and invalidates layout.
func (e *Element) SetFontSize(size float64) error {
	t, ok := e.content.(*Text)
	if !ok {
		return NewError(ErrCodeInvalidArgument, "%s has no text content", e.label())
	}
	if size < 0 {
		return NewError(ErrCodeInvalidArgument, "negative font size %v", size)
	}
	if t.fontSize != size {
		t.fontSize = size
		e.Invalidate()
	}
	return nil
}
