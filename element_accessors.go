package gui

// Setters invalidate layout only when the value actually changes.

// Margin returns the outer inset.
func (e *Element) Margin() Edges {
	return e.margin
}

// SetMargin sets the outer inset.
func (e *Element) SetMargin(m Edges) error {
	if !m.IsValid() {
		return NewError(ErrCodeInvalidArgument, "negative margin %+v on %s", m, e.label())
	}
	if m != e.margin {
		e.margin = m
		e.Invalidate()
	}
	return nil
}

// Padding returns the inner inset.
func (e *Element) Padding() Edges {
	return e.padding
}

// SetPadding sets the inner inset.
func (e *Element) SetPadding(p Edges) error {
	if !p.IsValid() {
		return NewError(ErrCodeInvalidArgument, "negative padding %+v on %s", p, e.label())
	}
	if p != e.padding {
		e.padding = p
		e.Invalidate()
	}
	return nil
}

// Width returns the fixed content width, 0 when unset.
func (e *Element) Width() float64 { return e.width }

// Height returns the fixed content height, 0 when unset.
func (e *Element) Height() float64 { return e.height }

// MinWidth returns the minimum content width, 0 when unconstrained.
func (e *Element) MinWidth() float64 { return e.minWidth }

// MinHeight returns the minimum content height, 0 when unconstrained.
func (e *Element) MinHeight() float64 { return e.minHeight }

// MaxWidth returns the maximum content width, 0 when unconstrained.
func (e *Element) MaxWidth() float64 { return e.maxWidth }

// MaxHeight returns the maximum content height, 0 when unconstrained.
func (e *Element) MaxHeight() float64 { return e.maxHeight }

// SetWidth sets the fixed content width. 0 clears it.
func (e *Element) SetWidth(v float64) error { return e.setDimension(&e.width, v, "width") }

// SetHeight sets the fixed content height. 0 clears it.
func (e *Element) SetHeight(v float64) error { return e.setDimension(&e.height, v, "height") }

// SetMinWidth sets the minimum content width. 0 clears it.
func (e *Element) SetMinWidth(v float64) error { return e.setDimension(&e.minWidth, v, "min width") }

// SetMinHeight sets the minimum content height. 0 clears it.
func (e *Element) SetMinHeight(v float64) error {
	return e.setDimension(&e.minHeight, v, "min height")
}

// SetMaxWidth sets the maximum content width. 0 clears it.
func (e *Element) SetMaxWidth(v float64) error { return e.setDimension(&e.maxWidth, v, "max width") }

// SetMaxHeight sets the maximum content height. 0 clears it.
func (e *Element) SetMaxHeight(v float64) error {
	return e.setDimension(&e.maxHeight, v, "max height")
}

func (e *Element) setDimension(field *float64, v float64, what string) error {
	if v < 0 {
		return NewError(ErrCodeInvalidArgument, "negative %s %v on %s", what, v, e.label())
	}
	if *field != v {
		*field = v
		e.Invalidate()
	}
	return nil
}

// HAlign returns the horizontal alignment.
func (e *Element) HAlign() Align {
	return e.hAlign
}

// VAlign returns the vertical alignment.
func (e *Element) VAlign() Align {
	return e.vAlign
}

// SetAlign sets horizontal and vertical alignment.
func (e *Element) SetAlign(h, v Align) {
	if h != e.hAlign || v != e.vAlign {
		e.hAlign = h
		e.vAlign = v
		e.Invalidate()
	}
}

// Visibility returns whether the element takes part in layout.
func (e *Element) Visibility() Visibility {
	return e.visibility
}

// SetVisibility sets the visibility.
func (e *Element) SetVisibility(v Visibility) {
	if v != e.visibility {
		e.visibility = v
		// A collapsed subtree keeps stale flags; re-mark the whole chain.
		e.invalid = false
		e.Invalidate()
	}
}
