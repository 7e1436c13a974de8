package gui

// Option configures an Element at construction time.
//
// Options that can fail (negative sizes, ownership conflicts in
// WithChildren) panic with the *Error the corresponding setter returns;
// use the setters directly when the values are not known to be valid.
type Option func(*Element)

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// WithName sets the diagnostic name.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed content width in logical pixels.
func WithWidth(px float64) Option {
	return func(e *Element) {
		must(e.SetWidth(px))
	}
}

// WithHeight sets a fixed content height in logical pixels.
func WithHeight(px float64) Option {
	return func(e *Element) {
		must(e.SetHeight(px))
	}
}

// WithSize sets both fixed width and height.
func WithSize(width, height float64) Option {
	return func(e *Element) {
		must(e.SetWidth(width))
		must(e.SetHeight(height))
	}
}

// WithMinWidth sets the minimum content width.
func WithMinWidth(px float64) Option {
	return func(e *Element) {
		must(e.SetMinWidth(px))
	}
}

// WithMinHeight sets the minimum content height.
func WithMinHeight(px float64) Option {
	return func(e *Element) {
		must(e.SetMinHeight(px))
	}
}

// WithMaxWidth sets the maximum content width.
func WithMaxWidth(px float64) Option {
	return func(e *Element) {
		must(e.SetMaxWidth(px))
	}
}

// WithMaxHeight sets the maximum content height.
func WithMaxHeight(px float64) Option {
	return func(e *Element) {
		must(e.SetMaxHeight(px))
	}
}

// --- Spacing Options ---

// WithMargin sets the outer inset.
func WithMargin(m Edges) Option {
	return func(e *Element) {
		must(e.SetMargin(m))
	}
}

// WithPadding sets the inner inset.
func WithPadding(p Edges) Option {
	return func(e *Element) {
		must(e.SetPadding(p))
	}
}

// --- Placement Options ---

// WithAlign sets horizontal and vertical alignment.
func WithAlign(h, v Align) Option {
	return func(e *Element) {
		e.SetAlign(h, v)
	}
}

// WithHAlign sets horizontal alignment.
func WithHAlign(h Align) Option {
	return func(e *Element) {
		e.SetAlign(h, e.vAlign)
	}
}

// WithVAlign sets vertical alignment.
func WithVAlign(v Align) Option {
	return func(e *Element) {
		e.SetAlign(e.hAlign, v)
	}
}

// WithVisibility sets the initial visibility.
func WithVisibility(v Visibility) Option {
	return func(e *Element) {
		e.SetVisibility(v)
	}
}

// --- Structure Options ---

// WithLayouter sets the layout strategy.
func WithLayouter(l Layouter) Option {
	return func(e *Element) {
		e.SetLayouter(l)
	}
}

// WithContent sets the intrinsic content.
func WithContent(c Content) Option {
	return func(e *Element) {
		e.SetContent(c)
	}
}

// WithChildren appends children. Options run in order, so place it after
// WithLayouter when the layouter restricts its children.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		must(e.AddChild(children...))
	}
}

// WithProperty sets an attached property.
func WithProperty[T any](k Key[T], v T) Option {
	return func(e *Element) {
		SetProperty(e, k, v)
	}
}
