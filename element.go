package gui

import (
	"github.com/google/uuid"

	"github.com/grindlemire/go-gui/internal/attached"
)

// Visibility controls whether an element takes part in layout.
type Visibility uint8

const (
	// Visible elements are measured and arranged normally (default).
	Visible Visibility = iota
	// Collapsed elements measure as zero and skip arrangement.
	Collapsed
)

// String returns the lowercase name of the visibility.
func (v Visibility) String() string {
	if v == Collapsed {
		return "collapsed"
	}
	return "visible"
}

// Layouter is the container-specific half of the Measure/Arrange contract.
// An Element delegates to its Layouter after applying its own constraints.
type Layouter interface {
	// MeasureOverride returns the desired size of e's content given the
	// available size with e's margin and padding already removed.
	MeasureOverride(e *Element, available Size) Size

	// ArrangeOverride positions e's children inside content, which is
	// e's ContentRect for this pass.
	ArrangeOverride(e *Element, content Rect)
}

// Content is intrinsic leaf content, such as text, measured through an
// external capability.
type Content interface {
	MeasureContent(available Size) Size
}

// kinded is implemented by layouters that report a kind name in snapshots.
type kinded interface {
	Kind() string
}

// childAcceptor is implemented by layouters that restrict their children.
type childAcceptor interface {
	acceptChild(parent, child *Element) error
}

// Element is a node of the layout tree. It owns its children, holds the
// constraint properties and caches the geometry computed by the last pass.
type Element struct {
	id   uuid.UUID
	name string

	// Tree structure (single source of truth)
	children []*Element
	parent   *Element
	system   *System // non-owning; set while attached under a System root
	isRoot   bool

	// Layout strategy and intrinsic content
	layouter Layouter
	content  Content

	// Constraints
	margin     Edges
	padding    Edges
	width      float64 // 0 = unset
	height     float64
	minWidth   float64 // 0 = unconstrained
	minHeight  float64
	maxWidth   float64
	maxHeight  float64
	hAlign     Align
	vAlign     Align
	visibility Visibility

	props *attached.Store

	// Computed
	layout        LayoutResult
	actualSize    Size
	lastAvailable Size // input of the last Measure
	measured      bool
	invalid       bool

	// Tree notification
	onChildAdded func(*Element)
}

// New creates a detached Element with the given options.
// By default an Element stretches to fill the space its parent grants and
// lays out its children by stretching each over its ContentRect.
func New(opts ...Option) *Element {
	e := &Element{
		id:      uuid.New(),
		invalid: true,
	}
	e.props = attached.NewStore(func(string) { e.Invalidate() })
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's stable identifier.
func (e *Element) ID() uuid.UUID {
	return e.id
}

// Name returns the diagnostic name, or "" if none was set.
func (e *Element) Name() string {
	return e.name
}

// SetName sets the diagnostic name. It does not affect layout.
func (e *Element) SetName(name string) {
	e.name = name
}

// Layouter returns the element's layout strategy, or nil for the default.
func (e *Element) Layouter() Layouter {
	return e.layouter
}

// SetLayouter replaces the layout strategy and invalidates layout.
// On a root, which is never invalid, the children are invalidated instead.
func (e *Element) SetLayouter(l Layouter) {
	e.layouter = l
	if e.isRoot {
		for _, child := range e.children {
			child.invalid = true
		}
		e.system.markDirty()
		return
	}
	e.Invalidate()
}

// Content returns the intrinsic content, or nil.
func (e *Element) Content() Content {
	return e.content
}

// SetContent replaces the intrinsic content and invalidates layout.
func (e *Element) SetContent(c Content) {
	e.content = c
	e.Invalidate()
}

// System returns the GUI system this element is attached to, or nil.
func (e *Element) System() *System {
	return e.system
}

// IsRoot reports whether this element is a System's root.
func (e *Element) IsRoot() bool {
	return e.isRoot
}

// Kind returns the layout kind name used in snapshots and logs.
func (e *Element) Kind() string {
	if k, ok := e.layouter.(kinded); ok {
		return k.Kind()
	}
	if k, ok := e.content.(kinded); ok {
		return k.Kind()
	}
	return "panel"
}

// label returns the name, or the kind when unnamed.
func (e *Element) label() string {
	if e.name != "" {
		return e.name
	}
	return e.Kind()
}
