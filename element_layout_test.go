package gui

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElement_Measure(t *testing.T) {
	type tc struct {
		element   func() *Element
		available Size
		expected  Size
	}

	tests := map[string]tc{
		"empty element": {
			element:   func() *Element { return New() },
			available: Sz(100, 100),
			expected:  Sz(0, 0),
		},
		"fixed size": {
			element:   func() *Element { return New(WithSize(50, 30)) },
			available: Sz(100, 100),
			expected:  Sz(50, 30),
		},
		"margin and padding added back": {
			element: func() *Element {
				return New(WithSize(50, 30), WithMargin(EdgeAll(5)), WithPadding(EdgeAll(2)))
			},
			available: Sz(100, 100),
			expected:  Sz(64, 44),
		},
		"min raises": {
			element:   func() *Element { return New(WithMinWidth(40), WithMinHeight(10)) },
			available: Sz(100, 100),
			expected:  Sz(40, 10),
		},
		"max lowers fixed": {
			element:   func() *Element { return New(WithWidth(80), WithMaxWidth(60), WithHeight(10)) },
			available: Sz(100, 100),
			expected:  Sz(60, 10),
		},
		"fixed exceeds available": {
			element:   func() *Element { return New(WithSize(500, 500)) },
			available: Sz(100, 100),
			expected:  Sz(500, 500),
		},
		"collapsed": {
			element: func() *Element {
				return New(WithSize(50, 30), WithMargin(EdgeAll(5)), WithVisibility(Collapsed))
			},
			available: Sz(100, 100),
			expected:  Sz(0, 0),
		},
		"text content": {
			element:   func() *Element { return NewText("hello", CellMeasurer(8, 16, 16), 16) },
			available: Sz(10, 10),
			expected:  Sz(40, 16),
		},
		"text with padding": {
			element: func() *Element {
				return NewText("ab\ncd", CellMeasurer(8, 16, 16), 32, WithPadding(EdgeAll(1)))
			},
			available: Unbounded(),
			expected:  Sz(34, 66),
		},
		"largest child": {
			element: func() *Element {
				return New(WithChildren(New(WithSize(10, 40)), New(WithSize(30, 5))))
			},
			available: Sz(100, 100),
			expected:  Sz(30, 40),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := tt.element()
			got := e.Measure(tt.available)
			if got != tt.expected {
				t.Errorf("Measure(%v) = %v, want %v", tt.available, got, tt.expected)
			}
			if e.ActualSize() != got {
				t.Errorf("ActualSize() = %v, want %v", e.ActualSize(), got)
			}
		})
	}
}

func TestElement_Measure_MaxClampsDelegateInput(t *testing.T) {
	spy := &spyLayouter{}
	e := New(WithLayouter(spy), WithMaxWidth(50), WithPadding(EdgeAll(5)))

	e.Measure(Sz(200, 100))

	if len(spy.measures) != 1 {
		t.Fatalf("MeasureOverride calls = %d, want 1", len(spy.measures))
	}
	if want := Sz(50, 90); spy.measures[0] != want {
		t.Errorf("delegate available = %v, want %v", spy.measures[0], want)
	}
}

func TestElement_Measure_Idempotent(t *testing.T) {
	tree := func() *Element {
		fill := New(WithFill(1), WithMinHeight(12))
		return NewStacker(Column,
			WithPadding(EdgeAll(4)),
			WithChildren(
				NewText("title", CellMeasurer(8, 16, 16), 16),
				NewWrapPanel(Row, WithChildren(New(WithSize(40, 10)), New(WithSize(40, 10)), New(WithSize(40, 10)))),
				fill,
			),
		)
	}

	sizes := []Size{Sz(300, 200), Sz(0, 0), Unbounded(), Sz(math.Inf(1), 50)}
	for _, available := range sizes {
		e := tree()
		first := e.Measure(available)
		second := e.Measure(available)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Measure(%v) not idempotent (-first +second):\n%s", available, diff)
		}
		if e.ActualSize() != second {
			t.Errorf("ActualSize() = %v, want %v", e.ActualSize(), second)
		}
	}
}

func TestElement_Arrange_StretchFillsRegion(t *testing.T) {
	type tc struct {
		margin      Edges
		padding     Edges
		region      Rect
		boundingBox Rect
		contentRect Rect
	}

	tests := map[string]tc{
		"no insets": {
			region:      NewRect(0, 0, 100, 50),
			boundingBox: NewRect(0, 0, 100, 50),
			contentRect: NewRect(0, 0, 100, 50),
		},
		"margin and padding": {
			margin:      EdgeAll(5),
			padding:     EdgeAll(3),
			region:      NewRect(10, 20, 100, 50),
			boundingBox: NewRect(15, 25, 90, 40),
			contentRect: NewRect(18, 28, 84, 34),
		},
		"uneven margin": {
			margin:      EdgeTRBL(1, 2, 3, 4),
			region:      NewRect(0, 0, 100, 50),
			boundingBox: NewRect(4, 1, 94, 46),
			contentRect: NewRect(4, 1, 94, 46),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(WithSize(10, 10), WithMargin(tt.margin), WithPadding(tt.padding))
			e.Arrange(tt.region)

			if diff := cmp.Diff(tt.boundingBox, e.BoundingBox()); diff != "" {
				t.Errorf("BoundingBox mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.contentRect, e.ContentRect()); diff != "" {
				t.Errorf("ContentRect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElement_Arrange_Alignment(t *testing.T) {
	type tc struct {
		h, v     Align
		margin   Edges
		expected Rect
	}

	tests := map[string]tc{
		"start": {
			h:        AlignStart,
			v:        AlignStart,
			expected: NewRect(0, 0, 20, 10),
		},
		"center": {
			h:        AlignCenter,
			v:        AlignCenter,
			expected: NewRect(40, 20, 20, 10),
		},
		"end": {
			h:        AlignEnd,
			v:        AlignEnd,
			expected: NewRect(80, 40, 20, 10),
		},
		"center with margin": {
			h:        AlignCenter,
			v:        AlignCenter,
			margin:   EdgeAll(5),
			expected: NewRect(40, 20, 20, 10),
		},
		"stretch horizontally only": {
			h:        AlignStretch,
			v:        AlignEnd,
			expected: NewRect(0, 40, 100, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(WithSize(20, 10), WithAlign(tt.h, tt.v), WithMargin(tt.margin))
			e.Arrange(NewRect(0, 0, 100, 50))

			if diff := cmp.Diff(tt.expected, e.BoundingBox()); diff != "" {
				t.Errorf("BoundingBox mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElement_Arrange_SkipsValidElements(t *testing.T) {
	spy := &spyLayouter{}
	e := New(WithLayouter(spy))

	e.Arrange(NewRect(0, 0, 10, 10))
	e.Arrange(NewRect(0, 0, 10, 10))

	if len(spy.arranges) != 1 {
		t.Errorf("ArrangeOverride calls = %d, want 1", len(spy.arranges))
	}
	if e.IsInvalid() {
		t.Error("Arrange should clear the invalid flag")
	}

	e.Invalidate()
	e.Arrange(NewRect(0, 0, 20, 20))
	if len(spy.arranges) != 2 {
		t.Errorf("ArrangeOverride calls after Invalidate = %d, want 2", len(spy.arranges))
	}
}

func TestElement_Arrange_Collapsed(t *testing.T) {
	child := New()
	e := New(WithVisibility(Collapsed), WithChildren(child))

	e.Arrange(NewRect(10, 20, 100, 50))

	if diff := cmp.Diff(NewRect(10, 20, 0, 0), e.BoundingBox()); diff != "" {
		t.Errorf("BoundingBox mismatch (-want +got):\n%s", diff)
	}
	if e.IsInvalid() {
		t.Error("collapsed Arrange should clear the element's flag")
	}
	if !child.IsInvalid() {
		t.Error("children of a collapsed element should not be arranged")
	}
}

func TestElement_ClipRect_Detached(t *testing.T) {
	inner := New(WithPosition(50, 50), WithExplicitSize(100, 100))
	outer := NewFreeCanvas(WithMargin(EdgeAll(10)), WithChildren(inner))
	top := New(WithChildren(outer))

	top.Arrange(NewRect(0, 0, 100, 100))

	// With no System, every ancestor takes part and the transform is the identity.
	if diff := cmp.Diff(NewRect(60, 60, 30, 30), inner.ClipRect()); diff != "" {
		t.Errorf("ClipRect mismatch (-want +got):\n%s", diff)
	}
}
