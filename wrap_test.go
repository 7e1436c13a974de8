package gui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapPanel_WrapBoundary(t *testing.T) {
	a, b, c := New(WithSize(40, 20)), New(WithSize(40, 20)), New(WithSize(40, 20))
	wrap := NewWrapPanel(Row, WithChildren(a, b, c))

	if got := wrap.Measure(Sz(100, 100)); got != Sz(80, 40) {
		t.Errorf("Measure = %v, want %v", got, Sz(80, 40))
	}

	wrap.Arrange(NewRect(0, 0, 100, 100))

	want := []Rect{NewRect(0, 0, 40, 20), NewRect(40, 0, 40, 20), NewRect(0, 20, 40, 20)}
	got := []Rect{a.BoundingBox(), b.BoundingBox(), c.BoundingBox()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("child boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapPanel_Measure(t *testing.T) {
	type tc struct {
		direction Direction
		spacing   float64
		sizes     []Size
		available Size
		expected  Size
	}

	tests := map[string]tc{
		"single line": {
			direction: Row,
			sizes:     []Size{Sz(20, 10), Sz(30, 15)},
			available: Sz(100, 100),
			expected:  Sz(50, 15),
		},
		"exact fit stays on line": {
			direction: Row,
			sizes:     []Size{Sz(50, 10), Sz(50, 10)},
			available: Sz(100, 100),
			expected:  Sz(100, 10),
		},
		"line height is tallest child": {
			direction: Row,
			sizes:     []Size{Sz(60, 10), Sz(60, 30), Sz(10, 5)},
			available: Sz(100, 100),
			expected:  Sz(70, 40),
		},
		"oversized child gets its own line": {
			direction: Row,
			sizes:     []Size{Sz(150, 10), Sz(20, 10)},
			available: Sz(100, 100),
			expected:  Sz(150, 20),
		},
		"column wraps into columns": {
			direction: Column,
			sizes:     []Size{Sz(10, 40), Sz(20, 40), Sz(10, 40)},
			available: Sz(100, 100),
			expected:  Sz(30, 80),
		},
		"spacing": {
			direction: Row,
			spacing:   10,
			sizes:     []Size{Sz(40, 10), Sz(40, 10), Sz(40, 10)},
			available: Sz(100, 100),
			expected:  Sz(90, 30),
		},
		"no children": {
			direction: Row,
			available: Sz(100, 100),
			expected:  Sz(0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			wrap := NewWrapPanel(tt.direction)
			wrap.Layouter().(*WrapPanel).Spacing = tt.spacing
			for _, s := range tt.sizes {
				if err := wrap.AddChild(New(WithSize(s.Width, s.Height))); err != nil {
					t.Fatalf("AddChild: %v", err)
				}
			}

			if got := wrap.Measure(tt.available); got != tt.expected {
				t.Errorf("Measure(%v) = %v, want %v", tt.available, got, tt.expected)
			}
		})
	}
}

func TestWrapPanel_ArrangeColumn(t *testing.T) {
	a, b, c := New(WithSize(10, 40)), New(WithSize(20, 40)), New(WithSize(10, 40))
	wrap := NewWrapPanel(Column, WithChildren(a, b, c))

	wrap.Arrange(NewRect(5, 5, 100, 100))

	want := []Rect{NewRect(5, 5, 10, 40), NewRect(5, 45, 20, 40), NewRect(25, 5, 10, 40)}
	got := []Rect{a.BoundingBox(), b.BoundingBox(), c.BoundingBox()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("child boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapPanel_SkipsCollapsed(t *testing.T) {
	a := New(WithSize(60, 10))
	hidden := New(WithSize(60, 10), WithVisibility(Collapsed))
	b := New(WithSize(40, 10))
	wrap := NewWrapPanel(Row, WithChildren(a, hidden, b))

	wrap.Arrange(NewRect(0, 0, 100, 100))

	if got := b.BoundingBox(); got != NewRect(60, 0, 40, 10) {
		t.Errorf("BoundingBox after collapsed sibling = %v, want %v", got, NewRect(60, 0, 40, 10))
	}
}
