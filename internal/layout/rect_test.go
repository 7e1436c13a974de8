package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     float64
		expected bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"inside":            {x: 15, y: 15, expected: true},
		"top-left corner":   {x: 10, y: 10, expected: true},
		"right edge":        {x: 30, y: 15, expected: false},
		"bottom edge":       {x: 15, y: 30, expected: false},
		"fractional inside": {x: 29.5, y: 29.5, expected: true},
		"outside":           {x: 0, y: 0, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:     NewRect(0, 0, 100, 80),
			edges:    EdgeAll(10),
			expected: NewRect(10, 10, 80, 60),
		},
		"trbl": {
			rect:     NewRect(0, 0, 100, 100),
			edges:    EdgeTRBL(1, 2, 3, 4),
			expected: NewRect(4, 1, 94, 96),
		},
		"collapses to zero": {
			rect:     NewRect(0, 0, 10, 10),
			edges:    EdgeAll(8),
			expected: NewRect(8, 8, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.edges, got, tt.expected)
			}
		})
	}
}

func TestRect_Outset(t *testing.T) {
	r := NewRect(10, 10, 20, 20)
	got := r.Outset(EdgeSymmetric(2, 3))
	want := NewRect(7, 8, 26, 24)
	if got != want {
		t.Errorf("Outset() = %+v, want %+v", got, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping rects": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 10, 10),
		},
		"one inside other": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(20, 20, 30, 30),
			expected: NewRect(20, 20, 30, 30),
		},
		"adjacent horizontal (no overlap)": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(50, 50, 10, 10),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.b.Intersect(tt.a); got != tt.expected {
				t.Errorf("Intersect() not commutative: %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)
	if got, want := a.Union(b), NewRect(0, 0, 30, 15); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("Union() with empty = %+v, want %+v", got, b)
	}
}

func TestSize_ShrinkGrow(t *testing.T) {
	s := Sz(100, 50)
	e := EdgeTRBL(5, 10, 5, 10)

	if got, want := s.Shrink(e), Sz(80, 40); got != want {
		t.Errorf("Shrink() = %+v, want %+v", got, want)
	}
	if got, want := s.Shrink(e).Grow(e), s; got != want {
		t.Errorf("Grow(Shrink()) = %+v, want %+v", got, want)
	}
	if got := Sz(5, 5).Shrink(EdgeAll(10)); !got.IsZero() {
		t.Errorf("Shrink() past zero = %+v, want zero", got)
	}
	if got := Unbounded().Shrink(e); !IsInf(got.Width) || !IsInf(got.Height) {
		t.Errorf("Shrink() of unbounded = %+v, want unbounded", got)
	}
}

func TestSize_Axes(t *testing.T) {
	s := Sz(30, 70)
	if s.Main(Row) != 30 || s.Cross(Row) != 70 {
		t.Errorf("Row axes = (%v, %v), want (30, 70)", s.Main(Row), s.Cross(Row))
	}
	if s.Main(Column) != 70 || s.Cross(Column) != 30 {
		t.Errorf("Column axes = (%v, %v), want (70, 30)", s.Main(Column), s.Cross(Column))
	}
	if got := FromAxes(Column, 70, 30); got != s {
		t.Errorf("FromAxes(Column) = %+v, want %+v", got, s)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %v, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %v, want 4", e.Vertical())
	}
	if !(Edges{}).IsZero() {
		t.Error("zero Edges should report IsZero")
	}
	if EdgeAll(-1).IsValid() {
		t.Error("negative Edges should not be valid")
	}
	if got, want := e.Add(EdgeAll(1)), EdgeTRBL(2, 3, 4, 5); got != want {
		t.Errorf("Add() = %+v, want %+v", got, want)
	}
}

func TestPoint(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Add(Pt(1, 1)); got != Pt(4, 5) {
		t.Errorf("Add() = %+v, want (4, 5)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub() = %+v, want (2, 3)", got)
	}
	if !p.In(NewRect(0, 0, 10, 10)) {
		t.Error("point should be inside rect")
	}
}
