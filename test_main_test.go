package gui

import (
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-gui/internal/debug"
)

func TestMain(m *testing.M) {
	debug.SetLogger(log.New(io.Discard))
	os.Exit(m.Run())
}

// newTestSystem creates a System with an identity transform and the given viewport.
func newTestSystem(t *testing.T, width, height float64) *System {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Viewport.Width = width
	cfg.Viewport.Height = height
	sys, err := NewSystem(cfg)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return sys
}

// spyLayouter records delegate calls and reports a fixed desired size.
// It arranges children like the default layouter.
type spyLayouter struct {
	desired  Size
	measures []Size
	arranges []Rect
}

func (s *spyLayouter) MeasureOverride(e *Element, available Size) Size {
	s.measures = append(s.measures, available)
	for _, child := range e.children {
		child.Measure(available)
	}
	return s.desired
}

func (s *spyLayouter) ArrangeOverride(e *Element, content Rect) {
	s.arranges = append(s.arranges, content)
	for _, child := range e.children {
		child.Arrange(content)
	}
}

func (s *spyLayouter) reset() {
	s.measures = nil
	s.arranges = nil
}
