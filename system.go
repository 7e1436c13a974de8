package gui

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-gui/internal/debug"
)

// System is the root context of a layout tree. It owns the root element,
// the viewport size and the logical-to-physical transform, and runs layout
// passes. Every element attached below the root holds a non-owning
// reference to its System.
//
// A System is not safe for concurrent use: tree mutation and layout passes
// must happen on one goroutine.
type System struct {
	root      *Element
	viewport  Size
	transform Transform
	wheelStep float64
	logger    *log.Logger
	logFile   io.Closer // set when the System opened cfg.Log.Path

	pending atomic.Bool
	frame   uint64
	stats   PassStats
}

// PassStats counts the work done by one layout pass.
type PassStats struct {
	Frame    uint64        `json:"frame"`
	Measured int           `json:"measured"`
	Arranged int           `json:"arranged"`
	Elapsed  time.Duration `json:"elapsed"`
}

// SystemOption is a functional option for configuring a System.
type SystemOption func(*System) error

// WithLogger sets the logger for pass and attach/detach messages.
// Default is a logger on cfg.Log.Path when set, else the process debug logger.
func WithLogger(l *log.Logger) SystemOption {
	return func(s *System) error {
		if l == nil {
			return NewError(ErrCodeInvalidArgument, "nil logger")
		}
		s.logger = l
		return nil
	}
}

// WithTransform replaces the transform built from the viewport config.
func WithTransform(t Transform) SystemOption {
	return func(s *System) error {
		if t == nil {
			return NewError(ErrCodeInvalidArgument, "nil transform")
		}
		s.transform = t
		return nil
	}
}

// WithRootLayouter sets how the root lays out its children.
// Default stretches every child over the viewport.
func WithRootLayouter(l Layouter) SystemOption {
	return func(s *System) error {
		s.root.layouter = l
		return nil
	}
}

// NewSystem creates a System for the viewport described by cfg.
func NewSystem(cfg Config, opts ...SystemOption) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &System{
		viewport:  Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height},
		transform: cfg.Viewport.transform(),
		wheelStep: cfg.Scroll.WheelStep,
	}

	root := New(WithName("root"))
	root.isRoot = true
	root.invalid = false
	root.system = s
	root.SetOnChildAdded(func(child *Element) {
		s.logger.Debug("element attached", "element", child.label(), "parent", child.parent.label())
	})
	s.root = root

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.logger == nil {
		if err := s.openLog(cfg.Log); err != nil {
			return nil, err
		}
	}

	s.pending.Store(true)
	return s, nil
}

// openLog gives the System its own logger on cfg.Path, or the process
// debug logger when no path is configured.
func (s *System) openLog(cfg LogConfig) error {
	if cfg.Path == "" {
		s.logger = debug.Logger()
		return nil
	}
	lvl, err := cfg.ParseLevel()
	if err != nil {
		return WrapError(ErrCodeConfig, err, "log level")
	}
	l, f, err := debug.Open(cfg.Path, lvl)
	if err != nil {
		return WrapError(ErrCodeConfig, err, "open log %s", cfg.Path)
	}
	s.logger = l
	s.logFile = f
	return nil
}

// Close releases the log file opened for cfg.Log.Path, if any.
func (s *System) Close() error {
	if s.logFile == nil {
		return nil
	}
	err := s.logFile.Close()
	s.logFile = nil
	return err
}

// Root returns the root element. Add top-level elements to it.
func (s *System) Root() *Element {
	return s.root
}

// Viewport returns the logical viewport size.
func (s *System) Viewport() Size {
	return s.viewport
}

// Transform returns the logical-to-physical transform.
func (s *System) Transform() Transform {
	return s.transform
}

// Frame returns the number of layout passes run so far.
func (s *System) Frame() uint64 {
	return s.frame
}

// Stats returns the counters from the most recent pass.
func (s *System) Stats() PassStats {
	return s.stats
}

// Resize sets the logical viewport size and invalidates every element.
func (s *System) Resize(width, height float64) error {
	if width < 0 || height < 0 {
		return NewError(ErrCodeInvalidArgument, "negative viewport %vx%v", width, height)
	}
	v := Size{Width: width, Height: height}
	if v == s.viewport {
		return nil
	}
	s.viewport = v
	s.invalidateAll()
	return nil
}

// SetTransform replaces the logical-to-physical transform. Clip rectangles
// depend on it, so every element is invalidated.
func (s *System) SetTransform(t Transform) error {
	if t == nil {
		return NewError(ErrCodeInvalidArgument, "nil transform")
	}
	s.transform = t
	s.invalidateAll()
	return nil
}

func (s *System) invalidateAll() {
	s.root.invalidateDescendants()
	s.markDirty()
}

// Update runs a layout pass if anything was invalidated since the last one.
// Returns true if a pass ran.
func (s *System) Update() bool {
	if !s.checkAndClearDirty() {
		return false
	}
	s.pass()
	return true
}

// Layout runs a layout pass unconditionally.
func (s *System) Layout() {
	s.pending.Store(false)
	s.pass()
}

// pass arranges the root over the viewport. The root is never invalid, so
// it is arranged directly; below it only invalid subtrees do work.
func (s *System) pass() {
	start := time.Now()
	s.frame++
	s.stats = PassStats{Frame: s.frame}

	s.root.arrange(Rect{Width: s.viewport.Width, Height: s.viewport.Height})

	s.stats.Elapsed = time.Since(start)
	s.logger.Debug("layout pass",
		"frame", s.frame,
		"measured", s.stats.Measured,
		"arranged", s.stats.Arranged,
		"elapsed", s.stats.Elapsed,
	)
}

// HitTest returns the deepest visible element whose clip rectangle contains
// the physical point p, preferring later siblings, which are drawn on top.
// Returns nil if the point is outside the root.
func (s *System) HitTest(p Point) *Element {
	return hitTest(s.root, p)
}

func hitTest(e *Element, p Point) *Element {
	if e.visibility == Collapsed || !p.In(e.layout.ClipRect) {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := hitTest(e.children[i], p); hit != nil {
			return hit
		}
	}
	return e
}
