package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	gui "github.com/grindlemire/go-gui"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKind  = lipgloss.NewStyle().Foreground(colorCyan)
	styleRect  = lipgloss.NewStyle().Foreground(colorGray)
	styleDim   = lipgloss.NewStyle().Foreground(colorDim)
)

// palette styles tree output. The zero palette prints plain text.
type palette struct {
	title, kind, rect, dim lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{title: plain, kind: plain, rect: plain, dim: plain}
	}
	return palette{title: styleTitle, kind: styleKind, rect: styleRect, dim: styleDim}
}

// writeTrees prints one tree per result.
func writeTrees(w io.Writer, results []*result, color bool) {
	p := newPalette(color)
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := fmt.Sprintf("%s %s", res.File, p.dim.Render(fmt.Sprintf("(%s, %d arranged)", formatSize(res.Viewport), res.Stats.Arranged)))
		fmt.Fprintln(w, p.title.Render(strings.TrimSpace(header)))
		fmt.Fprintln(w, snapshotTree(res.Root, p).String())
	}
}

// snapshotTree converts a snapshot into a lipgloss tree.
func snapshotTree(s *gui.Snapshot, p palette) *tree.Tree {
	t := tree.Root(snapshotLabel(s, p)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(p.dim)
	for _, child := range s.Children {
		if len(child.Children) == 0 {
			t.Child(snapshotLabel(child, p))
			continue
		}
		t.Child(snapshotTree(child, p))
	}
	return t
}

func snapshotLabel(s *gui.Snapshot, p palette) string {
	var b strings.Builder
	b.WriteString(p.kind.Render(s.Kind))
	if s.Name != "" {
		b.WriteString(" " + s.Name)
	}
	if s.Visibility == "collapsed" {
		b.WriteString(" " + p.dim.Render("collapsed"))
		return b.String()
	}
	b.WriteString(" " + p.rect.Render(formatRect(s.BoundingBox)))
	if s.ClipRect != s.BoundingBox {
		b.WriteString(" " + p.dim.Render("clip "+formatRect(s.ClipRect)))
	}
	return b.String()
}

func formatRect(r gui.Rect) string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}

func formatSize(s gui.Size) string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
