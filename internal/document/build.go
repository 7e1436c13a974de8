package document

import (
	"fmt"

	gui "github.com/grindlemire/go-gui"
)

// Build creates the element tree described by the document.
func (d *Document) Build() (*gui.Element, error) {
	m, err := d.Measurer()
	if err != nil {
		return nil, err
	}
	b := builder{measurer: m}
	return b.node(d.Root, "root")
}

type builder struct {
	measurer gui.TextMeasurer
}

// node builds n and its subtree. path locates n in error messages.
func (b builder) node(n *Node, path string) (*gui.Element, error) {
	if n == nil {
		return nil, gui.NewError(gui.ErrCodeDocument, "%s: empty node", path)
	}

	e, err := b.element(n, path)
	if err != nil {
		return nil, err
	}
	if err := b.constraints(e, n); err != nil {
		return nil, gui.WrapError(gui.ErrCodeDocument, err, "%s", path)
	}
	if err := b.hints(e, n, path); err != nil {
		return nil, err
	}

	for i, child := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		c, err := b.node(child, childPath)
		if err != nil {
			return nil, err
		}
		if err := e.AddChild(c); err != nil {
			return nil, gui.WrapError(gui.ErrCodeDocument, err, "%s", childPath)
		}
	}

	if n.Scroll != 0 {
		e.ScrollTo(n.Scroll)
	}
	return e, nil
}

// element creates the element for n's kind.
func (b builder) element(n *Node, path string) (*gui.Element, error) {
	name := gui.WithName(n.Name)
	switch n.Kind {
	case "", "panel":
		return gui.New(name), nil
	case "stack":
		d, err := direction(n.Direction, path)
		if err != nil {
			return nil, err
		}
		e := gui.NewStacker(d, name)
		e.Layouter().(*gui.Stacker).Spacing = n.Spacing
		return e, nil
	case "wrap":
		d, err := direction(n.Direction, path)
		if err != nil {
			return nil, err
		}
		e := gui.NewWrapPanel(d, name)
		e.Layouter().(*gui.WrapPanel).Spacing = n.Spacing
		return e, nil
	case "canvas":
		return gui.NewFreeCanvas(name), nil
	case "scroll":
		if len(n.Children) > 1 {
			return nil, gui.NewError(gui.ErrCodeDocument, "%s: scroll takes one child, got %d", path, len(n.Children))
		}
		e := gui.NewScrollContainer(name)
		e.Layouter().(*gui.ScrollContainer).WheelStep = n.WheelStep
		return e, nil
	case "text":
		if len(n.Children) > 0 {
			return nil, gui.NewError(gui.ErrCodeDocument, "%s: text cannot have children", path)
		}
		size := n.FontSize
		if size == 0 {
			size = 13
		}
		return gui.NewText(n.Text, b.measurer, size, name), nil
	default:
		return nil, gui.NewError(gui.ErrCodeDocument, "%s: unknown kind %q", path, n.Kind)
	}
}

// constraints applies the properties every element has.
func (b builder) constraints(e *gui.Element, n *Node) error {
	setters := []error{
		e.SetMargin(gui.Edges(n.Margin)),
		e.SetPadding(gui.Edges(n.Padding)),
		e.SetWidth(n.Width),
		e.SetHeight(n.Height),
		e.SetMinWidth(n.MinWidth),
		e.SetMinHeight(n.MinHeight),
		e.SetMaxWidth(n.MaxWidth),
		e.SetMaxHeight(n.MaxHeight),
	}
	for _, err := range setters {
		if err != nil {
			return err
		}
	}

	h, err := align(n.HAlign)
	if err != nil {
		return err
	}
	v, err := align(n.VAlign)
	if err != nil {
		return err
	}
	e.SetAlign(h, v)

	switch n.Visibility {
	case "", "visible":
	case "collapsed":
		e.SetVisibility(gui.Collapsed)
	default:
		return gui.NewError(gui.ErrCodeDocument, "unknown visibility %q", n.Visibility)
	}
	return nil
}

// hints stores the container hints as attached properties.
func (b builder) hints(e *gui.Element, n *Node, path string) error {
	if n.Fill != 0 {
		if err := gui.SetFill(e, n.Fill); err != nil {
			return gui.WrapError(gui.ErrCodeDocument, err, "%s", path)
		}
	}
	if n.Anchor != nil {
		if len(n.Anchor) != 4 {
			return gui.NewError(gui.ErrCodeDocument, "%s: anchor needs [left, top, right, bottom]", path)
		}
		gui.SetProperty(e, gui.Anchor, gui.AnchorRect{
			Left: n.Anchor[0], Top: n.Anchor[1], Right: n.Anchor[2], Bottom: n.Anchor[3],
		})
	}
	if n.AnchorAlign != nil {
		p, err := pair(n.AnchorAlign, "anchor-align", path)
		if err != nil {
			return err
		}
		gui.SetProperty(e, gui.AnchorAlign, p)
	}
	if n.Position != nil {
		p, err := pair(n.Position, "position", path)
		if err != nil {
			return err
		}
		gui.SetProperty(e, gui.Position, p)
	}
	if n.Size != nil {
		p, err := pair(n.Size, "size", path)
		if err != nil {
			return err
		}
		if p.X < 0 || p.Y < 0 {
			return gui.NewError(gui.ErrCodeDocument, "%s: negative size %v", path, n.Size)
		}
		gui.SetProperty(e, gui.ExplicitSize, gui.Sz(p.X, p.Y))
		gui.SetProperty(e, gui.AutoSize, true)
	}
	return nil
}

func pair(v []float64, key, path string) (gui.Point, error) {
	if len(v) != 2 {
		return gui.Point{}, gui.NewError(gui.ErrCodeDocument, "%s: %s needs two values, got %d", path, key, len(v))
	}
	return gui.Pt(v[0], v[1]), nil
}

func direction(s, path string) (gui.Direction, error) {
	switch s {
	case "", "row":
		return gui.Row, nil
	case "column":
		return gui.Column, nil
	default:
		return 0, gui.NewError(gui.ErrCodeDocument, "%s: unknown direction %q", path, s)
	}
}

func align(s string) (gui.Align, error) {
	switch s {
	case "", "stretch":
		return gui.AlignStretch, nil
	case "start":
		return gui.AlignStart, nil
	case "center":
		return gui.AlignCenter, nil
	case "end":
		return gui.AlignEnd, nil
	default:
		return 0, gui.NewError(gui.ErrCodeDocument, "unknown alignment %q", s)
	}
}
