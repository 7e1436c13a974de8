package document

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	gui "github.com/grindlemire/go-gui"
)

// Document is a parsed layout document.
type Document struct {
	// Width and Height are the viewport size. Zero leaves the caller's default.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	// Font selects the text measurer: "basic" (7x13 bitmap face, default)
	// or "cells" (8x16 monospace grid at size 16).
	Font string `yaml:"font,omitempty"`
	Root *Node  `yaml:"root"`
}

// Node is one element in a document.
type Node struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`

	Direction string  `yaml:"direction,omitempty"`
	Spacing   float64 `yaml:"spacing,omitempty"`

	Margin    Insets  `yaml:"margin,omitempty"`
	Padding   Insets  `yaml:"padding,omitempty"`
	Width     float64 `yaml:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty"`
	MinWidth  float64 `yaml:"min-width,omitempty"`
	MinHeight float64 `yaml:"min-height,omitempty"`
	MaxWidth  float64 `yaml:"max-width,omitempty"`
	MaxHeight float64 `yaml:"max-height,omitempty"`

	HAlign     string `yaml:"halign,omitempty"`
	VAlign     string `yaml:"valign,omitempty"`
	Visibility string `yaml:"visibility,omitempty"`

	Text     string  `yaml:"text,omitempty"`
	FontSize float64 `yaml:"font-size,omitempty"`

	// Stacker hint.
	Fill float64 `yaml:"fill,omitempty"`

	// FreeCanvas hints.
	Anchor      []float64 `yaml:"anchor,omitempty"`
	AnchorAlign []float64 `yaml:"anchor-align,omitempty"`
	Position    []float64 `yaml:"position,omitempty"`
	Size        []float64 `yaml:"size,omitempty"`

	// ScrollContainer settings.
	Scroll    float64 `yaml:"scroll,omitempty"`
	WheelStep float64 `yaml:"wheel-step,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
}

// Parse decodes a YAML document. Unknown keys are errors.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, gui.NewError(gui.ErrCodeDocument, "empty document")
		}
		return nil, gui.WrapError(gui.ErrCodeDocument, err, "parse document")
	}
	if doc.Root == nil {
		return nil, gui.NewError(gui.ErrCodeDocument, "document has no root")
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gui.WrapError(gui.ErrCodeDocument, err, "read document %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, gui.WrapError(gui.ErrCodeDocument, err, "%s", path)
	}
	return doc, nil
}

// Measurer returns the text measurer named by the document's font.
func (d *Document) Measurer() (gui.TextMeasurer, error) {
	switch d.Font {
	case "", "basic":
		return gui.BasicFace(), nil
	case "cells":
		return gui.CellMeasurer(8, 16, 16), nil
	default:
		return nil, gui.NewError(gui.ErrCodeDocument, "unknown font %q", d.Font)
	}
}

// Apply overrides cfg's viewport with the document's, where set.
func (d *Document) Apply(cfg gui.Config) gui.Config {
	if d.Width > 0 {
		cfg.Viewport.Width = d.Width
	}
	if d.Height > 0 {
		cfg.Viewport.Height = d.Height
	}
	return cfg
}
