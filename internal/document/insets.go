package document

import (
	"fmt"

	"gopkg.in/yaml.v3"

	gui "github.com/grindlemire/go-gui"
)

// Insets is a margin or padding written the way CSS shorthand is: a single
// number for all sides, [vertical, horizontal], or [top, right, bottom, left].
type Insets gui.Edges

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *Insets) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var n float64
		if err := value.Decode(&n); err != nil {
			return err
		}
		*i = Insets(gui.EdgeAll(n))
		return nil
	case yaml.SequenceNode:
		var ns []float64
		if err := value.Decode(&ns); err != nil {
			return err
		}
		switch len(ns) {
		case 1:
			*i = Insets(gui.EdgeAll(ns[0]))
		case 2:
			*i = Insets(gui.EdgeSymmetric(ns[0], ns[1]))
		case 4:
			*i = Insets(gui.EdgeTRBL(ns[0], ns[1], ns[2], ns[3]))
		default:
			return fmt.Errorf("line %d: insets need 1, 2 or 4 values, got %d", value.Line, len(ns))
		}
		return nil
	default:
		return fmt.Errorf("line %d: insets must be a number or a list", value.Line)
	}
}
