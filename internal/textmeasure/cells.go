package textmeasure

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cells measures text on a monospace grid. Each column is CellWidth pixels
// wide and each line CellHeight pixels tall at the reference font size.
type Cells struct {
	CellWidth  float64
	CellHeight float64
	// RefSize is the font size the cell metrics describe. Zero disables scaling.
	RefSize float64
}

// Measure returns the pixel extent of s. Wide runes occupy two columns.
func (c Cells) Measure(s string, size float64) (width, height float64) {
	scale := 1.0
	if size > 0 && c.RefSize > 0 {
		scale = size / c.RefSize
	}

	lines := strings.Split(s, "\n")
	cols := 0
	for _, line := range lines {
		cols = max(cols, runewidth.StringWidth(line))
	}
	return float64(cols) * c.CellWidth * scale, float64(len(lines)) * c.CellHeight * scale
}
