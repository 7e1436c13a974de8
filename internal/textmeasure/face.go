package textmeasure

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Face measures text with a font.Face, scaling linearly from the face's
// native pixel height to the requested font size.
type Face struct {
	face       font.Face
	nativeSize float64
}

// NewFace wraps face. nativeSize is the font size, in pixels, the face was
// rasterized at.
func NewFace(face font.Face, nativeSize float64) *Face {
	return &Face{face: face, nativeSize: nativeSize}
}

// Basic returns a measurer over the built-in 7x13 bitmap face.
func Basic() *Face {
	return NewFace(basicfont.Face7x13, 13)
}

// Measure returns the width of the widest line and the total line height
// of s at the given font size. A size of 0 uses the native size.
func (f *Face) Measure(s string, size float64) (width, height float64) {
	scale := 1.0
	if size > 0 && f.nativeSize > 0 {
		scale = size / f.nativeSize
	}

	lines := strings.Split(s, "\n")
	var widest fixed.Int26_6
	for _, line := range lines {
		if w := font.MeasureString(f.face, line); w > widest {
			widest = w
		}
	}
	lineHeight := toFloat(f.face.Metrics().Height)

	return toFloat(widest) * scale, lineHeight * float64(len(lines)) * scale
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
