// Package textmeasure provides intrinsic text measurement for leaf elements.
//
// The layout engine never shapes text itself; it asks a measurer for the
// extent of a string at a font size. [Face] measures with a fixed-metrics
// font face from golang.org/x/image, scaled to the requested size. [Cells]
// measures on a monospace cell grid using East Asian width tables.
package textmeasure
