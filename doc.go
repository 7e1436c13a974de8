// Package gui is the layout engine of a retained-mode GUI toolkit.
//
// Users build a tree of Elements, attach it under a System's root, and run
// layout passes. Each pass measures bottom-up (desired sizes under a size
// budget) and arranges top-down (final rectangles), visiting only subtrees
// that were invalidated since the previous pass. After a pass every element
// exposes its BoundingBox, ContentRect and ClipRect for a renderer.
//
// Containers are Layouters plugged into an Element: Stacker, WrapPanel,
// FreeCanvas and ScrollContainer. Containers read per-child hints such as
// FillWeight and Anchor from attached properties.
package gui
