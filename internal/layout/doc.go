// Package layout holds the geometry primitives shared by the layout engine.
//
// It defines float64 rectangles, sizes, points and edge insets in logical
// pixels, the Start/Center/End/Stretch alignment math used to place a box
// inside a region, the Row/Column main-axis helpers used by linear and
// wrapping containers, and the logical-to-physical [Transform] supplied by
// the windowing collaborator. Types are re-exported through the root gui
// package for public consumption.
package layout
