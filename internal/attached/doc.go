// Package attached implements per-element attached properties: a small
// name→value map that layout containers use to stash per-child layout
// hints (fill weight, anchors, explicit positions) without adding fields
// to the element type.
//
// Containers declare strongly typed keys with [NewKey] and read them with
// [Key.Get], which falls back to the key's default when the entry is absent
// or holds a value of another type. Every mutation notifies the store's
// owner so it can invalidate layout.
package attached
