package gui

// Snapshot is a serializable copy of a subtree's computed geometry.
type Snapshot struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	Kind        string      `json:"kind"`
	BoundingBox Rect        `json:"boundingBox"`
	ContentRect Rect        `json:"contentRect"`
	ClipRect    Rect        `json:"clipRect"`
	ActualSize  Size        `json:"actualSize"`
	Visibility  string      `json:"visibility"`
	Children    []*Snapshot `json:"children,omitempty"`
}

// Snapshot captures the geometry of e and its descendants from the last pass.
func (e *Element) Snapshot() *Snapshot {
	s := &Snapshot{
		ID:          e.id.String(),
		Name:        e.name,
		Kind:        e.Kind(),
		BoundingBox: e.layout.BoundingBox,
		ContentRect: e.layout.ContentRect,
		ClipRect:    e.layout.ClipRect,
		ActualSize:  e.actualSize,
		Visibility:  e.visibility.String(),
	}
	for _, child := range e.children {
		s.Children = append(s.Children, child.Snapshot())
	}
	return s
}

// Find returns the first element in e's subtree, depth first, with the
// given name, or nil.
func (e *Element) Find(name string) *Element {
	if e.name == name {
		return e
	}
	for _, child := range e.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for e and every descendant in depth-first order. If fn
// returns false the element's children are skipped.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, child := range e.children {
		child.Walk(fn)
	}
}
