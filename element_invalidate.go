package gui

// Invalidate marks cached layout stale so the next pass recomputes it.
//
// It is a no-op on a System root and on an element that is already invalid.
// Otherwise it marks this element and every descendant invalid, then every
// ancestor up to but excluding the root, so that "an element is invalid iff
// it or any ancestor is invalid" holds before the next pass.
func (e *Element) Invalidate() {
	if e.isRoot || e.invalid {
		return
	}
	e.invalidateDescendants()
	e.invalidateAncestors()
	e.system.markDirty()
}

// IsInvalid reports this element's own invalid flag.
func (e *Element) IsInvalid() bool {
	return e.invalid
}

// NeedsArrange reports whether this element or any ancestor is invalid,
// which is the condition under which Arrange does work.
func (e *Element) NeedsArrange() bool {
	for n := e; n != nil; n = n.parent {
		if n.invalid {
			return true
		}
	}
	return false
}

// invalidateDescendants marks e and its whole subtree invalid.
func (e *Element) invalidateDescendants() {
	if !e.isRoot {
		e.invalid = true
	}
	for _, child := range e.children {
		child.invalidateDescendants()
	}
}

// invalidateAncestors marks every ancestor of e invalid, stopping at the root.
func (e *Element) invalidateAncestors() {
	n := e.parent
	for ; n != nil && !n.isRoot; n = n.parent {
		n.invalid = true
	}
	if n != nil {
		n.invalidateRootChildren()
	}
}

// invalidateChain marks e and its ancestors invalid after a change to e's
// child list. Children of e re-arrange through the ancestor predicate.
func (e *Element) invalidateChain() {
	if e.isRoot {
		e.invalidateRootChildren()
	} else {
		e.invalid = true
	}
	e.invalidateAncestors()
	e.system.markDirty()
}

// invalidateRootChildren marks the children of a root with its own layouter
// invalid. The root itself stays valid, and under a custom layouter one
// child's size moves its siblings. Their descendants follow through the
// ancestor predicate.
func (e *Element) invalidateRootChildren() {
	if !e.isRoot || e.layouter == nil {
		return
	}
	for _, child := range e.children {
		child.invalid = true
	}
}
