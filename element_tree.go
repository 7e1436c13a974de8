package gui

// --- Element's own API ---

// AddChild appends children to this Element.
// Each child must be detached; the first failure stops the operation and
// earlier children stay attached.
func (e *Element) AddChild(children ...*Element) error {
	for _, child := range children {
		if err := e.InsertChild(len(e.children), child); err != nil {
			return err
		}
	}
	return nil
}

// InsertChild inserts child at index, shifting later children right.
// Attaching sets the child's parent, propagates the System reference to the
// whole attached subtree and invalidates the subtree and this element's
// ancestor chain.
func (e *Element) InsertChild(index int, child *Element) error {
	if child == nil {
		return NewError(ErrCodeInvalidArgument, "cannot add nil child to %s", e.label())
	}
	if child.parent != nil {
		return NewError(ErrCodeOwnership, "%s already has parent %s", child.label(), child.parent.label())
	}
	if child.isRoot {
		return NewError(ErrCodeOwnership, "root element cannot be added to %s", e.label())
	}
	if child.isAncestorOf(e) {
		return NewError(ErrCodeOwnership, "adding %s to %s would create a cycle", child.label(), e.label())
	}
	if index < 0 || index > len(e.children) {
		return NewError(ErrCodeInvalidArgument, "child index %d out of range [0, %d]", index, len(e.children))
	}
	if acc, ok := e.layouter.(childAcceptor); ok {
		if err := acc.acceptChild(e, child); err != nil {
			return err
		}
	}

	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child

	child.parent = e
	child.setSystemRecursive(e.system)
	child.invalidateDescendants()
	child.invalidateAncestors()
	e.notifyChildAdded(child)
	e.system.markDirty()
	return nil
}

// notifyChildAdded walks up to root and calls its onChildAdded callback.
func (e *Element) notifyChildAdded(child *Element) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	if root.onChildAdded != nil {
		root.onChildAdded(child)
	}
}

// SetOnChildAdded sets the callback for when any descendant is added.
// Only the callback on the topmost ancestor is invoked.
func (e *Element) SetOnChildAdded(fn func(*Element)) {
	e.onChildAdded = fn
}

// RemoveChild detaches child from this Element.
// Returns an ownership error if child is not one of this element's children.
func (e *Element) RemoveChild(child *Element) error {
	if child == nil {
		return NewError(ErrCodeInvalidArgument, "cannot remove nil child from %s", e.label())
	}
	i := e.ChildIndex(child)
	if i < 0 {
		return NewError(ErrCodeOwnership, "%s is not a child of %s", child.label(), e.label())
	}
	// Order is significant for stack and wrap layout, so shift rather than swap.
	copy(e.children[i:], e.children[i+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]

	e.detach(child)
	e.invalidateChain()
	return nil
}

// RemoveAllChildren detaches all children from this Element.
func (e *Element) RemoveAllChildren() {
	if len(e.children) == 0 {
		return
	}
	for _, child := range e.children {
		e.detach(child)
	}
	e.children = nil
	e.invalidateChain()
}

func (e *Element) detach(child *Element) {
	if sys := child.system; sys != nil {
		sys.logger.Debug("element detached", "element", child.label(), "parent", e.label())
	}
	child.parent = nil
	child.setSystemRecursive(nil)
	child.invalidateDescendants()
}

// Children returns the child elements. The slice must not be modified.
func (e *Element) Children() []*Element {
	return e.children
}

// ChildIndex returns the position of child, or -1 if it is not a child.
func (e *Element) ChildIndex(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Parent returns the parent element, or nil if detached or root.
func (e *Element) Parent() *Element {
	return e.parent
}

// isAncestorOf reports whether e is other or one of other's ancestors.
func (e *Element) isAncestorOf(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

func (e *Element) setSystemRecursive(sys *System) {
	if e == nil {
		return
	}
	e.system = sys
	for _, child := range e.children {
		child.setSystemRecursive(sys)
	}
}
