package gui

// Properties returns the element's attached-property store. Mutating it
// invalidates the element's layout.
func (e *Element) Properties() *PropertyStore {
	return e.props
}

// GetProperty reads an attached property, returning the key's default when
// the property is absent.
func GetProperty[T any](e *Element, k Key[T]) T {
	return k.Get(e.props)
}

// SetProperty writes an attached property and invalidates e.
func SetProperty[T any](e *Element, k Key[T], v T) {
	k.Set(e.props, v)
}

// ClearProperty removes an attached property. Returns true if it was set.
func ClearProperty[T any](e *Element, k Key[T]) bool {
	return k.Clear(e.props)
}
