package attached

// Key is a typed accessor for one named attached property.
type Key[T any] struct {
	name string
	def  T
}

// NewKey declares a property named name whose absent value reads as def.
func NewKey[T any](name string, def T) Key[T] {
	return Key[T]{name: name, def: def}
}

// Name returns the property name.
func (k Key[T]) Name() string {
	return k.name
}

// Default returns the value reported when the property is absent.
func (k Key[T]) Default() T {
	return k.def
}

// Get returns the value stored in s, or the default when the entry is
// missing or holds a different type.
func (k Key[T]) Get(s *Store) T {
	v, ok := s.Lookup(k.name)
	if !ok {
		return k.def
	}
	typed, ok := v.(T)
	if !ok {
		return k.def
	}
	return typed
}

// IsSet reports whether s holds a value of type T under this key.
func (k Key[T]) IsSet(s *Store) bool {
	v, ok := s.Lookup(k.name)
	if !ok {
		return false
	}
	_, ok = v.(T)
	return ok
}

// Set stores value in s.
func (k Key[T]) Set(s *Store, value T) {
	s.Set(k.name, value)
}

// Clear removes the entry from s.
func (k Key[T]) Clear(s *Store) bool {
	return s.Remove(k.name)
}
