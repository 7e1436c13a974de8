package attached

import "sort"

// Store holds the attached properties of one element.
// The zero value is ready to use and has no owner notification.
type Store struct {
	values   map[string]any
	onChange func(name string)
}

// NewStore creates a Store that calls onChange after every mutation.
func NewStore(onChange func(name string)) *Store {
	return &Store{onChange: onChange}
}

// Lookup returns the raw value stored under name.
func (s *Store) Lookup(name string) (any, bool) {
	if s == nil || s.values == nil {
		return nil, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name and notifies the owner.
func (s *Store) Set(name string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[name] = value
	s.notify(name)
}

// Remove deletes the entry under name. The owner is notified only if an
// entry existed. Returns true if an entry was removed.
func (s *Store) Remove(name string) bool {
	if s == nil || s.values == nil {
		return false
	}
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	s.notify(name)
	return true
}

// Len returns the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Names returns the entry names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) notify(name string) {
	if s.onChange != nil {
		s.onChange(name)
	}
}
