package life

// Set is a sparse collection of packed cell keys.
type Set map[Key]struct{}

// NewSet allocates an empty set.
func NewSet() Set { return make(Set) }

// Add inserts a key into the set.
func (s Set) Add(k Key) { s[k] = struct{}{} }

// Has reports whether the key is present.
func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of keys in the set.
func (s Set) Len() int { return len(s) }
