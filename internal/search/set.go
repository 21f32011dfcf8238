package search

// Set is an immutable set of document paths.
type Set struct {
	paths map[string]struct{}
}

// EmptySet is the set without documents.
var EmptySet = &Set{}

// NewSet creates a set of the given paths.
func NewSet(paths ...string) *Set {
	set := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		set[path] = struct{}{}
	}

	return newSet(set)
}

func newSet(paths map[string]struct{}) *Set {
	if len(paths) == 0 {
		return EmptySet
	}

	return &Set{paths: paths}
}

// Contains reports whether path is in the set. A nil set is empty.
func (s *Set) Contains(path string) bool {
	if s == nil {
		return false
	}

	_, ok := s.paths[path]

	return ok
}

// Len returns the number of paths.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.paths)
}

// Paths returns the paths in no particular order.
func (s *Set) Paths() []string {
	if s == nil {
		return nil
	}

	paths := make([]string, 0, len(s.paths))
	for path := range s.paths {
		paths = append(paths, path)
	}

	return paths
}
