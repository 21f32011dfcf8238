package log

import (
	"maps"
	"slices"
)

// Fields is the type used to pass arguments to `WithFields`.
type Fields map[string]any

// Keys returns the sorted field names.
func (fields Fields) Keys() []string {
	return slices.Sorted(maps.Keys(fields))
}
