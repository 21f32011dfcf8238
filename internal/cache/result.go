package cache

import "github.com/gruntwork-io/notecards/internal/document"

const resultCacheName = "result"

// Key identifies one version of a document. An edited document has a new
// stamp and therefore misses.
type Key struct {
	Path  string
	Stamp int64
}

// KeyOf returns the key of the current version of doc.
func KeyOf(doc *document.Document) Key {
	return Key{Path: doc.Path, Stamp: doc.Stamp()}
}

// ResultCache memoizes whether a document version matched a predicate.
// It is only valid for one predicate and must be replaced when it changes.
type ResultCache = Cache[Key, bool]

// NewResultCache creates an empty result cache.
func NewResultCache() *ResultCache {
	return NewCache[Key, bool](resultCacheName)
}
