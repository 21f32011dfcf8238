package window_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/search"
	"github.com/gruntwork-io/notecards/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpus(n int) []*document.Document {
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := make([]*document.Document, n)

	for i := range docs {
		docs[i] = document.New(fmt.Sprintf("%03d.md", i), stamp, stamp, 0)
	}

	return docs
}

func complete(n int, excluded ...*document.Document) search.State {
	return search.State{Excluded: excludedSet(excluded...), Progress: 1, Processed: n, Total: n}
}

func partial(processed, total int, excluded ...*document.Document) search.State {
	return search.State{
		Excluded:  excludedSet(excluded...),
		Progress:  float64(processed) / float64(total),
		Processed: processed,
		Total:     total,
	}
}

// excludedSet builds the set of the given documents.
func excludedSet(docs ...*document.Document) *search.Set {
	return search.NewSet(pathsOf(docs)...)
}

func pathsOf(docs []*document.Document) []string {
	paths := make([]string, len(docs))
	for i, doc := range docs {
		paths[i] = doc.Path
	}

	return paths
}

func TestWindowGrowsByPage(t *testing.T) {
	t.Parallel()

	docs := corpus(200)
	ctrl := window.New()

	displayed := ctrl.Update(docs, complete(200))
	assert.Equal(t, pathsOf(docs[:50]), pathsOf(displayed))

	assert.True(t, ctrl.OnScroll(50))
	assert.Equal(t, pathsOf(docs[:100]), pathsOf(ctrl.Displayed()))

	assert.True(t, ctrl.OnScroll(10))
	assert.Equal(t, pathsOf(docs[:150]), pathsOf(ctrl.Displayed()))

	assert.False(t, ctrl.OnScroll(500), "far from the bottom")
	assert.Len(t, ctrl.Displayed(), 150)

	assert.True(t, ctrl.HasMore())
	assert.Len(t, ctrl.LoadMore(), 200)
	assert.False(t, ctrl.OnScroll(0), "nothing left to load")
	assert.False(t, ctrl.HasMore())
}

func TestWindowDoesNotGrowWhileResultsStream(t *testing.T) {
	t.Parallel()

	docs := corpus(200)
	ctrl := window.New()

	require.Len(t, ctrl.Update(docs, complete(200)), 50)

	var odd []*document.Document
	for i := 1; i < 100; i += 2 {
		odd = append(odd, docs[i])
	}

	displayed := ctrl.Update(docs, partial(100, 200, odd...))
	require.Len(t, displayed, 50)

	for i, doc := range displayed {
		assert.Equal(t, docs[2*i].Path, doc.Path)
	}

	displayed = ctrl.Update(docs, complete(200, odd...))
	assert.Len(t, displayed, 50, "streamed results must not grow the window")
}

func TestWindowNeverShowsUnevaluatedDocuments(t *testing.T) {
	t.Parallel()

	docs := corpus(200)
	ctrl := window.New()

	assert.Empty(t, ctrl.Update(docs, partial(0, 200)))

	displayed := ctrl.Update(docs, partial(20, 200, docs[0], docs[1]))
	assert.Equal(t, pathsOf(docs[2:20]), pathsOf(displayed))

	displayed = ctrl.Update(docs, partial(60, 200, docs[0], docs[1]))
	assert.Equal(t, pathsOf(docs[2:52]), pathsOf(displayed))
}

func TestWindowKeepsPrefixUpToPreviousLastDocument(t *testing.T) {
	t.Parallel()

	docs := corpus(200)
	ctrl := window.New(window.WithPageSize(10))

	require.Len(t, ctrl.Update(docs, complete(200)), 10)

	// The last displayed document disappears: the rank falls back to the one before it.
	shorter := append(append([]*document.Document{}, docs[:9]...), docs[10:]...)

	displayed := ctrl.Update(shorter, partial(0, len(shorter)))
	assert.Equal(t, pathsOf(docs[:9]), pathsOf(displayed))
}

func TestWindowResortKeepsLength(t *testing.T) {
	t.Parallel()

	docs := corpus(200)
	ctrl := window.New()

	ctrl.Update(docs, complete(200))
	ctrl.LoadMore()
	require.Len(t, ctrl.Displayed(), 100)

	reversed := make([]*document.Document, len(docs))
	for i, doc := range docs {
		reversed[len(docs)-1-i] = doc
	}

	displayed := ctrl.Resort(reversed)
	assert.Equal(t, pathsOf(reversed[:100]), pathsOf(displayed))
}

func TestWindowReset(t *testing.T) {
	t.Parallel()

	docs := corpus(200)
	ctrl := window.New()

	ctrl.Update(docs, complete(200))
	ctrl.LoadMore()
	assert.Equal(t, 100, ctrl.Target())

	ctrl.Reset()
	assert.Equal(t, ctrl.PageSize(), ctrl.Target())
}

func TestWindowEmptyList(t *testing.T) {
	t.Parallel()

	ctrl := window.New()

	assert.Empty(t, ctrl.Update(nil, complete(0)))
	assert.False(t, ctrl.OnScroll(0))
}
