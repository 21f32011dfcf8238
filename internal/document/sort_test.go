package document_test

import (
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortFixture() []*document.Document {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return []*document.Document{
		document.New("banana.md", base.Add(2*time.Hour), base.Add(1*time.Hour), 1),
		document.New("Apple.md", base.Add(1*time.Hour), base.Add(3*time.Hour), 1),
		document.New("cherry.md", base.Add(3*time.Hour), base.Add(2*time.Hour), 1),
	}
}

func paths(docs []*document.Document) []string {
	out := make([]string, len(docs))
	for i, doc := range docs {
		out[i] = doc.Path
	}

	return out
}

func TestSort(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		mode   document.SortMode
		pinned []string
		want   []string
	}{
		{document.SortTitleAsc, nil, []string{"Apple.md", "banana.md", "cherry.md"}},
		{document.SortTitleDesc, nil, []string{"cherry.md", "banana.md", "Apple.md"}},
		{document.SortEditedDesc, nil, []string{"cherry.md", "banana.md", "Apple.md"}},
		{document.SortEditedAsc, nil, []string{"Apple.md", "banana.md", "cherry.md"}},
		{document.SortCreatedDesc, nil, []string{"Apple.md", "cherry.md", "banana.md"}},
		{document.SortCreatedAsc, nil, []string{"banana.md", "cherry.md", "Apple.md"}},
		{document.SortEditedDesc, []string{"Apple.md"}, []string{"Apple.md", "cherry.md", "banana.md"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.mode), func(t *testing.T) {
			t.Parallel()

			docs := sortFixture()
			sorted := document.Sort(docs, tc.mode, tc.pinned)

			assert.Equal(t, tc.want, paths(sorted))
			assert.Equal(t, []string{"banana.md", "Apple.md", "cherry.md"}, paths(docs), "input must not be reordered")
		})
	}
}

func TestSortTiesByPath(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []*document.Document{
		document.New("b/note.md", stamp, stamp, 1),
		document.New("a/note.md", stamp, stamp, 1),
	}

	assert.Equal(t, []string{"a/note.md", "b/note.md"}, paths(document.Sort(docs, document.SortTitleAsc, nil)))
}

func TestParseSortMode(t *testing.T) {
	t.Parallel()

	mode, err := document.ParseSortMode("Title-Asc")
	require.NoError(t, err)
	assert.Equal(t, document.SortTitleAsc, mode)

	_, err = document.ParseSortMode("size")
	require.Error(t, err)
}

func TestSortModeNext(t *testing.T) {
	t.Parallel()

	mode := document.DefaultSortMode
	for range document.AllSortModes {
		mode = mode.Next()
	}

	assert.Equal(t, document.DefaultSortMode, mode)
	assert.Equal(t, document.SortEditedAsc, document.SortEditedDesc.Next())
	assert.Equal(t, "Title (A-Z)", document.SortTitleAsc.Label())
}
