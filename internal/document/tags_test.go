package document_test

import (
	"testing"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "inline",
			content: "Some #project notes (#todo, #later)",
			want:    []string{"project", "todo", "later"},
		},
		{
			name:    "frontmatter list first",
			content: "---\ntags: [alpha, '#beta']\n---\nText #gamma and #alpha",
			want:    []string{"alpha", "beta", "gamma"},
		},
		{
			name:    "frontmatter string",
			content: "---\ntag: one, two three\n---\n",
			want:    []string{"one", "two", "three"},
		},
		{
			name:    "numeric tags rejected",
			content: "Issue #123 and #v2",
			want:    []string{"v2"},
		},
		{
			name:    "code fences skipped",
			content: "#outside\n```\n#inside\n```\n",
			want:    []string{"outside"},
		},
		{
			name:    "nested tags",
			content: "#area/work-items",
			want:    []string{"area/work-items"},
		},
		{
			name:    "hash inside word ignored",
			content: "C#sharp and a#b",
			want:    nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, document.ExtractTags(tc.content, document.ParseFrontmatter(tc.content)))
		})
	}
}

func TestRankTags(t *testing.T) {
	t.Parallel()

	ranked := document.RankTags(
		[]string{"a", "b"},
		[]string{"b"},
		[]string{"c", "b", "a"},
	)

	assert.Equal(t, []document.TagCount{
		{Name: "b", Count: 3},
		{Name: "a", Count: 2},
		{Name: "c", Count: 1},
	}, ranked)

	assert.Empty(t, document.RankTags())
}
