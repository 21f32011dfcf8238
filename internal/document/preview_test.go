package document_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/stretchr/testify/assert"
)

func tableRows(count int) string {
	var sb strings.Builder

	sb.WriteString("| Column 1 | Column 2 |\n| --- | --- |\n")

	for i := 1; i <= count; i++ {
		fmt.Fprintf(&sb, "| Row %d | Value %d |\n", i, i)
	}

	return sb.String()
}

func countTableLines(text string) int {
	count := 0

	for line := range strings.SplitSeq(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "|") {
			count++
		}
	}

	return count
}

func TestPreviewShortContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, document.Preview("", 100))
	assert.Equal(t, "Hello world", document.Preview("  Hello world\n\n", 100))
}

func TestPreviewSkipsFrontmatter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hello world", document.Preview("---\ntitle: x\n---\nHello world", 100))
}

func TestPreviewCutsAtSentence(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("Lorem ipsum dolor. ", 100)
	preview := document.Preview(content, 100)

	assert.True(t, strings.HasSuffix(preview, "dolor. ..."), preview)
	assert.LessOrEqual(t, len(preview), 104)
}

func TestPreviewCutsAtWord(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("word ", 100)
	preview := document.Preview(content, 42)

	assert.Equal(t, strings.TrimSpace(strings.Repeat("word ", 8))+" ...", preview)
}

func TestPreviewClosesCodeFence(t *testing.T) {
	t.Parallel()

	content := "```go\n" + strings.Repeat("x := 1\n", 50) + "```\n"
	preview := document.Preview(content, 60)

	assert.Equal(t, 2, strings.Count(preview, "```"))
}

func TestPreviewKeepsRunesIntact(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("é", 100)
	preview := document.Preview(content, 51)

	assert.True(t, strings.HasPrefix(preview, strings.Repeat("é", 25)))
	assert.NotContains(t, preview, "�")
}

func TestPreviewTables(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		content      string
		limit        int
		minLines     int
		mustContain  string
		mustNotMatch string
	}{
		{
			name:         "at least ten table lines",
			content:      "# Header\n\nSome intro text.\n\n" + tableRows(15),
			limit:        200,
			minLines:     10,
			mustContain:  "| Row 8 |",
			mustNotMatch: "| Row 9 |",
		},
		{
			name:         "short table kept whole",
			content:      "# Header\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n| 3 | 4 |\nThis should not be included in the preview at all.",
			limit:        30,
			minLines:     4,
			mustContain:  "| 3 | 4 |",
			mustNotMatch: "This should not",
		},
		{
			name:        "table at start",
			content:     tableRows(15),
			limit:       50,
			minLines:    10,
			mustContain: "| Row 8 |",
		},
		{
			name:        "table after frontmatter",
			content:     "---\ntitle: Table\n---\n" + tableRows(15),
			limit:       50,
			minLines:    10,
			mustContain: "| Column 1 |",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			preview := document.Preview(tc.content, tc.limit)

			assert.GreaterOrEqual(t, countTableLines(preview), tc.minLines, preview)
			assert.Contains(t, preview, tc.mustContain)

			if tc.mustNotMatch != "" {
				assert.NotContains(t, preview, tc.mustNotMatch)
			}
		})
	}
}
