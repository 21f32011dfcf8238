package document_test

import (
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	modified := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := document.New(`dir\sub/note.md`, modified, modified, 42)

	assert.Equal(t, "dir/sub/note.md", doc.Path)
	assert.Equal(t, "note.md", doc.Name)
	assert.Equal(t, "note", doc.Basename())
	assert.Equal(t, "dir/sub", doc.Dir())
	assert.Equal(t, modified.UnixNano(), doc.Stamp())
	assert.Equal(t, "dir/sub/note.md", doc.String())
}

func TestSplitFrontmatter(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		content   string
		wantBlock string
		wantBody  string
		wantOK    bool
	}{
		{"none", "just text", "", "just text", false},
		{"complete", "---\ntitle: x\n---\nbody", "title: x\n", "body", true},
		{"empty block", "---\n---\nbody", "", "body", true},
		{"unclosed", "---\ntitle: x\n", "", "---\ntitle: x\n", false},
		{"crlf fences", "---\r\na: 1\r\n---\r\nbody", "a: 1\r\n", "body", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			block, body, ok := document.SplitFrontmatter(tc.content)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantBlock, block)
			assert.Equal(t, tc.wantBody, body)
		})
	}
}

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	fields := document.ParseFrontmatter("---\ntitle: Hello\ncount: 3\nauthors: [ann, bob]\n---\nbody")
	assert.Equal(t, "Hello", fields["title"])
	assert.Equal(t, 3, fields["count"])
	assert.Equal(t, []any{"ann", "bob"}, fields["authors"])

	assert.Nil(t, document.ParseFrontmatter("---\ntitle: [unclosed\n---\nbody"))
	assert.Nil(t, document.ParseFrontmatter("no frontmatter"))
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, document.IsEmpty(""))
	assert.True(t, document.IsEmpty("  \n\t\n"))
	assert.True(t, document.IsEmpty("---\ntitle: x\n---\n  \n"))
	assert.False(t, document.IsEmpty("---\ntitle: x\n---\ncontent"))
	assert.False(t, document.IsEmpty("text"))
}

func TestParseContents(t *testing.T) {
	t.Parallel()

	contents := document.Parse("---\ntags: [alpha, beta]\n---\nText #gamma")

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, contents.Tags)
	assert.Equal(t, "Text #gamma", contents.Body())
	assert.Contains(t, contents.Frontmatter, "tags")
}
