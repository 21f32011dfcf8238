package common_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCards(t *testing.T) {
	t.Parallel()

	modified := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []*document.Document{
		{Path: "notes/alpha.md", Name: "alpha.md", Modified: modified},
		{Path: "broken.md", Name: "broken.md", Modified: modified},
	}

	accessor := document.AccessorFunc(func(_ context.Context, doc *document.Document) (*document.Contents, error) {
		if doc.Path == "broken.md" {
			return nil, errors.New("unreadable")
		}

		return document.Parse("# Alpha\n\nfirst #todo"), nil
	})

	cards := common.NewCards(t.Context(), accessor, docs, document.TitleBoth, 100, []string{"broken.md"})
	require.Len(t, cards, 2)

	assert.Equal(t, "Alpha", cards[0].Title)
	assert.Equal(t, "alpha", cards[0].Subtitle)
	assert.Equal(t, []string{"todo"}, cards[0].Tags)
	assert.NotEmpty(t, cards[0].Preview)
	assert.False(t, cards[0].Pinned)

	assert.Equal(t, "broken", cards[1].Title)
	assert.True(t, cards[1].Pinned)
}

func TestWriteTextWrapsPreviews(t *testing.T) {
	t.Parallel()

	now := time.Now()
	card := common.Card{
		Modified: now,
		Path:     "a.md",
		Title:    "A",
		Preview:  strings.Repeat("word ", 20),
	}

	var plain, wrapped bytes.Buffer

	require.NoError(t, common.WriteText(&plain, []common.Card{card}, common.NewColorizer(false), now))
	require.NoError(t, common.WriteText(&wrapped, []common.Card{card}, common.NewColorizer(false).WithWrap(34), now))

	for line := range strings.SplitSeq(strings.TrimSpace(wrapped.String()), "\n") {
		assert.LessOrEqual(t, len(line), 34, line)
	}

	assert.Greater(t, strings.Count(wrapped.String(), "\n"), strings.Count(plain.String(), "\n"))
}
