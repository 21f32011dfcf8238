package query_test

import (
	"context"
	"testing"

	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareBlankQuery(t *testing.T) {
	t.Parallel()

	filter := query.Prepare(context.Background(), "  \t")
	assert.Nil(t, filter)
	assert.True(t, filter.Match(content("anything")))
	assert.Empty(t, filter.String())
	assert.Nil(t, filter.Expression())
	assert.Nil(t, filter.Diagnostics())
}

func TestPrepare(t *testing.T) {
	t.Parallel()

	filter := query.Prepare(context.Background(), "tag:project -done")
	require.NotNil(t, filter)

	assert.Equal(t, "tag:project -done", filter.String())
	assert.Equal(t, `And(Tag("project"), Not(Word("done")))`, filter.Expression().String())
	assert.Empty(t, filter.Diagnostics())

	assert.True(t, filter.Match(&query.EvalContext{Tags: []string{"project"}, Content: "todo"}))
	assert.False(t, filter.Match(&query.EvalContext{Tags: []string{"project"}, Content: "done"}))
}

func TestNewReportsInvalidRegex(t *testing.T) {
	t.Parallel()

	filter := query.New("a /(b/")

	diagnostics := filter.Diagnostics()
	require.Len(t, diagnostics, 1)

	assert.Equal(t, query.ErrorCodeInvalidRegex, diagnostics[0].Code)
	assert.Equal(t, 2, diagnostics[0].Position)
	assert.Equal(t, 4, diagnostics[0].Length)
	assert.False(t, filter.Match(content("a (b")))
}
