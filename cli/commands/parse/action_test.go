package parse_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/gruntwork-io/notecards/cli/commands/parse"
	"github.com/gruntwork-io/notecards/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptions() (*parse.Options, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	return &parse.Options{Options: options.NewOptionsWithWriters(stdout, io.Discard)}, stdout
}

func TestRunTree(t *testing.T) {
	t.Parallel()

	opts, stdout := newOptions()

	require.NoError(t, parse.Run(t.Context(), opts, "lorem OR ipsum"))
	assert.Equal(t, "Or\n  And\n    Word(\"lorem\")\n  And\n    Word(\"ipsum\")\n", stdout.String())
}

func TestRunCompactWithDiagnostics(t *testing.T) {
	t.Parallel()

	opts, stdout := newOptions()
	opts.Compact = true

	require.NoError(t, parse.Run(t.Context(), opts, "(lorem"))

	out := stdout.String()
	assert.Contains(t, out, `And(Word("lorem"))`)
	assert.Contains(t, out, "warning:")
	assert.Contains(t, out, "^")
}

func TestRunJSON(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		query       string
		expression  string
		diagnostics int
	}{
		{name: "blank", query: "  ", expression: "And()", diagnostics: 0},
		{name: "tag", query: "tag:work", expression: `And(Tag("work"))`, diagnostics: 0},
		{name: "dangling or", query: "a OR", expression: `And(Word("a"))`, diagnostics: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts, stdout := newOptions()
			opts.JSON = true

			require.NoError(t, parse.Run(t.Context(), opts, tc.query))

			var output parse.Output
			require.NoError(t, json.Unmarshal(stdout.Bytes(), &output))
			assert.Equal(t, tc.expression, output.Expression)
			assert.Len(t, output.Diagnostics, tc.diagnostics)
		})
	}
}
