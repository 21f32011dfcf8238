package query_test

import (
	"testing"

	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLorem(t *testing.T) {
	t.Parallel()

	expr := query.Parse("lorem")

	and, ok := expr.(*query.AndExpression)
	require.True(t, ok)
	require.Len(t, and.Children, 1)

	word, ok := and.Children[0].(*query.WordTerm)
	require.True(t, ok)
	assert.Equal(t, "lorem", word.Text)
}

func TestParseLoremOrIpsum(t *testing.T) {
	t.Parallel()

	expr := query.Parse("lorem OR ipsum")

	or, ok := expr.(*query.OrExpression)
	require.True(t, ok)
	require.Len(t, or.Children, 2)

	for i, want := range []string{"lorem", "ipsum"} {
		and, ok := or.Children[i].(*query.AndExpression)
		require.True(t, ok)
		require.Len(t, and.Children, 1)

		word, ok := and.Children[0].(*query.WordTerm)
		require.True(t, ok)
		assert.Equal(t, want, word.Text)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", `And()`},
		{"blank", "   ", `And()`},
		{"implicit and", "lorem ipsum", `And(Word("lorem"), Word("ipsum"))`},
		{"or binds looser", "a b OR c", `Or(And(Word("a"), Word("b")), And(Word("c")))`},
		{"negation", "-a", `And(Not(Word("a")))`},
		{"negated group", "-(a OR b)", `And(Not(Or(And(Word("a")), And(Word("b")))))`},
		{"phrase", `"lorem ipsum"`, `And(Phrase("lorem ipsum"))`},
		{"regex", "/(lorem|ipsum)/", `And(Regex("(lorem|ipsum)"))`},
		{"file", "file:.jpg", `And(File(Word(".jpg")))`},
		{"path phrase", `path:"lorem ipsum"`, `And(Path(Phrase("lorem ipsum")))`},
		{"content", "content:x", `And(Content(Word("x")))`},
		{"match case", "match-case:Lorem", `And(MatchCase(Word("Lorem")))`},
		{"operator is case-insensitive", "MATCH-CASE:Lorem", `And(MatchCase(Word("Lorem")))`},
		{"ignore case", "ignore-case:Lorem", `And(IgnoreCase(Word("Lorem")))`},
		{"tag", "tag:lorem", `And(Tag("lorem"))`},
		{"tag with hash", "tag:#lorem", `And(Tag("lorem"))`},
		{"tag group", "tag:(a OR #b)", `And(Or(And(Tag("a")), And(Tag("b"))))`},
		{"line", "line:(lorem ipsum)", `And(Line(And(Word("lorem"), Word("ipsum"))))`},
		{"property", "[lorem]", `And(Property("lorem"))`},
		{"property value", "[lorem:ipsum]", `And(Property("lorem", And(Word("ipsum"))))`},
		{"property or", "[lorem:ipsum OR dolor]", `And(Property("lorem", Or(And(Word("ipsum")), And(Word("dolor")))))`},
		{"property empty value", "[lorem:]", `And(Property("lorem"))`},
		{"property name with spaces", "[my prop:x]", `And(Property("my prop", And(Word("x"))))`},
		{"colon inside word", "foo:bar", `And(Word("foo:bar"))`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, query.Parse(tc.input).String())
		})
	}
}

func TestParseRecovery(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  string
		codes []query.ErrorCode
	}{
		{"unclosed group", "(a b", `And(And(Word("a"), Word("b")))`, []query.ErrorCode{query.ErrorCodeUnclosedGroup}},
		{"stray paren", "a)", `And(Word("a"))`, []query.ErrorCode{query.ErrorCodeUnexpectedToken}},
		{"unclosed property", "[lorem", `And(Property("lorem"))`, []query.ErrorCode{query.ErrorCodeUnclosedProperty}},
		{"unclosed phrase", `"lorem ipsum`, `And(Phrase("lorem ipsum"))`, []query.ErrorCode{query.ErrorCodeUnclosedPhrase}},
		{"unclosed regex", "/abc", `And(Word("/abc"))`, []query.ErrorCode{query.ErrorCodeUnclosedRegex}},
		{"trailing or", "a OR", `And(Word("a"))`, []query.ErrorCode{query.ErrorCodeEmptyAlternative}},
		{"leading or", "OR a", `And(Word("a"))`, []query.ErrorCode{query.ErrorCodeEmptyAlternative}},
		{"detached operator argument", "file: x", `And(File(), Word("x"))`, []query.ErrorCode{query.ErrorCodeMissingArgument}},
		{"operator at end", "file:", `And(File())`, []query.ErrorCode{query.ErrorCodeMissingArgument}},
		{"well formed", "a OR b", `Or(And(Word("a")), And(Word("b")))`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			expr, diagnostics := query.ParseWithDiagnostics(tc.input)
			assert.Equal(t, tc.want, expr.String())

			var codes []query.ErrorCode
			for _, diag := range diagnostics {
				codes = append(codes, diag.Code)
			}

			assert.Equal(t, tc.codes, codes)
		})
	}
}

func TestParseNeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"(((", ")))", "[[[", "]]]", `"`, "/", "-", "--a", "- -", "OR OR OR",
		"[a:(b]", "tag:", "line:", "(a OR (b", "[:x]", "[a:b:c]", "\x00", "é/",
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			expr := query.Parse(input)
			query.Compile(expr)(&query.EvalContext{Content: "x"})
		}, input)
	}
}
