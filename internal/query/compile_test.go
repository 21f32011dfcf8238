package query_test

import (
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/stretchr/testify/assert"
)

type matchCase struct {
	ctx  *query.EvalContext
	want bool
}

func content(text string) *query.EvalContext {
	return &query.EvalContext{Content: text}
}

func named(name, text string) *query.EvalContext {
	return &query.EvalContext{Document: &document.Document{Name: name, Path: name}, Content: text}
}

func atPath(path string) *query.EvalContext {
	return &query.EvalContext{Document: &document.Document{Path: path}}
}

func tagged(tags ...string) *query.EvalContext {
	return &query.EvalContext{Tags: tags}
}

func withFrontmatter(fields map[string]any) *query.EvalContext {
	return &query.EvalContext{Frontmatter: fields}
}

func sensitive(ctx *query.EvalContext) *query.EvalContext {
	ctx.CaseSensitive = true
	return ctx
}

func TestCompile(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		query string
		cases []matchCase
	}{
		{"lorem", []matchCase{
			{content("lorem ipsum"), true},
			{content("Lorem"), true},
			{content("ipsum"), false},
			{named("lorem ipsum", ""), true},
		}},
		{"-lorem", []matchCase{
			{content("lorem ipsum"), false},
			{content("Lorem"), false},
			{content("ipsum"), true},
		}},
		{"lorem ipsum OR dolor sic", []matchCase{
			{content("lorem ipsum"), true},
			{content("dolor sic"), true},
			{content("lorem dolor"), false},
		}},
		{"lorem ipsum", []matchCase{
			{content("ipsum lorem"), true},
			{content("lorem"), false},
		}},
		{"lorem OR ipsum", []matchCase{
			{content("lorem ipsum"), true},
			{content("ipsum"), true},
			{content("lorem"), true},
			{content("dolor"), false},
		}},
		{"-(lorem OR ipsum)", []matchCase{
			{content("lorem ipsum"), false},
			{content("ipsum"), false},
			{content("lorem"), false},
			{content("dolor"), true},
		}},
		{"lorem -(ipsum OR dolor)", []matchCase{
			{content("lorem"), true},
			{content("lorem ipsum"), false},
			{content("lorem dolor"), false},
			{content("sic amet"), false},
		}},
		{"lorem ipsum OR dolor", []matchCase{
			{content("ipsum lorem"), true},
			{content("dolor"), true},
			{content("lorem"), false},
		}},
		{`"lorem ipsum"`, []matchCase{
			{content("lorem ipsum"), true},
			{content("ipsum lorem"), false},
		}},
		{`"lorem ipsum" OR dolor`, []matchCase{
			{content("lorem ipsum"), true},
			{content("dolor"), true},
			{content("ipsum lorem"), false},
		}},
		{"/(lorem|ipsum)/", []matchCase{
			{content("lorem ipsum"), true},
			{content("ipsum lorem"), true},
			{content("dolor"), false},
		}},
		{"/Lorem/", []matchCase{
			{content("lorem"), false},
			{content("Lorem"), true},
			{named("Lorem.md", ""), true},
		}},
		{"ignore-case:/Lorem/", []matchCase{
			{content("lorem"), true},
		}},
		{"/(unclosed/", []matchCase{
			{content("(unclosed"), false},
		}},
		{"/(unclosed/ OR x", []matchCase{
			{content("x"), true},
		}},
		{"file:.jpg", []matchCase{
			{named("lorem.jpg", ""), true},
			{named("lorem.png", ""), false},
			{named("lorem.png", ".jpg"), false},
		}},
		{"file:.jpg OR lorem", []matchCase{
			{named("dolor.jpg", ""), true},
			{named("dolor.png", ""), false},
			{named("dolor.png", "lorem"), true},
		}},
		{"path:lorem/ipsum", []matchCase{
			{atPath("lorem/ipsum/"), true},
			{atPath("lorem/dolor"), false},
		}},
		{`path:"lorem ipsum"`, []matchCase{
			{atPath("lorem ipsum/"), true},
			{atPath("/lorem/dolor"), false},
		}},
		{`content:"lorem ipsum"`, []matchCase{
			{content("lorem ipsum"), true},
			{content("ipsum lorem"), false},
			{named("lorem ipsum", ""), false},
		}},
		{"match-case:Lorem", []matchCase{
			{content("Lorem ipsum"), true},
			{content("lorem ipsum"), false},
		}},
		{"ignore-case:Lorem", []matchCase{
			{content("Lorem ipsum"), true},
			{content("lorem ipsum"), true},
			{sensitive(content("lorem ipsum")), true},
		}},
		{"Lorem", []matchCase{
			{sensitive(content("lorem")), false},
			{sensitive(content("Lorem")), true},
		}},
		{"line:(lorem ipsum)", []matchCase{
			{content("lorem ipsum"), true},
			{content("lorem\nipsum"), false},
			{content("dolor\nipsum and lorem"), true},
			{content(""), false},
		}},
		{"tag:lorem", []matchCase{
			{tagged("lorem"), true},
			{tagged("ipsum"), false},
			{tagged("Lorem"), true},
			{sensitive(tagged("Lorem")), false},
		}},
		{"tag:#lorem", []matchCase{
			{tagged("lorem"), true},
			{tagged("ipsum"), false},
		}},
		{"tag:(lorem OR ipsum)", []matchCase{
			{tagged("ipsum"), true},
			{tagged("dolor"), false},
		}},
		{"[lorem]", []matchCase{
			{withFrontmatter(map[string]any{"lorem": true}), true},
			{withFrontmatter(map[string]any{"ipsum": true}), false},
			{withFrontmatter(map[string]any{"Lorem-key": nil}), true},
			{content("lorem"), false},
		}},
		{"[lorem:ipsum]", []matchCase{
			{withFrontmatter(map[string]any{"lorem": "ipsum"}), true},
			{withFrontmatter(map[string]any{"lorem": "lorem"}), false},
			{withFrontmatter(map[string]any{"lorem": "dolor"}), false},
			{withFrontmatter(map[string]any{"ipsum": "ipsum"}), false},
		}},
		{"[lorem:ipsum OR dolor]", []matchCase{
			{withFrontmatter(map[string]any{"lorem": "ipsum"}), true},
			{withFrontmatter(map[string]any{"lorem": "dolor"}), true},
			{withFrontmatter(map[string]any{"lorem": "lorem"}), false},
		}},
		{"[author:bob]", []matchCase{
			{withFrontmatter(map[string]any{"authors": []any{"ann", "bob"}}), true},
			{withFrontmatter(map[string]any{"authors": map[string]any{"bob": 1}}), false},
		}},
		{"[count:3]", []matchCase{
			{withFrontmatter(map[string]any{"count": 3}), true},
			{withFrontmatter(map[string]any{"count": 4}), false},
		}},
		{"", []matchCase{
			{content(""), true},
			{content("anything"), true},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()

			predicate := query.Compile(query.Parse(tc.query))

			for _, c := range tc.cases {
				assert.Equal(t, c.want, predicate(c.ctx), "content=%q tags=%v frontmatter=%v", c.ctx.Content, c.ctx.Tags, c.ctx.Frontmatter)
			}
		})
	}
}

func TestCompileTotality(t *testing.T) {
	t.Parallel()

	exprs := []query.Expression{
		nil,
		&query.AndExpression{},
		&query.OrExpression{},
		&query.NotExpression{},
		&query.FileOperator{},
		&query.PathOperator{},
		&query.ContentOperator{},
		&query.MatchCaseOperator{},
		&query.IgnoreCaseOperator{},
		&query.LineOperator{},
		&query.TagOperator{},
		&query.WordTerm{},
		&query.PhraseTerm{},
	}

	for _, expr := range exprs {
		assert.NotPanics(t, func() {
			query.Compile(expr)(&query.EvalContext{})
		})
	}

	assert.True(t, query.Compile(&query.OrExpression{})(&query.EvalContext{}))
	assert.True(t, query.Compile(&query.TagOperator{})(&query.EvalContext{}))
	assert.False(t, query.Compile(&query.NotExpression{})(&query.EvalContext{}))
}

func TestNewEvalContext(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	doc := document.New("notes/a.md", stamp, stamp, 0)
	contents := document.Parse("---\nstatus: done\n---\nbody #x")

	ctx := query.NewEvalContext(doc, contents, true)

	assert.Equal(t, doc, ctx.Document)
	assert.Equal(t, []string{"x"}, ctx.Tags)
	assert.Equal(t, "done", ctx.Frontmatter["status"])
	assert.True(t, ctx.CaseSensitive)

	empty := query.NewEvalContext(doc, nil, false)
	assert.Empty(t, empty.Content)
	assert.Nil(t, empty.Frontmatter)
}
