package query

import (
	"context"
	"strings"
)

// Filter is a compiled query ready to be evaluated against documents.
type Filter struct {
	query       string
	expr        Expression
	predicate   Predicate
	diagnostics []*ParseError
}

// New parses and compiles query. Diagnostics include patterns that do not compile.
func New(query string) *Filter {
	expr, diagnostics := parseFilter(query)

	return &Filter{
		query:       query,
		expr:        expr,
		predicate:   Compile(expr),
		diagnostics: diagnostics,
	}
}

// Prepare is New with telemetry. A blank query has no filter and yields nil.
func Prepare(ctx context.Context, query string) *Filter {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	filter := &Filter{query: query}

	_ = TraceQueryParse(ctx, query, func(ctx context.Context) error {
		filter.expr, filter.diagnostics = parseFilter(query)
		return nil
	})

	_ = TraceQueryCompile(ctx, query, func(ctx context.Context) error {
		filter.predicate = Compile(filter.expr)
		return nil
	})

	return filter
}

func parseFilter(query string) (Expression, []*ParseError) {
	expr, diagnostics := ParseWithDiagnostics(query)

	for _, term := range InvalidRegexes(expr) {
		_, err := term.Regexp()

		position := max(strings.Index(query, "/"+term.Pattern), 0)
		diagnostics = append(diagnostics, NewParseError(ErrorCodeInvalidRegex, query, err.Error(), position, len(term.Pattern)+2))
	}

	return expr, diagnostics
}

// Match evaluates the filter. A nil filter matches everything.
func (f *Filter) Match(ctx *EvalContext) bool {
	if f == nil {
		return true
	}

	return f.predicate(ctx)
}

// String returns the original query.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}

	return f.query
}

// Expression returns the parsed tree.
func (f *Filter) Expression() Expression {
	if f == nil {
		return nil
	}

	return f.expr
}

// Diagnostics returns what the parser recovered from.
func (f *Filter) Diagnostics() []*ParseError {
	if f == nil {
		return nil
	}

	return f.diagnostics
}
