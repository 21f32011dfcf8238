package query

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Expression is a node of the query expression tree. Trees are immutable once built.
type Expression interface {
	expressionNode()
	String() string
}

// AndExpression matches when every child matches. An empty And matches everything.
type AndExpression struct {
	Children []Expression
}

func (e *AndExpression) expressionNode() {}
func (e *AndExpression) String() string  { return "And(" + joinExpressions(e.Children) + ")" }

// OrExpression matches when any child matches. An empty Or matches everything.
type OrExpression struct {
	Children []Expression
}

func (e *OrExpression) expressionNode() {}
func (e *OrExpression) String() string  { return "Or(" + joinExpressions(e.Children) + ")" }

// NotExpression negates its child.
type NotExpression struct {
	Child Expression
}

func (e *NotExpression) expressionNode() {}
func (e *NotExpression) String() string  { return "Not(" + stringOrEmpty(e.Child) + ")" }

// WordTerm is a bare word, matched as a substring.
type WordTerm struct {
	Text string
}

func (e *WordTerm) expressionNode() {}
func (e *WordTerm) String() string  { return "Word(" + strconv.Quote(e.Text) + ")" }

// PhraseTerm is a quoted phrase, matched as an exact substring including spaces.
type PhraseTerm struct {
	Text string
}

func (e *PhraseTerm) expressionNode() {}
func (e *PhraseTerm) String() string  { return "Phrase(" + strconv.Quote(e.Text) + ")" }

// RegexTerm is a `/pattern/` term. The pattern is compiled lazily and at most once.
type RegexTerm struct {
	Pattern string

	once     sync.Once
	compiled *regexp.Regexp
	err      error
}

func (e *RegexTerm) expressionNode() {}
func (e *RegexTerm) String() string  { return "Regex(" + strconv.Quote(e.Pattern) + ")" }

// Regexp returns the compiled pattern.
func (e *RegexTerm) Regexp() (*regexp.Regexp, error) {
	e.once.Do(func() {
		e.compiled, e.err = regexp.Compile(e.Pattern)
	})

	return e.compiled, e.err
}

// FileOperator restricts its argument to the document name.
type FileOperator struct {
	Arg Expression
}

func (e *FileOperator) expressionNode() {}
func (e *FileOperator) String() string  { return "File(" + stringOrEmpty(e.Arg) + ")" }

// PathOperator restricts its argument to the document path.
type PathOperator struct {
	Arg Expression
}

func (e *PathOperator) expressionNode() {}
func (e *PathOperator) String() string  { return "Path(" + stringOrEmpty(e.Arg) + ")" }

// ContentOperator restricts its argument to the document content.
type ContentOperator struct {
	Arg Expression
}

func (e *ContentOperator) expressionNode() {}
func (e *ContentOperator) String() string  { return "Content(" + stringOrEmpty(e.Arg) + ")" }

// MatchCaseOperator makes its argument case-sensitive.
type MatchCaseOperator struct {
	Arg Expression
}

func (e *MatchCaseOperator) expressionNode() {}
func (e *MatchCaseOperator) String() string  { return "MatchCase(" + stringOrEmpty(e.Arg) + ")" }

// IgnoreCaseOperator makes its argument case-insensitive.
type IgnoreCaseOperator struct {
	Arg Expression
}

func (e *IgnoreCaseOperator) expressionNode() {}
func (e *IgnoreCaseOperator) String() string  { return "IgnoreCase(" + stringOrEmpty(e.Arg) + ")" }

// TagOperator matches documents carrying the tag Name, stored without the leading `#`.
type TagOperator struct {
	Name string
}

func (e *TagOperator) expressionNode() {}
func (e *TagOperator) String() string  { return "Tag(" + strconv.Quote(e.Name) + ")" }

// LineOperator evaluates its argument against every line of the content separately.
type LineOperator struct {
	Arg Expression
}

func (e *LineOperator) expressionNode() {}
func (e *LineOperator) String() string  { return "Line(" + stringOrEmpty(e.Arg) + ")" }

// PropertyOperator matches frontmatter keys containing Name. When Value is
// set, at least one matching key must also have a value satisfying it.
type PropertyOperator struct {
	Name  string
	Value Expression
}

func (e *PropertyOperator) expressionNode() {}
func (e *PropertyOperator) String() string {
	if e.Value == nil {
		return "Property(" + strconv.Quote(e.Name) + ")"
	}

	return "Property(" + strconv.Quote(e.Name) + ", " + e.Value.String() + ")"
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))

	for i, expr := range exprs {
		parts[i] = stringOrEmpty(expr)
	}

	return strings.Join(parts, ", ")
}

func stringOrEmpty(expr Expression) string {
	if expr == nil {
		return ""
	}

	return expr.String()
}
