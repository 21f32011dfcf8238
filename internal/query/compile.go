package query

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gruntwork-io/notecards/internal/document"
)

// EvalContext is everything a predicate may look at for one document.
// Absent fields are left zero: absent content, tags or frontmatter never match.
// A context memoizes folded text and belongs to a single evaluation.
type EvalContext struct {
	Document      *document.Document
	Content       string
	Tags          []string
	Frontmatter   map[string]any
	CaseSensitive bool

	loweredContent string
	lowered        bool
}

// NewEvalContext builds the context of a document from the contents read by an accessor.
func NewEvalContext(doc *document.Document, contents *document.Contents, caseSensitive bool) *EvalContext {
	ctx := &EvalContext{
		Document:      doc,
		CaseSensitive: caseSensitive,
	}

	if contents != nil {
		ctx.Content = contents.Content
		ctx.Tags = contents.Tags
		ctx.Frontmatter = contents.Frontmatter
	}

	return ctx
}

// Predicate reports whether a document matches.
type Predicate func(ctx *EvalContext) bool

// surface is the text a term is matched against.
type surface uint8

const (
	surfaceContentOrName surface = iota
	surfaceName
	surfacePath
	surfaceContent
)

// caseRule overrides the ambient case sensitivity.
type caseRule uint8

const (
	caseAmbient caseRule = iota
	caseSensitive
	caseInsensitive
)

// scope is inherited from enclosing operators while compiling.
type scope struct {
	surface surface
	rule    caseRule
}

func (s scope) sensitive(ctx *EvalContext) bool {
	switch s.rule {
	case caseSensitive:
		return true
	case caseInsensitive:
		return false
	case caseAmbient:
	}

	return ctx.CaseSensitive
}

var (
	alwaysTrue  Predicate = func(*EvalContext) bool { return true }
	alwaysFalse Predicate = func(*EvalContext) bool { return false }
)

// Compile turns an expression tree into a predicate. Every node kind has a
// defined meaning, missing sub-expressions match everything, and an invalid
// regular expression makes only its own term false.
func Compile(expr Expression) Predicate {
	return compile(expr, scope{})
}

func compile(expr Expression, sc scope) Predicate {
	switch node := expr.(type) {
	case nil:
		return alwaysTrue
	case *AndExpression:
		return compileAnd(node.Children, sc)
	case *OrExpression:
		return compileOr(node.Children, sc)
	case *NotExpression:
		child := compile(node.Child, sc)

		return func(ctx *EvalContext) bool {
			return !child(ctx)
		}
	case *WordTerm:
		return compileText(node.Text, sc)
	case *PhraseTerm:
		return compileText(node.Text, sc)
	case *RegexTerm:
		return compileRegex(node, sc)
	case *FileOperator:
		return compileArg(node.Arg, scope{surface: surfaceName, rule: sc.rule})
	case *PathOperator:
		return compileArg(node.Arg, scope{surface: surfacePath, rule: sc.rule})
	case *ContentOperator:
		return compileArg(node.Arg, scope{surface: surfaceContent, rule: sc.rule})
	case *MatchCaseOperator:
		return compileArg(node.Arg, scope{surface: sc.surface, rule: caseSensitive})
	case *IgnoreCaseOperator:
		return compileArg(node.Arg, scope{surface: sc.surface, rule: caseInsensitive})
	case *TagOperator:
		return compileTag(node.Name, sc)
	case *LineOperator:
		return compileLine(node, sc)
	case *PropertyOperator:
		return compileProperty(node, sc)
	}

	return alwaysTrue
}

func compileArg(arg Expression, sc scope) Predicate {
	if arg == nil {
		return alwaysTrue
	}

	return compile(arg, sc)
}

func compileAnd(children []Expression, sc scope) Predicate {
	switch len(children) {
	case 0:
		return alwaysTrue
	case 1:
		return compile(children[0], sc)
	}

	preds := make([]Predicate, len(children))
	for i, child := range children {
		preds[i] = compile(child, sc)
	}

	return func(ctx *EvalContext) bool {
		for _, pred := range preds {
			if !pred(ctx) {
				return false
			}
		}

		return true
	}
}

func compileOr(children []Expression, sc scope) Predicate {
	switch len(children) {
	case 0:
		return alwaysTrue
	case 1:
		return compile(children[0], sc)
	}

	preds := make([]Predicate, len(children))
	for i, child := range children {
		preds[i] = compile(child, sc)
	}

	return func(ctx *EvalContext) bool {
		for _, pred := range preds {
			if pred(ctx) {
				return true
			}
		}

		return false
	}
}

func compileText(text string, sc scope) Predicate {
	if text == "" {
		return alwaysTrue
	}

	lowered := strings.ToLower(text)

	return func(ctx *EvalContext) bool {
		if sc.sensitive(ctx) {
			return ctx.matchSurface(sc.surface, false, func(s string) bool {
				return strings.Contains(s, text)
			})
		}

		return ctx.matchSurface(sc.surface, true, func(s string) bool {
			return strings.Contains(s, lowered)
		})
	}
}

func compileRegex(term *RegexTerm, sc scope) Predicate {
	re, err := term.Regexp()
	if err != nil {
		return alwaysFalse
	}

	if sc.rule == caseInsensitive {
		if re, err = regexp.Compile("(?i)" + term.Pattern); err != nil {
			return alwaysFalse
		}
	}

	return func(ctx *EvalContext) bool {
		return ctx.matchSurface(sc.surface, false, re.MatchString)
	}
}

func compileTag(name string, sc scope) Predicate {
	name = NormalizeTag(name)
	if name == "" {
		return alwaysTrue
	}

	return func(ctx *EvalContext) bool {
		sensitive := sc.sensitive(ctx)

		for _, tag := range ctx.Tags {
			tag = NormalizeTag(tag)

			if tag == name || (!sensitive && strings.EqualFold(tag, name)) {
				return true
			}
		}

		return false
	}
}

func compileLine(node *LineOperator, sc scope) Predicate {
	if node.Arg == nil {
		return alwaysTrue
	}

	inner := compile(node.Arg, scope{surface: surfaceContent, rule: sc.rule})

	return func(ctx *EvalContext) bool {
		if ctx.Content == "" {
			return false
		}

		for line := range strings.SplitSeq(ctx.Content, "\n") {
			if inner(ctx.withContent(line)) {
				return true
			}
		}

		return false
	}
}

func compileProperty(node *PropertyOperator, sc scope) Predicate {
	name := node.Name
	loweredName := strings.ToLower(name)

	var value Predicate
	if node.Value != nil {
		value = compile(node.Value, scope{surface: surfaceContent, rule: sc.rule})
	}

	return func(ctx *EvalContext) bool {
		if len(ctx.Frontmatter) == 0 {
			return false
		}

		sensitive := sc.sensitive(ctx)

		for key, val := range ctx.Frontmatter {
			if sensitive {
				if !strings.Contains(key, name) {
					continue
				}
			} else if !strings.Contains(strings.ToLower(key), loweredName) {
				continue
			}

			if value == nil {
				return true
			}

			for _, str := range propertyStrings(val) {
				valueCtx := &EvalContext{Content: str, CaseSensitive: ctx.CaseSensitive}
				if value(valueCtx) {
					return true
				}
			}
		}

		return false
	}
}

// propertyStrings flattens a frontmatter value into the strings a value expression is matched against.
// Lists contribute each element; maps and nulls contribute nothing.
func propertyStrings(val any) []string {
	switch v := val.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		var out []string
		for _, elem := range v {
			out = append(out, propertyStrings(elem)...)
		}

		return out
	case map[string]any:
		return nil
	}

	return []string{fmt.Sprint(val)}
}

// withContent returns a copy of the context whose content is replaced.
func (ctx *EvalContext) withContent(content string) *EvalContext {
	return &EvalContext{
		Document:      ctx.Document,
		Content:       content,
		Tags:          ctx.Tags,
		Frontmatter:   ctx.Frontmatter,
		CaseSensitive: ctx.CaseSensitive,
	}
}

func (ctx *EvalContext) content(folded bool) string {
	if !folded {
		return ctx.Content
	}

	if !ctx.lowered {
		ctx.loweredContent = strings.ToLower(ctx.Content)
		ctx.lowered = true
	}

	return ctx.loweredContent
}

func (ctx *EvalContext) name(folded bool) string {
	if ctx.Document == nil {
		return ""
	}

	if folded {
		return strings.ToLower(ctx.Document.Name)
	}

	return ctx.Document.Name
}

func (ctx *EvalContext) path(folded bool) string {
	if ctx.Document == nil {
		return ""
	}

	if folded {
		return strings.ToLower(ctx.Document.Path)
	}

	return ctx.Document.Path
}

// matchSurface applies match to the non-empty texts of the surface.
func (ctx *EvalContext) matchSurface(s surface, folded bool, match func(string) bool) bool {
	try := func(text string) bool {
		return text != "" && match(text)
	}

	switch s {
	case surfaceName:
		return try(ctx.name(folded))
	case surfacePath:
		return try(ctx.path(folded))
	case surfaceContent:
		return try(ctx.content(folded))
	case surfaceContentOrName:
	}

	return try(ctx.content(folded)) || try(ctx.name(folded))
}
