package query

import (
	"strconv"
	"strings"
)

// WalkExpressions traverses the expression tree depth-first, calling fn for each node.
// The traversal continues to child nodes only if fn returns true.
func WalkExpressions(expr Expression, fn func(Expression) bool) {
	if expr == nil {
		return
	}

	if !fn(expr) {
		return
	}

	switch node := expr.(type) {
	case *AndExpression:
		for _, child := range node.Children {
			WalkExpressions(child, fn)
		}
	case *OrExpression:
		for _, child := range node.Children {
			WalkExpressions(child, fn)
		}
	case *NotExpression:
		WalkExpressions(node.Child, fn)
	case *FileOperator:
		WalkExpressions(node.Arg, fn)
	case *PathOperator:
		WalkExpressions(node.Arg, fn)
	case *ContentOperator:
		WalkExpressions(node.Arg, fn)
	case *MatchCaseOperator:
		WalkExpressions(node.Arg, fn)
	case *IgnoreCaseOperator:
		WalkExpressions(node.Arg, fn)
	case *LineOperator:
		WalkExpressions(node.Arg, fn)
	case *PropertyOperator:
		WalkExpressions(node.Value, fn)
	}
}

// InvalidRegexes returns the regex terms of the tree whose pattern does not compile.
func InvalidRegexes(expr Expression) []*RegexTerm {
	var invalid []*RegexTerm

	WalkExpressions(expr, func(node Expression) bool {
		if term, ok := node.(*RegexTerm); ok {
			if _, err := term.Regexp(); err != nil {
				invalid = append(invalid, term)
			}
		}

		return true
	})

	return invalid
}

// Tree renders the expression as an indented tree, one node per line.
func Tree(expr Expression) string {
	var sb strings.Builder

	writeTree(&sb, expr, 0)

	return sb.String()
}

func writeTree(sb *strings.Builder, expr Expression, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))

	var children []Expression

	switch node := expr.(type) {
	case nil:
		sb.WriteString("(empty)\n")
		return
	case *AndExpression:
		sb.WriteString("And\n")
		children = node.Children
	case *OrExpression:
		sb.WriteString("Or\n")
		children = node.Children
	case *NotExpression:
		sb.WriteString("Not\n")
		children = []Expression{node.Child}
	case *FileOperator:
		sb.WriteString("File\n")
		children = []Expression{node.Arg}
	case *PathOperator:
		sb.WriteString("Path\n")
		children = []Expression{node.Arg}
	case *ContentOperator:
		sb.WriteString("Content\n")
		children = []Expression{node.Arg}
	case *MatchCaseOperator:
		sb.WriteString("MatchCase\n")
		children = []Expression{node.Arg}
	case *IgnoreCaseOperator:
		sb.WriteString("IgnoreCase\n")
		children = []Expression{node.Arg}
	case *LineOperator:
		sb.WriteString("Line\n")
		children = []Expression{node.Arg}
	case *PropertyOperator:
		sb.WriteString("Property " + strconv.Quote(node.Name) + "\n")

		if node.Value != nil {
			children = []Expression{node.Value}
		}
	default:
		sb.WriteString(expr.String() + "\n")
		return
	}

	for _, child := range children {
		writeTree(sb, child, depth+1)
	}
}
