package parse

import (
	"context"
	"fmt"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/gruntwork-io/notecards/pkg/log"
)

// Diagnostic is the JSON form of a recovered parse problem.
type Diagnostic struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
	Position int    `json:"position"`
	Length   int    `json:"length"`
}

// Output is the JSON form of the command output.
type Output struct {
	Query       string       `json:"query"`
	Expression  string       `json:"expression"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Run parses queryText and prints the result.
func Run(ctx context.Context, opts *Options, queryText string) error {
	filter := query.Prepare(ctx, queryText)

	expression := filter.Expression()
	if expression == nil {
		expression = &query.AndExpression{}
	}

	if opts.JSON {
		output := Output{
			Query:       queryText,
			Expression:  expression.String(),
			Diagnostics: []Diagnostic{},
		}

		for _, diag := range filter.Diagnostics() {
			output.Diagnostics = append(output.Diagnostics, Diagnostic{
				Title:    diag.Title,
				Message:  diag.Message,
				Hint:     query.GetHint(diag),
				Position: diag.Position,
				Length:   diag.Length,
			})
		}

		return common.WriteJSON(opts.Writer, output)
	}

	if opts.Compact {
		fmt.Fprintln(opts.Writer, expression.String())
	} else {
		fmt.Fprint(opts.Writer, query.Tree(expression))
	}

	common.ReportDiagnostics(opts.Writer, filter, log.IsTerminal(opts.Writer))

	return nil
}
