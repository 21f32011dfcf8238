// Package query provides the parser and compiler for the note search language.
//
// # Overview
//
// A query goes through three stages:
//  1. Lexer: tokenizes the query, tracking whether it is inside a `[property]`
//  2. Parser: builds an expression tree, recovering from every malformed fragment
//  3. Compiler: turns the tree into a Predicate over an EvalContext
//
// Parsing never fails. What the parser had to recover from is reported as
// ParseError diagnostics, which FormatDiagnostic renders for a terminal.
//
// # Query Syntax
//
// ## Terms
//
//	lorem                   # Substring of the content or the file name
//	"lorem ipsum"           # Exact phrase, spaces included
//	/lo+rem/                # Regular expression (RE2), never case-folded
//
// Terms are case-insensitive unless case sensitivity is turned on.
//
// ## Boolean Operators
//
//	lorem ipsum             # Both terms (implicit AND)
//	lorem OR ipsum          # Either term; OR binds looser than AND
//	-lorem                  # Negation; binds tighter than AND
//	-(lorem OR ipsum)       # Negated group
//
// ## Field Operators
//
// An operator applies to the single term that directly follows its colon:
//
//	file:.jpg               # File name only
//	path:lorem/ipsum        # Vault-relative path only
//	content:"lorem ipsum"   # Content only
//	match-case:Lorem        # Case-sensitive
//	ignore-case:Lorem       # Case-insensitive
//	tag:lorem               # Tag, tag:#lorem is the same
//	line:(lorem ipsum)      # All terms on the same line
//
// ## Properties
//
//	[status]                # Frontmatter has a key containing "status"
//	[status:done]           # ... whose value contains "done"
//	[status:done OR wip]    # ... whose value contains either
//
// Keys are matched by substring. List values match when any element matches.
//
// # Usage
//
//	filter := query.New(`tag:project -[status:done]`)
//	ok := filter.Match(query.NewEvalContext(doc, contents, false))
package query
