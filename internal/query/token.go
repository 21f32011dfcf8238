package query

// TokenType identifies the kind of a lexical token.
type TokenType string

const (
	EOF TokenType = "EOF"

	WORD     TokenType = "WORD"     // lorem, foo:bar, lorem/ipsum
	PHRASE   TokenType = "PHRASE"   // "lorem ipsum"
	REGEX    TokenType = "REGEX"    // /lo+rem/
	OPERATOR TokenType = "OPERATOR" // file: path: content: tag: line: match-case: ignore-case:
	OR       TokenType = "OR"

	MINUS    TokenType = "-"
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"
	COLON    TokenType = ":"
)

// Token is a lexical token with its byte offset in the query.
type Token struct {
	Type    TokenType
	Literal string
	// Position is the byte offset of the first character of the token.
	Position int
	// End is the byte offset just past the token.
	End int
	// Unclosed is set on PHRASE and REGEX tokens whose closing delimiter is missing.
	Unclosed bool
}

// NewToken creates a new token.
func NewToken(tokenType TokenType, literal string, position, end int) Token {
	return Token{
		Type:     tokenType,
		Literal:  literal,
		Position: position,
		End:      end,
	}
}

// Operator names, matched case-insensitively.
const (
	OperatorFile       = "file"
	OperatorPath       = "path"
	OperatorContent    = "content"
	OperatorTag        = "tag"
	OperatorLine       = "line"
	OperatorMatchCase  = "match-case"
	OperatorIgnoreCase = "ignore-case"
)

var operatorNames = map[string]struct{}{
	OperatorFile:       {},
	OperatorPath:       {},
	OperatorContent:    {},
	OperatorTag:        {},
	OperatorLine:       {},
	OperatorMatchCase:  {},
	OperatorIgnoreCase: {},
}
