package query

import "fmt"

// ErrorCode identifies the kind of problem the parser recovered from.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeUnclosedGroup
	ErrorCodeUnclosedProperty
	ErrorCodeUnclosedPhrase
	ErrorCodeUnclosedRegex
	ErrorCodeUnexpectedToken
	ErrorCodeMissingArgument
	ErrorCodeMissingNegationTerm
	ErrorCodeEmptyAlternative
	ErrorCodeInvalidRegex
)

// ParseError describes a malformed fragment of a query. Parsing never fails,
// so these are diagnostics: the expression tree is still usable.
type ParseError struct {
	Title    string
	Message  string
	Query    string
	Position int
	Length   int
	Code     ErrorCode
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

var errorTitles = map[ErrorCode]string{
	ErrorCodeUnclosedGroup:       "Unclosed group",
	ErrorCodeUnclosedProperty:    "Unclosed property",
	ErrorCodeUnclosedPhrase:      "Unclosed phrase",
	ErrorCodeUnclosedRegex:       "Unclosed regular expression",
	ErrorCodeUnexpectedToken:     "Unexpected token",
	ErrorCodeMissingArgument:     "Missing operator argument",
	ErrorCodeMissingNegationTerm: "Nothing to negate",
	ErrorCodeEmptyAlternative:    "Empty alternative",
	ErrorCodeInvalidRegex:        "Invalid regular expression",
}

// NewParseError creates a diagnostic for the given query fragment.
func NewParseError(code ErrorCode, query, message string, position, length int) *ParseError {
	title, ok := errorTitles[code]
	if !ok {
		title = "Malformed query"
	}

	return &ParseError{
		Title:    title,
		Message:  message,
		Query:    query,
		Position: position,
		Length:   length,
		Code:     code,
	}
}
