package query

// GetHint returns a short suggestion for the given diagnostic, or an empty string.
func GetHint(err *ParseError) string {
	switch err.Code {
	case ErrorCodeUnclosedGroup:
		return "Add a closing ')'; until then the group extends to the end of the query."
	case ErrorCodeUnclosedProperty:
		return "Add a closing ']', e.g. [status:done]."
	case ErrorCodeUnclosedPhrase:
		return "Add a closing '\"'; the phrase currently runs to the end of the query."
	case ErrorCodeUnclosedRegex:
		return "Regular expressions are written /pattern/; without the closing slash the text is searched literally."
	case ErrorCodeMissingArgument:
		return "Operators need a value right after the colon, e.g. file:.png or tag:#todo."
	case ErrorCodeEmptyAlternative:
		return "Each side of OR needs at least one term."
	case ErrorCodeInvalidRegex:
		return "The pattern uses RE2 syntax; lookarounds and backreferences are not supported."
	case ErrorCodeUnexpectedToken, ErrorCodeMissingNegationTerm, ErrorCodeUnknown:
	}

	return ""
}
