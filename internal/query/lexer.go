package query

import "strings"

type lexMode int

const (
	// modeDefault is used outside of brackets.
	modeDefault lexMode = iota
	// modePropertyName is used between `[` and the first `:`.
	modePropertyName
	// modePropertyValue is used between the property `:` and `]`.
	modePropertyValue
)

// Lexer tokenizes a query string.
//
// Tokenization depends on where the lexer is: inside `[name:value]` brackets
// colons and field operators lose their meaning, so the lexer tracks the
// bracket state itself rather than relying on the parser.
type Lexer struct {
	input        string  // The input string being tokenized
	position     int     // Current position in input (points to current char)
	readPosition int     // Current reading position in input (after current char)
	ch           byte    // Current char under examination
	mode         lexMode // Bracket state
}

// NewLexer creates a new Lexer for the given input string.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()

	return l
}

// NextToken reads and returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.position

	switch {
	case l.ch == 0:
		return NewToken(EOF, "", start, start)
	case l.ch == '"':
		return l.readPhrase()
	case l.ch == ']':
		l.readChar()
		l.mode = modeDefault

		return NewToken(RBRACKET, "]", start, l.position)
	case l.ch == ':' && l.mode == modePropertyName:
		l.readChar()
		l.mode = modePropertyValue

		return NewToken(COLON, ":", start, l.position)
	case l.mode == modePropertyName:
		return l.readWord()
	case l.ch == '[' && l.mode == modeDefault:
		l.readChar()
		l.mode = modePropertyName

		return NewToken(LBRACKET, "[", start, l.position)
	case l.ch == '(':
		l.readChar()
		return NewToken(LPAREN, "(", start, l.position)
	case l.ch == ')':
		l.readChar()
		return NewToken(RPAREN, ")", start, l.position)
	case l.ch == '-' && l.startsTerm(l.peekChar()):
		l.readChar()
		return NewToken(MINUS, "-", start, l.position)
	case l.ch == '/':
		return l.readRegex()
	}

	return l.readWord()
}

// Tokens returns all tokens up to and including EOF.
func (l *Lexer) Tokens() []Token {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == EOF {
			return tokens
		}
	}
}

// readWord reads a run of non-structural characters. In the default mode a
// word that starts with a known operator name and a colon yields only the
// operator; the argument is lexed as the next token.
func (l *Lexer) readWord() Token {
	start := l.position

	for l.ch != 0 && !l.isStructural(l.ch) {
		l.readChar()
	}

	literal := l.input[start:l.position]

	if l.mode == modePropertyName {
		return NewToken(WORD, literal, start, l.position)
	}

	if strings.EqualFold(literal, "OR") {
		return NewToken(OR, literal, start, l.position)
	}

	if l.mode == modeDefault {
		if idx := strings.IndexByte(literal, ':'); idx > 0 {
			if _, ok := operatorNames[strings.ToLower(literal[:idx])]; ok {
				l.seek(start + idx + 1)

				return NewToken(OPERATOR, literal[:idx], start, l.position)
			}
		}
	}

	return NewToken(WORD, literal, start, l.position)
}

// readPhrase reads a double-quoted phrase. The interior is literal.
func (l *Lexer) readPhrase() Token {
	start := l.position

	end := strings.IndexByte(l.input[start+1:], '"')
	if end < 0 {
		l.seek(len(l.input))

		tok := NewToken(PHRASE, l.input[start+1:], start, l.position)
		tok.Unclosed = true

		return tok
	}

	closing := start + 1 + end
	l.seek(closing + 1)

	return NewToken(PHRASE, l.input[start+1:closing], start, l.position)
}

// readRegex reads a `/pattern/` literal. A backslash escapes the next
// character, so `\/` does not terminate the pattern. Without a closing slash
// the text is lexed as a word instead.
func (l *Lexer) readRegex() Token {
	start := l.position
	l.readChar()

	for l.ch != 0 && l.ch != '/' {
		if l.ch == '\\' && l.peekChar() != 0 {
			l.readChar()
		}

		l.readChar()
	}

	if l.ch == 0 {
		l.seek(start)

		tok := l.readWord()
		tok.Unclosed = true

		return tok
	}

	pattern := l.input[start+1 : l.position]
	l.readChar()

	return NewToken(REGEX, pattern, start, l.position)
}

// startsTerm reports whether a `-` followed by ch negates a term.
func (l *Lexer) startsTerm(ch byte) bool {
	return ch != 0 && !isSpace(ch) && ch != ')' && ch != ']'
}

// isStructural reports whether ch ends a word in the current mode.
func (l *Lexer) isStructural(ch byte) bool {
	if isSpace(ch) {
		return true
	}

	switch l.mode {
	case modePropertyName:
		return ch == '"' || ch == ':' || ch == ']'
	case modePropertyValue:
		return ch == '"' || ch == '(' || ch == ')' || ch == ']'
	case modeDefault:
	}

	return ch == '"' || ch == '(' || ch == ')' || ch == '[' || ch == ']'
}

// readChar advances the lexer's position and updates the current character.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1

		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

// seek moves the lexer to the given byte offset.
func (l *Lexer) seek(pos int) {
	l.readPosition = pos
	l.readChar()
}

// peekChar returns the next character without advancing the position.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

// skipWhitespace skips over whitespace characters.
func (l *Lexer) skipWhitespace() {
	for l.ch != 0 && isSpace(l.ch) {
		l.readChar()
	}
}

// isSpace matches ASCII whitespace only, so that bytes of multi-byte UTF-8 sequences never split a word.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
}
