package query

import "strings"

// Parser builds an expression tree from a query. It never fails: malformed
// fragments are dropped or closed implicitly and reported as diagnostics.
type Parser struct {
	lexer       *Lexer
	query       string
	diagnostics []*ParseError
	// closers holds the delimiters that enclosing groups and properties are waiting for.
	closers   []TokenType
	curToken  Token
	peekToken Token
}

// NewParser creates a new Parser for the given query.
func NewParser(query string) *Parser {
	p := &Parser{
		lexer: NewLexer(query),
		query: query,
	}

	// Read two tokens to initialize curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

// Parse parses a query into an expression tree. A blank query yields an empty AndExpression.
func Parse(query string) Expression {
	return NewParser(query).ParseProgram()
}

// ParseWithDiagnostics parses a query and also returns what the parser had to recover from.
func ParseWithDiagnostics(query string) (Expression, []*ParseError) {
	p := NewParser(query)
	expr := p.ParseProgram()

	return expr, p.Diagnostics()
}

// ParseProgram parses the whole input.
func (p *Parser) ParseProgram() Expression {
	return p.parseOr(EOF)
}

// Diagnostics returns the problems recovered from while parsing.
func (p *Parser) Diagnostics() []*ParseError {
	return p.diagnostics
}

// parseOr parses `And ("OR" And)*` until EOF or the given closer.
func (p *Parser) parseOr(closer TokenType) Expression {
	branches := []*AndExpression{p.parseAnd(closer)}

	for p.curTokenIs(OR) {
		orToken := p.curToken
		p.nextToken()

		branch := p.parseAnd(closer)

		if len(branch.Children) == 0 || len(branches[len(branches)-1].Children) == 0 {
			p.addError(ErrorCodeEmptyAlternative, "OR without a term on both sides", orToken)
		}

		branches = append(branches, branch)
	}

	if len(branches) == 1 {
		return branches[0]
	}

	nonEmpty := make([]Expression, 0, len(branches))

	for _, branch := range branches {
		if len(branch.Children) > 0 {
			nonEmpty = append(nonEmpty, branch)
		}
	}

	switch len(nonEmpty) {
	case 0:
		return branches[0]
	case 1:
		return nonEmpty[0]
	}

	return &OrExpression{Children: nonEmpty}
}

// parseAnd parses a run of unary expressions.
func (p *Parser) parseAnd(closer TokenType) *AndExpression {
	and := &AndExpression{}

	for {
		switch p.curToken.Type {
		case EOF, OR:
			return and
		case closer:
			return and
		case RPAREN, RBRACKET:
			if p.awaited(p.curToken.Type) {
				return and
			}

			p.addError(ErrorCodeUnexpectedToken, "unmatched '"+p.curToken.Literal+"' ignored", p.curToken)
			p.nextToken()

			continue
		}

		if expr := p.parseUnary(); expr != nil {
			and.Children = append(and.Children, expr)
		}
	}
}

// parseUnary parses one term, possibly negated. It returns nil if the current token cannot start a term;
// the token is consumed in that case.
func (p *Parser) parseUnary() Expression {
	tok := p.curToken

	switch tok.Type {
	case MINUS:
		p.nextToken()

		if !p.startsTerm() {
			p.addError(ErrorCodeMissingNegationTerm, "'-' is not followed by a term", tok)
			return nil
		}

		child := p.parseUnary()
		if child == nil {
			return nil
		}

		return &NotExpression{Child: child}
	case LPAREN:
		return p.parseGroup()
	case LBRACKET:
		return p.parseProperty()
	case OPERATOR:
		return p.parseOperator()
	case REGEX:
		p.nextToken()
		return &RegexTerm{Pattern: tok.Literal}
	case PHRASE:
		if tok.Unclosed {
			p.addError(ErrorCodeUnclosedPhrase, "phrase is missing its closing quote", tok)
		}

		p.nextToken()

		return &PhraseTerm{Text: tok.Literal}
	case WORD:
		if tok.Unclosed {
			p.addError(ErrorCodeUnclosedRegex, "regular expression is missing its closing slash", tok)
		}

		p.nextToken()

		return &WordTerm{Text: tok.Literal}
	case COLON:
		p.nextToken()
		return &WordTerm{Text: tok.Literal}
	case EOF, OR, RPAREN, RBRACKET:
	}

	p.addError(ErrorCodeUnexpectedToken, "unexpected '"+tok.Literal+"'", tok)
	p.nextToken()

	return nil
}

// parseGroup parses `"(" Or ")"`. A missing `)` closes the group at the end of its enclosing scope.
func (p *Parser) parseGroup() Expression {
	open := p.curToken
	p.nextToken()

	p.pushCloser(RPAREN)
	inner := p.parseOr(RPAREN)
	p.popCloser()

	if p.curTokenIs(RPAREN) {
		p.nextToken()
	} else {
		p.addError(ErrorCodeUnclosedGroup, "'(' is never closed", open)
	}

	return inner
}

// parseProperty parses `"[" name (":" PropValueOr)? "]"`.
func (p *Parser) parseProperty() Expression {
	open := p.curToken
	p.nextToken()

	var nameParts []string

	for p.curTokenIs(WORD) || p.curTokenIs(PHRASE) {
		nameParts = append(nameParts, p.curToken.Literal)
		p.nextToken()
	}

	property := &PropertyOperator{Name: strings.Join(nameParts, " ")}

	if p.curTokenIs(COLON) {
		p.nextToken()

		p.pushCloser(RBRACKET)
		value := p.parseOr(RBRACKET)
		p.popCloser()

		if and, ok := value.(*AndExpression); !ok || len(and.Children) > 0 {
			property.Value = value
		}
	}

	if p.curTokenIs(RBRACKET) {
		p.nextToken()
	} else {
		p.addError(ErrorCodeUnclosedProperty, "'[' is never closed", open)
	}

	return property
}

// parseOperator parses `name ":" argument`. The argument must directly follow the colon.
func (p *Parser) parseOperator() Expression {
	op := p.curToken
	adjacent := p.peekToken.Position == op.End

	p.nextToken()

	var arg Expression

	if adjacent && p.startsTerm() {
		arg = p.parseUnary()
	}

	if arg == nil {
		p.addError(ErrorCodeMissingArgument, op.Literal+": has no argument", op)
	}

	switch strings.ToLower(op.Literal) {
	case OperatorFile:
		return &FileOperator{Arg: arg}
	case OperatorPath:
		return &PathOperator{Arg: arg}
	case OperatorContent:
		return &ContentOperator{Arg: arg}
	case OperatorMatchCase:
		return &MatchCaseOperator{Arg: arg}
	case OperatorIgnoreCase:
		return &IgnoreCaseOperator{Arg: arg}
	case OperatorLine:
		return &LineOperator{Arg: arg}
	case OperatorTag:
		return tagExpression(arg)
	}

	return &AndExpression{}
}

// tagExpression turns the argument of `tag:` into tag matches. Words and
// phrases inside a group each become a tag; other nodes keep their meaning.
func tagExpression(arg Expression) Expression {
	switch node := arg.(type) {
	case nil:
		return &TagOperator{}
	case *WordTerm:
		return &TagOperator{Name: NormalizeTag(node.Text)}
	case *PhraseTerm:
		return &TagOperator{Name: NormalizeTag(node.Text)}
	case *NotExpression:
		return &NotExpression{Child: tagExpression(node.Child)}
	case *AndExpression:
		return &AndExpression{Children: tagExpressions(node.Children)}
	case *OrExpression:
		return &OrExpression{Children: tagExpressions(node.Children)}
	}

	return arg
}

func tagExpressions(exprs []Expression) []Expression {
	out := make([]Expression, len(exprs))

	for i, expr := range exprs {
		out[i] = tagExpression(expr)
	}

	return out
}

// NormalizeTag strips the leading `#` of a tag.
func NormalizeTag(tag string) string {
	return strings.TrimPrefix(tag, "#")
}

// startsTerm reports whether the current token can begin a unary expression.
func (p *Parser) startsTerm() bool {
	switch p.curToken.Type {
	case WORD, PHRASE, REGEX, MINUS, LPAREN, LBRACKET, OPERATOR:
		return true
	case EOF, OR, RPAREN, RBRACKET, COLON:
	}

	return false
}

// awaited reports whether an enclosing group or property is waiting for the closer.
func (p *Parser) awaited(closer TokenType) bool {
	for _, c := range p.closers {
		if c == closer {
			return true
		}
	}

	return false
}

func (p *Parser) pushCloser(closer TokenType) {
	p.closers = append(p.closers, closer)
}

func (p *Parser) popCloser() {
	p.closers = p.closers[:len(p.closers)-1]
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) curTokenIs(t TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) addError(code ErrorCode, message string, tok Token) {
	p.diagnostics = append(p.diagnostics, NewParseError(code, p.query, message, tok.Position, max(tok.End-tok.Position, 1)))
}
