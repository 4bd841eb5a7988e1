// File: parser.go
// Title: TINY Recursive Descent Parser
// Description: Converts a TINY token sequence into an AST. One method per
//              grammar rule, one token of lookahead, no backtracking. The
//              parse stops at the first error and never returns a partial
//              tree.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-19 v0.2.0: TINY grammar over a materialized token sequence

package parser

import (
	tinylog "github.com/msto63/tiny/foundation/core/log"
	"github.com/msto63/tiny/foundation/tiny/ast"
	"github.com/msto63/tiny/foundation/tiny/lexer"
	"github.com/msto63/tiny/foundation/tiny/token"
)

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero
const DefaultMaxDepth = 256

// Parser implements recursive descent parsing for TINY
type Parser struct {
	tokens  []token.Token
	pos     int         // index of the current token
	current token.Token // current token
	depth   int         // active StmtSeq and Expr rules
	logger  *tinylog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	// MaxDepth bounds nested statement sequences and expressions.
	// Zero selects DefaultMaxDepth, a negative value disables the limit.
	MaxDepth int

	Logger *tinylog.Logger
}

// New creates a parser over a token sequence. The sequence is not copied
// and must not be modified while the parser is in use.
func New(tokens []token.Token, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = tinylog.GetDefault()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	p := &Parser{
		tokens:  tokens,
		logger:  opts.Logger.WithField("component", "tiny-parser"),
		options: opts,
	}
	p.reset()
	return p
}

// Parse parses a token sequence with default options
func Parse(tokens []token.Token) (*ast.Program, error) {
	return New(tokens, Options{}).ParseProgram()
}

// ParseSource tokenizes and parses source text with default options
func ParseSource(src string) (*ast.Program, error) {
	return Parse(lexer.Tokenize(src))
}

// ParseProgram parses the whole token sequence as a Program. It may be
// called repeatedly; each call starts from the first token.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	p.reset()

	p.logger.Debug("Starting TINY parsing", tinylog.Fields{
		"tokens": len(p.tokens),
	})

	program, err := p.parseProgram()
	if err != nil {
		p.logger.Debug("TINY parsing failed", tinylog.Fields{
			"error":    err.Error(),
			"position": p.pos,
		})
		return nil, err
	}

	p.logger.Debug("TINY parsing completed successfully", tinylog.Fields{
		"statements": len(program.Body.Statements),
	})
	return program, nil
}

// Program -> StmtSeq EOF
func (p *Parser) parseProgram() (*ast.Program, error) {
	pos := p.current.Pos

	body, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}

	if p.current.Category != token.EOF {
		return nil, &SyntaxError{Kind: TrailingInput, Found: p.current}
	}

	return &ast.Program{Body: body, Pos: pos}, nil
}

// StmtSeq -> Stmt { ';' Stmt }
//
// The loop also stops when the token after a ';' cannot begin a statement,
// leaving that token to the enclosing rule.
func (p *Parser) parseStmtSeq() (*ast.StmtSeq, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	seq := &ast.StmtSeq{Pos: p.current.Pos}

	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	seq.Statements = append(seq.Statements, stmt)

	for p.current.Category == token.SEMICOLON {
		p.advance() // consume ';'
		if !p.current.Category.StartsStatement() {
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		seq.Statements = append(seq.Statements, stmt)
	}

	return seq, nil
}

// Stmt -> IfStmt | RepeatStmt | Assign | Read | Write
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.current.Category {
	case token.IF:
		return p.parseIf()
	case token.REPEAT:
		return p.parseRepeat()
	case token.IDENTIFIER:
		return p.parseAssign()
	case token.READ:
		return p.parseRead()
	case token.WRITE:
		return p.parseWrite()
	default:
		return nil, &SyntaxError{Kind: UnexpectedStatement, Found: p.current}
	}
}

// IfStmt -> IF Expr THEN StmtSeq [ELSE StmtSeq] END
func (p *Parser) parseIf() (*ast.IfStmt, error) {
	pos := p.current.Pos
	if err := p.matchToken(token.IF); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.matchToken(token.THEN); err != nil {
		return nil, err
	}

	then, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}

	var elseSeq *ast.StmtSeq
	if p.current.Category == token.ELSE {
		p.advance() // consume ELSE
		elseSeq, err = p.parseStmtSeq()
		if err != nil {
			return nil, err
		}
	}

	if err := p.matchToken(token.END); err != nil {
		return nil, err
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseSeq, Pos: pos}, nil
}

// RepeatStmt -> REPEAT StmtSeq UNTIL Expr
func (p *Parser) parseRepeat() (*ast.RepeatStmt, error) {
	pos := p.current.Pos
	if err := p.matchToken(token.REPEAT); err != nil {
		return nil, err
	}

	body, err := p.parseStmtSeq()
	if err != nil {
		return nil, err
	}
	if err := p.matchToken(token.UNTIL); err != nil {
		return nil, err
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.RepeatStmt{Body: body, Cond: cond, Pos: pos}, nil
}

// Assign -> IDENTIFIER ASSIGN Expr
func (p *Parser) parseAssign() (*ast.AssignStmt, error) {
	pos := p.current.Pos
	name := p.current.Lexeme
	if err := p.matchToken(token.IDENTIFIER); err != nil {
		return nil, err
	}
	if err := p.matchToken(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{Name: name, Value: value, Pos: pos}, nil
}

// Read -> READ IDENTIFIER
func (p *Parser) parseRead() (*ast.ReadStmt, error) {
	pos := p.current.Pos
	if err := p.matchToken(token.READ); err != nil {
		return nil, err
	}

	name := p.current.Lexeme
	if err := p.matchToken(token.IDENTIFIER); err != nil {
		return nil, err
	}

	return &ast.ReadStmt{Name: name, Pos: pos}, nil
}

// Write -> WRITE Expr
func (p *Parser) parseWrite() (*ast.WriteStmt, error) {
	pos := p.current.Pos
	if err := p.matchToken(token.WRITE); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.WriteStmt{Value: value, Pos: pos}, nil
}

// Expr -> SimpleExpr [ (LESSTHAN | EQUAL) SimpleExpr ]
//
// The relational operator is non-associative: after one comparison the
// rule returns, and a second '<' or '=' is left to the caller.
func (p *Parser) parseExpr() (ast.Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parseSimpleExpr()
	if err != nil {
		return nil, err
	}

	if p.current.Category == token.LESSTHAN || p.current.Category == token.EQUAL {
		op, _ := ast.OperatorFor(p.current.Category)
		pos := p.current.Pos
		p.advance()

		right, err := p.parseSimpleExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// SimpleExpr -> Term { (PLUS | MINUS) Term }
func (p *Parser) parseSimpleExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Category == token.PLUS || p.current.Category == token.MINUS {
		op, _ := ast.OperatorFor(p.current.Category)
		pos := p.current.Pos
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// Term -> Factor { (MULT | DIV) Factor }
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current.Category == token.MULT || p.current.Category == token.DIV {
		op, _ := ast.OperatorFor(p.current.Category)
		pos := p.current.Pos
		p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Pos: pos}
	}

	return left, nil
}

// Factor -> NUMBER | IDENTIFIER | '(' Expr ')'
func (p *Parser) parseFactor() (ast.Expr, error) {
	tok := p.current

	switch tok.Category {
	case token.NUMBER:
		p.advance()
		return &ast.NumberExpr{Literal: tok.Lexeme, Pos: tok.Pos}, nil

	case token.IDENTIFIER:
		p.advance()
		return &ast.IdentifierExpr{Name: tok.Lexeme, Pos: tok.Pos}, nil

	case token.OPENBRACKET:
		p.advance() // consume '('
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.matchToken(token.CLOSEDBRACKET); err != nil {
			return nil, err
		}
		if bin, ok := expr.(*ast.BinaryExpr); ok {
			bin.Parenthesized = true
		}
		return expr, nil

	default:
		return nil, &SyntaxError{Kind: UnexpectedFactor, Found: tok}
	}
}

// Cursor helpers

// reset positions the cursor on the first token
func (p *Parser) reset() {
	p.pos = 0
	p.depth = 0
	p.current = p.tokenAt(0)
}

// tokenAt returns the token at index i, or an EOF sentinel past the end of
// the sequence.
func (p *Parser) tokenAt(i int) token.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	var pos token.Pos
	if n := len(p.tokens); n > 0 {
		pos = p.tokens[n-1].Pos
	}
	return token.EOFToken(pos)
}

// advance moves to the next token. The cursor stays on the first EOF.
func (p *Parser) advance() {
	if p.current.Category == token.EOF {
		return
	}
	p.pos++
	p.current = p.tokenAt(p.pos)
}

// matchToken consumes the current token if it has the expected category
func (p *Parser) matchToken(expected token.Category) error {
	if p.current.Category != expected {
		return &SyntaxError{
			Kind:        Mismatch,
			Expected:    expected,
			HasExpected: true,
			Found:       p.current,
		}
	}
	p.advance()
	return nil
}

// enter records one level of nesting and fails once MaxDepth is exceeded
func (p *Parser) enter() error {
	p.depth++
	if p.options.MaxDepth > 0 && p.depth > p.options.MaxDepth {
		return &SyntaxError{Kind: NestingTooDeep, Found: p.current, Depth: p.options.MaxDepth}
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
