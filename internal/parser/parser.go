// Package parser implements Lox's recursive-descent,
// precedence-climbing parser: tokens in, a slice of ast.Statement out,
// with assignment-target validation and synchronizing error recovery
// so one bad statement doesn't abort the whole parse.
package parser

import (
	"github.com/MoMus2000/muslox/internal/ast"
	"github.com/MoMus2000/muslox/internal/loxerr"
	"github.com/MoMus2000/muslox/internal/token"
	"github.com/MoMus2000/muslox/internal/value"
)

// Parser consumes a fixed token slice and produces statements.
type Parser struct {
	tokens []token.Token
	pos    int
	errs   []error
}

// New returns a Parser over tokens (expected to end with an EOF token,
// as internal/lexer always produces).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the package-level convenience form of New(tokens).Parse().
func Parse(tokens []token.Token) ([]ast.Statement, []error) {
	return New(tokens).Parse()
}

// Parse implements `program := declaration*`. It never stops at the
// first error: on a parse error it synchronizes and continues, so the
// returned slice holds every statement that parsed
// successfully and errs holds every ParseError encountered along the
// way, in source order.
func (p *Parser) Parse() ([]ast.Statement, []error) {
	var stmts []ast.Statement
	for !p.atEnd() {
		stmt, err := p.declarationRecovering()
		if err != nil {
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, p.errs
}

func (p *Parser) declarationRecovering() (stmt ast.Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			p.errs = append(p.errs, pe.err)
			p.synchronize()
			err = pe.err
		}
	}()
	return p.declaration(), nil
}

// parseError is how a failed consume()/assignment-target check unwinds
// back to declarationRecovering without threading an error return
// through every single grammar production (which, for a hand-written
// descent this deep, would bury the grammar in plumbing). It never
// crosses a package boundary: Parse always recovers it.
type parseError struct{ err error }

func (p *Parser) fail(format string, args ...any) {
	panic(parseError{err: loxerr.Parsef(p.peek().Line, format, args...)})
}

func (p *Parser) declaration() ast.Statement {
	if p.match(token.Var) {
		return p.varDecl()
	}
	return p.statement()
}

// varDecl implements `varDecl := IDENT "=" expression ";"`. The VAR
// keyword itself is already consumed by the caller. An initializer is
// mandatory; there is no bare `var x;` form.
func (p *Parser) varDecl() ast.Statement {
	name := p.consume(token.Identifier, "Expect variable name")
	p.consume(token.Equal, "Expect '=' after variable name")
	init := p.expression()
	p.consume(token.Semicolon, "Expect ';' after variable declaration")
	return &ast.VarStmt{Name: name.Lexeme, Initializer: init}
}

func (p *Parser) statement() ast.Statement {
	switch {
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.Assert):
		return p.assertStmt()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.LeftBrace):
		return &ast.Block{Stmts: p.block()}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) printStmt() ast.Statement {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value")
	return &ast.Print{Expr: expr}
}

func (p *Parser) assertStmt() ast.Statement {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after assert expression")
	return &ast.Assert{Expr: expr}
}

func (p *Parser) exprStmt() ast.Statement {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression")
	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) block() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block")
	return stmts
}

func (p *Parser) ifStmt() ast.Statement {
	p.consume(token.LeftParen, "Expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition")
	then := p.statement()
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStmt() ast.Statement {
	p.consume(token.LeftParen, "Expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after while condition")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

// forStmt desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`: cond defaults to `true`
// when omitted and the wrapping block is produced only when init is
// present.
func (p *Parser) forStmt() ast.Statement {
	p.consume(token.LeftParen, "Expect '(' after 'for'")

	var init ast.Statement
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expression
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition")

	var incr ast.Expression
	if !p.check(token.RightParen) {
		incr = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses")

	body := p.statement()

	if incr != nil {
		body = &ast.Block{Stmts: []ast.Statement{body, &ast.ExprStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: value.True}
	}
	loop := ast.Statement(&ast.While{Cond: cond, Body: body})
	if init != nil {
		loop = &ast.Block{Stmts: []ast.Statement{init, loop}}
	}
	return loop
}

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

// assignment implements `assignment := IDENT "=" assignment | logicOr`
// by first parsing a general expression and, on seeing `=`, validating
// that it was a Var before rewriting it into an Assign node.
func (p *Parser) assignment() ast.Expression {
	expr := p.logicOr()

	if p.match(token.Equal) {
		equals := p.previous()
		rhs := p.assignment()

		v, ok := expr.(*ast.Var)
		if !ok {
			panic(parseError{err: loxerr.InvalidAssignmentTarget(equals.Line)})
		}
		return &ast.Assign{Name: v.Name, Value: rhs}
	}

	return expr
}

// logicOr and logicAnd are both iterative, so `and` and `or` chains
// associate left.
func (p *Parser) logicOr() ast.Expression {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expression {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expression {
	expr := p.comparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expression {
	expr := p.term()
	for p.match(token.Less, token.LessEqual, token.Greater, token.GreaterEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expression {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expression {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expression {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Op: op, Right: right}
	}
	return p.primary()
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(token.True):
		return &ast.Literal{Value: value.True}
	case p.match(token.False):
		return &ast.Literal{Value: value.False}
	case p.match(token.Nil):
		return &ast.Literal{Value: value.Nil}
	case p.match(token.Number):
		return &ast.Literal{Value: value.Number(p.previous().Literal.(float64))}
	case p.match(token.String):
		return &ast.Literal{Value: value.Str(p.previous().Literal.(string))}
	case p.match(token.LeftParen):
		inner := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression")
		return &ast.Grouping{Inner: inner}
	case p.match(token.Identifier):
		return &ast.Var{Name: p.previous().Lexeme}
	default:
		p.fail("Expect expression")
		panic("unreachable")
	}
}

// --------------- helpers --------------- //

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, msg string) token.Token {
	if !p.check(kind) {
		p.fail("%s", msg)
	}
	return p.advance()
}

func (p *Parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	t := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.pos] }

func (p *Parser) previous() token.Token {
	if p.pos > 0 {
		return p.tokens[p.pos-1]
	}
	return p.peek()
}

// synchronize discards the token that caused the failure, then keeps
// discarding until the previous token was a statement terminator or
// the next token starts a fresh statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If,
			token.While, token.Print, token.Return, token.Assert:
			return
		}
		p.advance()
	}
}
