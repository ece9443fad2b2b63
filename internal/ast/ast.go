// Package ast defines the two closed sum types the parser produces and
// the interpreter consumes: Expression and Statement. Each variant owns
// its children outright, so the tree is acyclic by construction; the
// variants are Go structs behind the Expression/Statement marker
// interfaces.
package ast

import (
	"github.com/MoMus2000/muslox/internal/token"
	"github.com/MoMus2000/muslox/internal/value"
)

// Expression is implemented by every expression AST node.
type Expression interface {
	exprNode()
}

// Binary is `left op right` for the arithmetic, comparison, and equality
// operators (everything except `and`/`or`, which produce Logical).
type Binary struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression. PrintExpr renders it transparently (no parentheses of its
// own), since it already parenthesizes every Binary/Logical.
type Grouping struct {
	Inner Expression
}

// Literal wraps a constant Value produced directly by the parser
// (numbers, strings, true/false/nil).
type Literal struct {
	Value value.Value
}

// Unary is a prefix `!` or `-` applied to Right.
type Unary struct {
	Op    token.Token
	Right Expression
}

// Var is a reference to a variable by name.
type Var struct {
	Name string
}

// Assign is `name = value`; produced only after the parser validates
// that the left-hand side of `=` was a Var.
type Assign struct {
	Name  string
	Value Expression
}

// Logical is `left and right` or `left or right`; Op.Kind is AND or OR.
// Kept distinct from Binary because it short-circuits.
type Logical struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Var) exprNode()      {}
func (*Assign) exprNode()   {}
func (*Logical) exprNode()  {}

// Statement is implemented by every statement AST node.
type Statement interface {
	stmtNode()
}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Expr Expression
}

// Print evaluates Expr, stringifies it per value.Value.String, and
// writes it followed by a newline to standard output.
type Print struct {
	Expr Expression
}

// VarStmt declares Name in the current scope, bound to Initializer's
// value. Named VarStmt, not Var, so it doesn't collide with the Var
// expression node above (a variable reference vs. its declaration).
type VarStmt struct {
	Name        string
	Initializer Expression
}

// Assert evaluates Expr; False aborts the program (AssertionFailed),
// True is a no-op, and an error while evaluating Expr is printed and
// swallowed rather than propagated.
type Assert struct {
	Expr Expression
}

// Block introduces a new child scope for Stmts and tears it down on
// exit.
type Block struct {
	Stmts []Statement
}

// If executes Then when Cond is True, Else (if present) when Cond is
// False, and falls through normally to the next sibling statement
// either way.
type If struct {
	Cond Expression
	Then Statement
	Else Statement // nil if absent
}

// While repeats Body while Cond's truthiness holds, re-evaluating Cond
// before every iteration including the first.
type While struct {
	Cond Expression
	Body Statement
}

func (*ExprStmt) stmtNode() {}
func (*Print) stmtNode()    {}
func (*VarStmt) stmtNode()  {}
func (*Assert) stmtNode()   {}
func (*Block) stmtNode()    {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
