package ast

import (
	"fmt"
	"strings"

	"github.com/MoMus2000/muslox/internal/value"
)

// PrintExpr renders e fully parenthesized in Lox's own surface
// syntax, so re-lexing and re-parsing PrintExpr(e) yields a structurally
// equivalent AST.
func PrintExpr(e Expression) string {
	switch ex := e.(type) {
	case *Binary:
		return parenthesize(ex.Op.Lexeme, ex.Left, ex.Right)
	case *Logical:
		return parenthesize(ex.Op.Lexeme, ex.Left, ex.Right)
	case *Grouping:
		// parenthesize already wraps every Binary/Logical unconditionally,
		// so the source parens a Grouping remembers add no information.
		// Not re-adding them keeps a lex/parse/print round trip at a
		// fixed point instead of gaining a paren layer per pass.
		return PrintExpr(ex.Inner)
	case *Unary:
		return "(" + ex.Op.Lexeme + " " + PrintExpr(ex.Right) + ")"
	case *Literal:
		return literalText(ex)
	case *Var:
		return ex.Name
	case *Assign:
		return "(" + ex.Name + "=" + PrintExpr(ex.Value) + ")"
	default:
		panic(fmt.Sprintf("ast: unreachable Expression variant in PrintExpr: %T", e))
	}
}

func parenthesize(op string, operands ...Expression) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(PrintExpr(operands[0]))
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	b.WriteString(PrintExpr(operands[1]))
	b.WriteByte(')')
	return b.String()
}

// literalText renders a Literal's value the way the lexer expects to
// read it back: strings need their surrounding quotes restored, since
// Value's own String() drops them for print.
func literalText(l *Literal) string {
	if l.Value.Kind() == value.KindString {
		return `"` + l.Value.String() + `"`
	}
	return l.Value.String()
}
