package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoMus2000/muslox/internal/ast"
	"github.com/MoMus2000/muslox/internal/lexer"
	"github.com/MoMus2000/muslox/internal/loxerr"
	"github.com/MoMus2000/muslox/internal/parser"
)

func parse(t *testing.T, src string) ([]ast.Statement, []error) {
	t.Helper()
	toks, errs := lexer.Scan(src)
	require.Empty(t, errs)
	return parser.Parse(toks)
}

func TestParseVarDeclRequiresInitializer(t *testing.T) {
	_, errs := parse(t, "var x;")
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], loxerr.ErrParse)
}

func TestParsePrintStatement(t *testing.T) {
	stmts, errs := parse(t, `print "hi";`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmts, errs := parse(t, "1 + 2 * 3;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	exprStmt := stmts[0].(*ast.ExprStmt)
	top := exprStmt.Expr.(*ast.Binary)
	assert.Equal(t, "+", top.Op.Lexeme)

	right := top.Right.(*ast.Binary)
	assert.Equal(t, "*", right.Op.Lexeme)
}

func TestAssignmentRequiresVariableTarget(t *testing.T) {
	_, errs := parse(t, "1 + 2 = 3;")
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], loxerr.ErrInvalidAssignTarget)
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	stmts, errs := parse(t, "a = b = 1;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	outer := stmts[0].(*ast.ExprStmt).Expr.(*ast.Assign)
	assert.Equal(t, "a", outer.Name)
	inner := outer.Value.(*ast.Assign)
	assert.Equal(t, "b", inner.Name)
}

func TestLogicOperatorsAreLeftAssociative(t *testing.T) {
	stmts, errs := parse(t, "a and b and c;")
	require.Empty(t, errs)

	top := stmts[0].(*ast.ExprStmt).Expr.(*ast.Logical)
	_, leftIsLogical := top.Left.(*ast.Logical)
	assert.True(t, leftIsLogical, "expected `a and b and c` to associate as `(a and b) and c`")
}

func TestForLoopDesugarsToWhileInsideBlock(t *testing.T) {
	stmts, errs := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	block := stmts[0].(*ast.Block)
	require.Len(t, block.Stmts, 2)

	_, initIsVarDecl := block.Stmts[0].(*ast.VarStmt)
	assert.True(t, initIsVarDecl)

	loop := block.Stmts[1].(*ast.While)
	body := loop.Body.(*ast.Block)
	require.Len(t, body.Stmts, 2)
	_, firstIsOriginalBody := body.Stmts[0].(*ast.Print)
	assert.True(t, firstIsOriginalBody)
	_, secondIsIncrement := body.Stmts[1].(*ast.ExprStmt)
	assert.True(t, secondIsIncrement)
}

func TestForLoopWithoutConditionDefaultsToTrue(t *testing.T) {
	stmts, errs := parse(t, "for (;;) print 1;")
	require.Empty(t, errs)

	loop := stmts[0].(*ast.While)
	lit := loop.Cond.(*ast.Literal)
	assert.Equal(t, "true", lit.Value.String())
}

func TestSynchronizationRecoversAfterAStatementError(t *testing.T) {
	stmts, errs := parse(t, "var x;\nprint 1;")
	require.Len(t, errs, 1)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}

// A bare `class` (or `fun`) keyword has no declaration() production, so
// primary() fails on it without consuming it. synchronize() must still
// discard that offending token before checking the stop-keyword set, or
// Parse's `for !p.atEnd()` loop re-enters at the same position forever.
// This test only terminates at all if that leading advance is present.
func TestSynchronizeAdvancesPastAnOffendingStopKeyword(t *testing.T) {
	stmts, errs := parse(t, "class;\nprint 1;")
	require.Len(t, errs, 1)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}

// `return` has no declaration()/statement() production either (it's a
// reserved keyword with no semantics), so it fails to parse as an
// expression just like `class`/`fun` do — but synchronize() must still
// treat it as a fresh-statement boundary rather than swallowing it
// into the discarded span. `+return 1;`
// fails once on the leading `+`, at which point synchronize should stop
// right before `return` instead of consuming past it; `return` then
// fails to parse on its own (no production), and synchronize recovers
// again up through the following `;`.
func TestSynchronizeTreatsReturnAsAStatementBoundary(t *testing.T) {
	stmts, errs := parse(t, "+return 1;\nprint 2;")
	require.Len(t, errs, 2)
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.Print)
	assert.True(t, ok)
}

// TestPrintRoundTripsThroughTheLexerAndParser implements the
// round-trip property: printing a parsed expression back to Lox
// source and re-lexing/re-parsing it must reproduce a structurally
// identical precedence shape.
func TestPrintRoundTripsThroughTheLexerAndParser(t *testing.T) {
	sources := []string{
		"1 + 2 * 3 - 4;",
		`"a" + "b" * 2;`,
		"!(-1 < 2);",
		"a and b or c;",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			stmts, errs := parse(t, src)
			require.Empty(t, errs)
			original := stmts[0].(*ast.ExprStmt).Expr

			printed := ast.PrintExpr(original) + ";"

			reToks, reErrs := lexer.Scan(printed)
			require.Empty(t, reErrs)
			reStmts, reParseErrs := parser.Parse(reToks)
			require.Empty(t, reParseErrs)

			reprinted := ast.PrintExpr(reStmts[0].(*ast.ExprStmt).Expr)
			assert.Equal(t, printed, reprinted+";")
		})
	}
}
