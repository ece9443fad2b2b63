package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoMus2000/muslox/internal/lexer"
	"github.com/MoMus2000/muslox/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanEmptySourceYieldsOnlyEOF(t *testing.T) {
	toks, errs := lexer.Scan("")
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Line)
}

func TestScanArithmetic(t *testing.T) {
	toks, errs := lexer.Scan("2 + 4 * (1 - 0.5)")
	require.Empty(t, errs)

	want := []token.Kind{
		token.Number, token.Plus, token.Number, token.Star,
		token.LeftParen, token.Number, token.Minus, token.Number, token.RightParen,
		token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, 2.0, toks[0].Literal)
	assert.Equal(t, 0.5, toks[7].Literal)
}

func TestScanTwoCharacterOperators(t *testing.T) {
	toks, errs := lexer.Scan("!= == <= >= = ! < >")
	require.Empty(t, errs)
	want := []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Equal, token.Bang, token.Less, token.Greater, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestScanStringLiteral(t *testing.T) {
	toks, errs := lexer.Scan(`"hello world"`)
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	toks, errs := lexer.Scan(`"unterminated`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Unterminated string")
	// Scanning still reaches EOF; the caller decides whether to abort.
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, errs := lexer.Scan("var assert x and or print while")
	require.Empty(t, errs)
	want := []token.Kind{
		token.Var, token.Assert, token.Identifier, token.And, token.Or, token.Print, token.While, token.EOF,
	}
	assert.Equal(t, want, kinds(toks))
}

func TestLineCommentsAreSkipped(t *testing.T) {
	toks, errs := lexer.Scan("1 // a comment\n+ 2")
	require.Empty(t, errs)
	want := []token.Kind{token.Number, token.Plus, token.Number, token.EOF}
	assert.Equal(t, want, kinds(toks))
	assert.Equal(t, 2, toks[1].Line)
}

func TestUnexpectedCharacterReportsErrorButContinues(t *testing.T) {
	toks, errs := lexer.Scan("1 @ 2")
	require.Len(t, errs, 1)
	want := []token.Kind{token.Number, token.Number, token.EOF}
	assert.Equal(t, want, kinds(toks))
}
