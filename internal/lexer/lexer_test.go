package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviromero/nadia/internal/lexer"
	"github.com/daviromero/nadia/internal/token"
)

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeModusPonensLine(t *testing.T) {
	toks := lexer.Tokenize("3. Q ->e 1,2\n")
	require.Equal(t, []token.Type{
		token.NUM, token.DOT, token.ATOM, token.IMPE, token.NUM, token.COMMA, token.NUM, token.EOF,
	}, types(toks))
}

func TestRuleKeywordsBeatGenericConnectives(t *testing.T) {
	// "->i" must win over DASH+GT-less "->", and "&i"/"&e" must win over
	// plain AND, since they are tried first in the rules table.
	toks := lexer.Tokenize("->i ->e |i |e &i &e ~i ~e raa @e copie")
	require.Equal(t, []token.Type{
		token.IMPI, token.IMPE, token.ORI, token.ORE, token.ANDI, token.ANDE,
		token.NOTI, token.NOTE, token.RAA, token.BOTE, token.COPY, token.EOF,
	}, types(toks))
}

func TestQuantifierRuleKeywordsBeatFusedQuantifierVariable(t *testing.T) {
	// "Ae"/"Ai"/"Ee"/"Ei" are reserved rule names and must not be read as
	// FORALL/EXISTS fused with a variable named "e"/"i".
	toks := lexer.Tokenize("Ae Ai Ee Ei")
	require.Equal(t, []token.Type{token.ALLE, token.ALLI, token.EXE, token.EXI, token.EOF}, types(toks))
}

func TestQuantifierFusesWithVariableName(t *testing.T) {
	toks := lexer.Tokenize("Ax Ey")
	require.Equal(t, []token.Type{token.FORALL, token.EXISTS, token.EOF}, types(toks))
	assert.Equal(t, "x", toks[0].Value)
	assert.Equal(t, "y", toks[1].Value)
}

func TestAtomMustStartUppercaseVarMustStartLowercase(t *testing.T) {
	toks := lexer.Tokenize("P x")
	require.Equal(t, []token.Type{token.ATOM, token.VAR, token.EOF}, types(toks))
}

func TestPreAndHipAreKeywordsNotVariables(t *testing.T) {
	toks := lexer.Tokenize("pre hip")
	require.Equal(t, []token.Type{token.PREMISE, token.HYPOTHESIS, token.EOF}, types(toks))
}

func TestCommentsAreSkipped(t *testing.T) {
	toks := lexer.Tokenize("# line comment\nP ## block ## Q")
	require.Equal(t, []token.Type{token.ATOM, token.ATOM, token.EOF}, types(toks))
}

func TestTurnstileBothSpellings(t *testing.T) {
	toks := lexer.Tokenize("|- |=")
	require.Equal(t, []token.Type{token.TURNSTILE, token.TURNSTILE, token.EOF}, types(toks))
}

func TestUnrecognizedCharacterProducesIllegal(t *testing.T) {
	toks := lexer.Tokenize("$")
	require.Equal(t, []token.Type{token.ILLEGAL, token.EOF}, types(toks))
}

func TestLineTracking(t *testing.T) {
	toks := lexer.Tokenize("P\nQ")
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}
