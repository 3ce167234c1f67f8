package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviromero/nadia/internal/ast"
	"github.com/daviromero/nadia/internal/diagnostics"
	"github.com/daviromero/nadia/internal/parser"
)

func TestParseModusPonens(t *testing.T) {
	src := "1. P pre\n2. P->Q pre\n3. Q ->e 1,2\n"
	res, err := parser.Parse(src)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, res.Lines)

	concl := res.Table.Conclusion()
	require.NotNil(t, concl)
	assert.Equal(t, "Q", concl.String())
}

func TestParseNestedBox(t *testing.T) {
	src := "1. P pre\n2. { Q hip\n3. P&Q &i 1,2\n}\n4. Q->(P&Q) ->i 2-3\n"
	res, err := parser.Parse(src)
	require.NoError(t, err)

	box := res.Table.FindScope("3")
	require.NotNil(t, box)
	assert.Equal(t, "2", box.StartLine)
	assert.Equal(t, "3", box.EndLine)
	assert.False(t, box.HasVar)
	require.Len(t, box.Records, 2)
	assert.Equal(t, "Q", box.Records[0].RecordFormula().String())
}

func TestParseBoxVariableOpener(t *testing.T) {
	src := "1. Ax P(x) pre\n2. { y\n3. P(y) Ae 1\n}\n4. Ay P(y) Ai 2-3\n"
	res, err := parser.Parse(src)
	require.NoError(t, err)

	box := res.Table.FindScope("2")
	require.NotNil(t, box)
	assert.True(t, box.HasVar)
	assert.Equal(t, "y", box.Variable)

	opener := res.Table.GetFirstRuleFromScope("2")
	_, isVarOpener := opener.(*ast.BoxVariableOpener)
	assert.True(t, isVarOpener)
}

func TestParseRejectsOutOfPlaceToken(t *testing.T) {
	_, err := parser.Parse("1. P foo\n")
	require.Error(t, err)
	var syn *parser.SyntaxError
	require.ErrorAs(t, err, &syn)
}

func TestParseRejectsUnterminatedRule(t *testing.T) {
	_, err := parser.Parse("1. P\n")
	require.Error(t, err)
}

func TestParseReportsLinesMustBeSequenceOnASkippedNumber(t *testing.T) {
	res, err := parser.Parse("1. P pre\n3. Q pre\n")
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diagnostics.LinesMustBeSequence, res.Diagnostics[0].Kind)
}

func TestParseAcceptsAProperlySequencedProof(t *testing.T) {
	res, err := parser.Parse("1. P pre\n2. Q pre\n")
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
}

func TestParseReportsCloseBracketWithoutBox(t *testing.T) {
	res, err := parser.Parse("1. P pre\n}\n")
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diagnostics.CloseBracketWithoutBox, res.Diagnostics[0].Kind)
}

func TestParseRecoversWrongArityRuleReferenceIntoMalformed(t *testing.T) {
	// &e takes a single reference; "1,2" gives it two, which must collapse
	// to a Malformed record and a diagnostic rather than aborting the
	// whole parse.
	res, err := parser.Parse("1. P&Q pre\n2. P &e 1,2\n")
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diagnostics.InvalidRuleOneReference, res.Diagnostics[0].Kind)

	rec := res.Table.GetRule("2")
	require.NotNil(t, rec)
	_, isMalformed := rec.(*ast.Malformed)
	assert.True(t, isMalformed, "expected the wrong-arity rule line to collapse to Malformed, got %T", rec)

	// Parsing continued past line 2 instead of aborting.
	assert.Equal(t, []string{"1", "2"}, res.Lines)
}

func TestParseFormula(t *testing.T) {
	f, err := parser.ParseFormula("P(x,y)->(Q|~R)")
	require.NoError(t, err)
	assert.Equal(t, "P(x,y)->(Q|~R)", f.String())
}

func TestParseFormulaRejectsTrailingGarbage(t *testing.T) {
	_, err := parser.ParseFormula("P Q")
	require.Error(t, err)
}
