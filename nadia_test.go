package nadia_test

import (
	"reflect"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviromero/nadia"
	"github.com/daviromero/nadia/internal/diagnostics"
)

const modusPonens = "1. P pre\n2. P->Q pre\n3. Q ->e 1,2\n"

func TestCheckOnSoundProofHasNoErrors(t *testing.T) {
	res := nadia.Check(modusPonens)
	require.Empty(t, res.Errors)
	require.NotNil(t, res.Conclusion)
	assert.Equal(t, "Q", res.Conclusion.String())
	require.Len(t, res.Premises, 2)
	assert.NotEmpty(t, res.Fitch)
	assert.NotEmpty(t, res.Gentzen)
}

func TestCheckAssignsAFreshIDPerCall(t *testing.T) {
	a := nadia.Check(modusPonens)
	b := nadia.Check(modusPonens)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestCheckOnMalformedSourceYieldsOneError(t *testing.T) {
	res := nadia.Check("1. P foo\n")
	require.Len(t, res.Errors, 1)
	assert.Nil(t, res.Conclusion)
	assert.Empty(t, res.Fitch)
}

func TestCheckOnUnsoundProofYieldsErrorsAndNoRendering(t *testing.T) {
	res := nadia.Check("1. P pre\n2. Q &e 1\n")
	require.NotEmpty(t, res.Errors)
	assert.Empty(t, res.Fitch)
	assert.Empty(t, res.Gentzen)
}

func TestCheckReportsBoxMustBeDisposedWhenNeverDischarged(t *testing.T) {
	res := nadia.Check("1. { P hip\n2. P pre\n}\n3. P pre\n")
	require.NotEmpty(t, res.Errors)
	assert.Empty(t, res.Fitch)
}

func TestCheckReportsLinesMustBeSequence(t *testing.T) {
	res := nadia.Check("1. P pre\n3. Q pre\n")
	require.NotEmpty(t, res.Errors)
}

func TestCheckReportsCloseBracketWithoutBox(t *testing.T) {
	res := nadia.Check("1. P pre\n}\n")
	require.NotEmpty(t, res.Errors)
}

func TestCheckRecoversPastAWrongArityRuleReference(t *testing.T) {
	// Unlike a genuine syntax failure, this keeps walking the whole proof
	// instead of aborting after the first bad line: the result still
	// carries an error (the parser's wrong-arity diagnostic for line 2,
	// which collapses to a Malformed record that is not evaluated), not a
	// single opaque parse failure.
	res := nadia.Check("1. P&Q pre\n2. P &e 1,2\n")
	require.NotEmpty(t, res.Errors)
	assert.Empty(t, res.Fitch)
}

func TestCheckLocaleSelectsMessageLanguage(t *testing.T) {
	src := "1. P pre\n2. Q &e 1\n"
	pt := nadia.CheckLocale(src, diagnostics.PT)
	en := nadia.CheckLocale(src, diagnostics.EN)
	require.NotEmpty(t, pt.Errors)
	require.NotEmpty(t, en.Errors)
	assert.NotEqual(t, pt.Errors[0], en.Errors[0])
}

func TestCheckLocaleResultsAreDeepEqualIgnoringID(t *testing.T) {
	a := nadia.CheckLocale(modusPonens, diagnostics.PT)
	b := nadia.CheckLocale(modusPonens, diagnostics.PT)

	// ID() is a per-call correlation id, not part of the proof's outcome,
	// so the deep-equal comparison runs over the other fields only. On
	// failure, pretty.Diff pinpoints which field diverged instead of
	// dumping both structs whole.
	if diff := pretty.Diff(a.Premises, b.Premises); len(diff) > 0 {
		t.Errorf("premises diverged between two calls on the same input: %v", diff)
	}
	assert.True(t, reflect.DeepEqual(a.Premises, b.Premises))
	assert.True(t, reflect.DeepEqual(a.Conclusion, b.Conclusion))
	assert.Equal(t, a.Fitch, b.Fitch)
	assert.Equal(t, a.Gentzen, b.Gentzen)
	assert.Equal(t, a.Errors, b.Errors)
}
