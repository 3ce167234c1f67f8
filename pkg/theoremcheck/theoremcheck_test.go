package theoremcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviromero/nadia/internal/formula"
	"github.com/daviromero/nadia/pkg/theoremcheck"
)

func TestParseWithPremises(t *testing.T) {
	st, err := theoremcheck.Parse("P, P->Q |- Q")
	require.NoError(t, err)
	require.Len(t, st.Premises, 2)
	assert.Equal(t, "P", st.Premises[0].String())
	assert.Equal(t, "P->Q", st.Premises[1].String())
	assert.Equal(t, "Q", st.Conclusion.String())
}

func TestParseWithNoPremises(t *testing.T) {
	st, err := theoremcheck.Parse("|- P|~P")
	require.NoError(t, err)
	assert.Empty(t, st.Premises)
	assert.Equal(t, "P|~P", st.Conclusion.String())
}

func TestParseAcceptsDoubleTurnstileSpelling(t *testing.T) {
	st, err := theoremcheck.Parse("P |= P")
	require.NoError(t, err)
	assert.Equal(t, "P", st.Conclusion.String())
}

func TestParseKeepsCommasInsidePredicateArguments(t *testing.T) {
	st, err := theoremcheck.Parse("P(a,b) |- P(a,b)")
	require.NoError(t, err)
	require.Len(t, st.Premises, 1)
	assert.Equal(t, "P(a,b)", st.Premises[0].String())
}

func TestParseRejectsMissingTurnstile(t *testing.T) {
	_, err := theoremcheck.Parse("P, Q")
	require.Error(t, err)
}

func TestParseRejectsMalformedConclusion(t *testing.T) {
	_, err := theoremcheck.Parse("P |- Q R")
	require.Error(t, err)
}

func TestStringRendersWithAndWithoutPremises(t *testing.T) {
	st, err := theoremcheck.Parse("P, P->Q |- Q")
	require.NoError(t, err)
	assert.Equal(t, "P, P->Q |- Q", st.String())

	none, err := theoremcheck.Parse("|- P")
	require.NoError(t, err)
	assert.Equal(t, "|- P", none.String())
}

func TestMatchesIsOrderIndependentOverPremises(t *testing.T) {
	st, err := theoremcheck.Parse("P, P->Q |- Q")
	require.NoError(t, err)

	p := formula.NewAtom("P")
	q := formula.NewAtom("Q")
	pimpq := formula.NewBinary(formula.Implies, p, q)

	assert.True(t, st.Matches([]formula.Formula{pimpq, p}, q), "premise order should not matter")
}

func TestMatchesRejectsConclusionMismatch(t *testing.T) {
	st, err := theoremcheck.Parse("P |- P")
	require.NoError(t, err)

	assert.False(t, st.Matches([]formula.Formula{formula.NewAtom("P")}, formula.NewAtom("Q")))
}

func TestMatchesRejectsPremiseCountMismatch(t *testing.T) {
	st, err := theoremcheck.Parse("P, Q |- P")
	require.NoError(t, err)

	assert.False(t, st.Matches([]formula.Formula{formula.NewAtom("P")}, formula.NewAtom("P")))
}
