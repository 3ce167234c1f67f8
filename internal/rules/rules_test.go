package rules_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/daviromero/nadia/internal/diagnostics"
	"github.com/daviromero/nadia/internal/parser"
	"github.com/daviromero/nadia/internal/rules"
)

func check(t *testing.T, src string) rules.Diagnostics {
	t.Helper()
	res, err := parser.Parse(src)
	require.NoError(t, err)

	var diags rules.Diagnostics
	for _, line := range res.Lines {
		rec := res.Table.GetRule(line)
		if rec == nil {
			continue
		}
		rules.Evaluate(res.Table, rec, &diags)
	}
	return diags
}

func TestModusPonensIsSound(t *testing.T) {
	diags := check(t, "1. P pre\n2. P->Q pre\n3. Q ->e 1,2\n")
	assert.Empty(t, diags)
}

func TestConditionalProofIsSound(t *testing.T) {
	diags := check(t, "1. P pre\n2. { Q hip\n3. P&Q &i 1,2\n}\n4. Q->(P&Q) ->i 2-3\n")
	assert.Empty(t, diags)
}

func TestDisjunctionEliminationIsSound(t *testing.T) {
	src := "1. P|Q pre\n" +
		"2. { P hip\n" +
		"3. P|Q |i 2\n" +
		"}\n" +
		"4. { Q hip\n" +
		"5. P|Q |i 4\n" +
		"}\n" +
		"6. P|Q |e 1,2-3,4-5\n"
	diags := check(t, src)
	assert.Empty(t, diags)
}

func TestDisjunctionEliminationRejectsBranchMismatch(t *testing.T) {
	src := "1. P|Q pre\n" +
		"2. { P hip\n" +
		"3. R |i 2\n" + // nonsense disjunct not built from the hypothesis
		"}\n" +
		"4. { Q hip\n" +
		"5. P|Q |i 4\n" +
		"}\n" +
		"6. P|Q |e 1,2-3,4-5\n"
	_, err := parser.Parse(src)
	// "R |i 2" itself is a structurally valid OrIntro line (R is a fresh
	// atom), so this exercises the eliminator's own box-result checks
	// rather than a parse failure.
	require.NoError(t, err)
	diags := check(t, src)
	assert.NotEmpty(t, diags)
}

func TestExistsEliminationIsSound(t *testing.T) {
	src := "1. Ex P(x) pre\n" +
		"2. { y P(y) hip\n" +
		"3. Ex P(x) Ei 2\n" +
		"}\n" +
		"4. Ex P(x) Ee 1,2-3\n"
	diags := check(t, src)
	assert.Empty(t, diags)
}

func TestExistsEliminationRejectsEscapingVariable(t *testing.T) {
	src := "1. Ex P(x) pre\n" +
		"2. { y P(y) hip\n" +
		"3. P(y) copie 2\n" +
		"}\n" +
		"4. P(y) Ee 1,2-3\n"
	diags := check(t, src)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Kind == diagnostics.InvalidConclusionExistential {
			found = true
		}
	}
	assert.True(t, found, "expected the witness variable y to be rejected for escaping into the conclusion, got %+v", diags)
}

func TestExistsEliminationRejectsNonFreshVariable(t *testing.T) {
	src := "1. P(a) pre\n" +
		"2. Ex P(x) pre\n" +
		"3. { a P(a) hip\n" +
		"4. Ex P(x) Ei 3\n" +
		"}\n" +
		"5. Ex P(x) Ee 2,3-4\n"
	diags := check(t, src)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Kind == diagnostics.VariableIsNotFreshVariable {
			found = true
		}
	}
	assert.True(t, found, "expected a reused a to be rejected as non-fresh, got %+v", diags)
}

func TestCopyRejectsDifferentFormula(t *testing.T) {
	diags := check(t, "1. P pre\n2. Q copie 1\n")
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.CopyDifferentFormula, diags[0].Kind)
}

func TestForallIntroductionIsSound(t *testing.T) {
	src := "1. Ax P(x) pre\n" +
		"2. { y\n" +
		"3. P(y) Ae 1\n" +
		"}\n" +
		"4. Ay P(y) Ai 2-3\n"
	diags := check(t, src)
	assert.Empty(t, diags)
}

func TestForallEliminationRejectsBadSubstitution(t *testing.T) {
	// P(y,x) is not an instance of Ax P(x,x): the quantified position must
	// be replaced uniformly.
	src := "1. Ax P(x,x) pre\n2. P(y,x) Ae 1\n"
	diags := check(t, src)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.InvalidSubstitutionUniversal, diags[0].Kind)
}

func TestAndEliminationRejectsNonConjunction(t *testing.T) {
	diags := check(t, "1. P pre\n2. P &e 1\n")
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.IsNotConjunction, diags[0].Kind)
}

func TestReferencingALaterLineIsRejected(t *testing.T) {
	diags := check(t, "1. P &e 2\n2. P&Q pre\n")
	require.NotEmpty(t, diags)
	assert.Equal(t, diagnostics.ReferencedLineNotDefined, diags[0].Kind)
}

func TestUsingDiscardedHypothesisIsRejected(t *testing.T) {
	src := "1. { P hip\n2. P pre\n}\n3. P &e 1\n"
	diags := check(t, src)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Kind == diagnostics.UsingDiscardedRule {
			found = true
		}
	}
	assert.True(t, found, "expected a reference into a closed box to be rejected, got %+v", diags)
}

func TestBoxMustBeDisposedWhenNeverDischarged(t *testing.T) {
	// The box at 1-2 is closed but no ->i/~i/raa/|e/Ee/Ai rule anywhere
	// references it, so the global structural check must flag it even
	// though every per-line rule evaluation above passes individually.
	src := "1. { P hip\n2. P pre\n}\n3. P pre\n"
	res, err := parser.Parse(src)
	require.NoError(t, err)

	var diags rules.Diagnostics
	rules.CheckAllBoxesDisposed(res.Table, &diags)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostics.BoxMustBeDisposed, diags[0].Kind)
}

func TestBoxMustBeDisposedAcceptsADischargedBox(t *testing.T) {
	src := "1. P pre\n2. { Q hip\n3. P&Q &i 1,2\n}\n4. Q->(P&Q) ->i 2-3\n"
	res, err := parser.Parse(src)
	require.NoError(t, err)

	var diags rules.Diagnostics
	rules.CheckAllBoxesDisposed(res.Table, &diags)
	assert.Empty(t, diags)
}

// TestCorpus drives a multi-case proof corpus stored as a txtar archive:
// every file under sound/ must check clean, every file under unsound/ must
// produce at least one diagnostic.
func TestCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/corpus.txtar")
	require.NoError(t, err)
	archive := txtar.Parse(data)
	require.NotEmpty(t, archive.Files)

	for _, f := range archive.Files {
		f := f
		t.Run(f.Name, func(t *testing.T) {
			diags := check(t, string(f.Data))
			switch {
			case strings.HasPrefix(f.Name, "sound/"):
				assert.Empty(t, diags, "expected %s to check clean", f.Name)
			case strings.HasPrefix(f.Name, "unsound/"):
				assert.NotEmpty(t, diags, "expected %s to be rejected", f.Name)
			default:
				t.Fatalf("corpus file %s has no sound/ or unsound/ prefix", f.Name)
			}
		})
	}
}
