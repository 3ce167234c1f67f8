package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviromero/nadia/internal/diagnostics"
)

func TestMessageSubstitutesArgsInOrder(t *testing.T) {
	d := diagnostics.Diagnostic{Kind: diagnostics.ReferencedLineNotDefined, Args: []string{"7"}}
	assert.Contains(t, diagnostics.Message(d, diagnostics.PT), "linha 7")
	assert.Contains(t, diagnostics.Message(d, diagnostics.EN), "line 7")
}

func TestMessageUnknownKindFallsBackToName(t *testing.T) {
	d := diagnostics.Diagnostic{Kind: diagnostics.Kind(999)}
	assert.Equal(t, "UNKNOWN", diagnostics.Message(d, diagnostics.PT))
}

func TestFormatThreeLineCaret(t *testing.T) {
	source := "1. P pre\n2. P foo\n"
	d := diagnostics.Diagnostic{Kind: diagnostics.InvalidRule, Line: 2, Column: 6, Args: []string{"foo"}}

	out := diagnostics.Format(d, source, diagnostics.PT)
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), out)
	}
	assert.Equal(t, "Erro de sintaxe na linha 2:", lines[0])
	assert.Equal(t, "2. P foo", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "     ^"), "caret line %q should point at column 6", lines[2])
}

func TestFormatEnglishLocale(t *testing.T) {
	d := diagnostics.Diagnostic{Kind: diagnostics.CloseBracketWithoutBox, Line: 1, Column: 1}
	out := diagnostics.Format(d, "}\n", diagnostics.EN)
	assert.True(t, strings.HasPrefix(out, "Syntax error on line 1:"))
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "NONE_COPY", diagnostics.NoneCopy.String())
	assert.Equal(t, "UNKNOWN", diagnostics.Kind(-1).String())
}

func TestDiagnosticSatisfiesError(t *testing.T) {
	var err error = diagnostics.Diagnostic{Kind: diagnostics.AutoReference}
	assert.Contains(t, err.Error(), "não pode referenciar")
}
