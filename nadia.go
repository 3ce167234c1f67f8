// Package nadia checks first-order natural-deduction proofs written in a
// Fitch-style box calculus. Check (and CheckLocale, its variant taking a
// message locale) is the entry point: given a
// proof's source text it returns a Result carrying the deduplicated
// premises, the conclusion, both renderings, and any diagnostics.
//
// The package performs no I/O and holds no state between calls, grounded
// on the teacher's own pure-core/thin-driver split (internal/analyzer
// never touches a file handle; cmd/funxy does).
package nadia

import (
	"github.com/google/uuid"

	"github.com/daviromero/nadia/internal/diagnostics"
	"github.com/daviromero/nadia/internal/formula"
	"github.com/daviromero/nadia/internal/parser"
	"github.com/daviromero/nadia/internal/render"
	"github.com/daviromero/nadia/internal/rules"
)

// Result is the outcome of checking one proof.
type Result struct {
	Premises   []formula.Formula
	Conclusion formula.Formula
	Fitch      string
	Gentzen    string
	Errors     []string

	id uuid.UUID
}

// ID returns the correlation id assigned to this Result by Check. It has
// no bearing on equality or rendering; pkg/cli uses it to tag one
// invocation's verbose log lines.
func (r Result) ID() uuid.UUID { return r.id }

// Check parses and soundness-checks source, rendering diagnostics in the
// reference implementation's language (Portuguese). A malformed proof
// yields a Result with exactly one error and empty renderings; a
// well-formed but unsound proof yields one error per violated rule or
// structural constraint, also with empty renderings.
func Check(source string) Result {
	return CheckLocale(source, diagnostics.PT)
}

// CheckLocale is Check with an explicit diagnostic message locale, used
// by pkg/cli's -locale flag.
func CheckLocale(source string, locale diagnostics.Locale) Result {
	id := uuid.New()

	parsed, err := parser.Parse(source)
	if err != nil {
		if se, ok := err.(*parser.SyntaxError); ok {
			return Result{Errors: []string{diagnostics.Format(se.Diagnostic, source, locale)}, id: id}
		}
		return Result{Errors: []string{err.Error()}, id: id}
	}

	var diags rules.Diagnostics
	diags = append(diags, parsed.Diagnostics...)
	for _, line := range parsed.Lines {
		rec := parsed.Table.GetRule(line)
		if rec == nil {
			continue
		}
		rules.Evaluate(parsed.Table, rec, &diags)
	}
	rules.CheckAllBoxesDisposed(parsed.Table, &diags)

	if len(diags) > 0 {
		errs := make([]string, len(diags))
		for i, d := range diags {
			errs[i] = diagnostics.Format(d, source, locale)
		}
		return Result{Errors: errs, id: id}
	}

	return Result{
		Premises:   parsed.Table.Premises(),
		Conclusion: parsed.Table.Conclusion(),
		Fitch:      render.Fitch(parsed.Table),
		Gentzen:    render.Gentzen(parsed.Table),
		id:         id,
	}
}
