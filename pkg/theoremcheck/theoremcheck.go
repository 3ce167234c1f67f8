// Package theoremcheck implements the -t flag's theorem-matching helper:
// parsing a turnstile statement ("A, A->B |- B") and comparing it against
// a checked nadia.Result's premises and conclusion, grounded on
// ParserTheorem/theoremToString in nadia_pt_fo.py (lines ~2263-2460).
package theoremcheck

import (
	"fmt"
	"strings"

	"github.com/daviromero/nadia/internal/formula"
	"github.com/daviromero/nadia/internal/parser"
)

// Statement is a parsed turnstile statement: zero or more premises and a
// conclusion, the same shape ParserTheorem.getTheorem returns.
type Statement struct {
	Premises   []formula.Formula
	Conclusion formula.Formula
}

// Parse parses a turnstile statement of the form "F1, F2, ... |- G" or
// "|- G" (no premises). The turnstile may be written |- or |=, matching
// the original lexer's two spellings.
func Parse(source string) (*Statement, error) {
	left, right, err := splitTurnstile(source)
	if err != nil {
		return nil, err
	}
	concl, err := parser.ParseFormula(strings.TrimSpace(right))
	if err != nil {
		return nil, fmt.Errorf("parsing conclusion: %w", err)
	}
	var premises []formula.Formula
	for _, part := range splitTopLevelCommas(left) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := parser.ParseFormula(part)
		if err != nil {
			return nil, fmt.Errorf("parsing premise %q: %w", part, err)
		}
		premises = append(premises, f)
	}
	return &Statement{Premises: premises, Conclusion: concl}, nil
}

// splitTurnstile locates the top-level |- or |= and splits source around
// it. Parenthesis depth is tracked so a turnstile can never appear inside
// a predicate's argument list (the grammar never allows one there, but a
// malformed input might try).
func splitTurnstile(source string) (left, right string, err error) {
	depth := 0
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 && i+1 < len(source) && (source[i+1] == '-' || source[i+1] == '=') {
				return source[:i], source[i+2:], nil
			}
		}
	}
	return "", "", fmt.Errorf("theorem statement has no |- (turnstile)")
}

// splitTopLevelCommas splits a premise list on commas that occur outside
// any parenthesis nesting, so predicate argument lists (P(a,b)) are not
// split apart.
func splitTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// String renders a Statement the way the original's toString does:
// "premise, premise |- conclusion", or "|- conclusion" with none.
func (s *Statement) String() string {
	if len(s.Premises) == 0 {
		return "|- " + s.Conclusion.String()
	}
	parts := make([]string, len(s.Premises))
	for i, p := range s.Premises {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ") + " |- " + s.Conclusion.String()
}

// Matches reports whether s's premises (as a multiset, by structural
// equality) and conclusion (structurally) agree with checkedPremises and
// checkedConclusion — a successfully checked proof's own Result fields.
func (s *Statement) Matches(checkedPremises []formula.Formula, checkedConclusion formula.Formula) bool {
	if checkedConclusion == nil || !s.Conclusion.Equal(checkedConclusion) {
		return false
	}
	return sameMultiset(s.Premises, checkedPremises)
}

func sameMultiset(a, b []formula.Formula) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, fa := range a {
		found := false
		for j, fb := range b {
			if !used[j] && fa.Equal(fb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
