// Package rules implements the soundness evaluator for every inference
// rule, grounded line for line on the *Def classes' evaluation() methods
// in nadia_pt_fo.py (ImplicationEliminationDef, ImplicationIntroductionDef,
// DisjunctionIntroductionDef, AndIntroductionDef, AndEliminationDef,
// DisjunctionEliminationDef, NegationIntroductionDef, NegationEliminationDef,
// BottomDef, RaaDef, CopyDef, ForAllEliminationDef, ExistsIntroductionDef,
// ExistsEliminationtionDef, ForAllIntroductiontionDef).
package rules

import (
	"strconv"

	"github.com/daviromero/nadia/internal/ast"
	"github.com/daviromero/nadia/internal/diagnostics"
	"github.com/daviromero/nadia/internal/formula"
	"github.com/daviromero/nadia/internal/symbols"
)

// Collector receives diagnostics as rule evaluation discovers them. A proof
// keeps checking every line even after a failure, so every violation on a
// line is reported, not just the first.
type Collector interface {
	Add(d diagnostics.Diagnostic)
}

// Diagnostics is a simple slice-backed Collector.
type Diagnostics []diagnostics.Diagnostic

func (d *Diagnostics) Add(diag diagnostics.Diagnostic) { *d = append(*d, diag) }

func lineNum(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// checkReferenceBefore reports REFERENCED_LINE_NOT_DEFINED when ref does not
// occur strictly before line, mirroring check_line_reference_before_rule_error.
func checkReferenceBefore(line string, ref ast.Ref, out Collector) bool {
	if lineNum(ref.Line) >= lineNum(line) {
		out.Add(diagnostics.Diagnostic{
			Kind: diagnostics.ReferencedLineNotDefined, Line: ref.Tok.Line, Column: ref.Tok.Column,
			Args: []string{ref.Line},
		})
		return false
	}
	return true
}

// checkReferenceVisible reports USING_DISCARDED_RULE when ref's formula is
// not visible from line (it belongs to a box already closed by line),
// mirroring check_line_scope_reference_error.
func checkReferenceVisible(table *symbols.Table, line string, ref ast.Ref, out Collector) (formula.Formula, bool) {
	f, ok := table.LookupFormulaByLine(line, ref.Line)
	if !ok {
		out.Add(diagnostics.Diagnostic{
			Kind: diagnostics.UsingDiscardedRule, Line: ref.Tok.Line, Column: ref.Tok.Column,
			Args: []string{ref.Line},
		})
	}
	return f, ok
}

// checkScopeDelimiter reports INVALID_SCOPE_DELIMITER when [start,end] is not
// a valid box, mirroring check_scope_reference_error.
func checkScopeDelimiter(table *symbols.Table, line string, start, end ast.Ref, out Collector) (formula.Formula, formula.Formula, bool) {
	first, last, ok := table.CheckScopeDelimiter(start.Line, end.Line)
	if !ok {
		out.Add(diagnostics.Diagnostic{
			Kind: diagnostics.InvalidScopeDelimiter, Line: start.Tok.Line, Column: start.Tok.Column,
		})
		return first, last, ok
	}
	if !(lineNum(line) > lineNum(end.Line) && lineNum(end.Line) >= lineNum(start.Line)) {
		out.Add(diagnostics.Diagnostic{
			Kind: diagnostics.InvalidScopeDelimiter, Line: start.Tok.Line, Column: start.Tok.Column,
		})
		return first, last, false
	}
	return first, last, true
}

// checkBoxDisposedImmediately reports BOX_MUST_BE_DISPOSED_BY_RULE when the
// box closed at end is not discharged on the very next line after it,
// mirroring check_scope_reference_error's "box is not imediatally closed by
// the rule" branch. Skipped for a Copy standing in for the discharge (the
// original's is_copied escape hatch).
func checkBoxDisposedImmediately(line string, start, end ast.Ref, copied bool, out Collector) {
	if copied {
		return
	}
	if lineNum(line) != lineNum(end.Line)+1 {
		out.Add(diagnostics.Diagnostic{
			Kind: diagnostics.BoxMustBeDisposedByRule, Line: start.Tok.Line, Column: start.Tok.Column,
		})
	}
}

// CheckAllBoxesDisposed reports BOX_MUST_BE_DISPOSED for every closed,
// non-root scope that no ¬i, raa, →i, ∨e, ∃e or ∀i rule anywhere in the
// proof discharges, mirroring check_is_closed_boxes_by_rule. Run once after
// every line has been evaluated, this is a global existence check; it is
// distinct from checkBoxDisposedImmediately's per-rule discharge-timing
// check, which only fires once a discharging rule is already known to
// reference the box.
func CheckAllBoxesDisposed(table *symbols.Table, out Collector) {
	discharged := map[string]bool{}
	mark := func(s, e ast.Ref) { discharged[s.Line+"-"+e.Line] = true }
	for _, sc := range table.Scopes {
		for _, r := range sc.Records {
			switch rec := r.(type) {
			case *ast.ImpIntro:
				mark(rec.Reference(0), rec.Reference(1))
			case *ast.NotIntro:
				mark(rec.Reference(0), rec.Reference(1))
			case *ast.Raa:
				mark(rec.Reference(0), rec.Reference(1))
			case *ast.ForallIntro:
				mark(rec.Reference(0), rec.Reference(1))
			case *ast.ExistsElim:
				mark(rec.Reference(1), rec.Reference(2))
			case *ast.OrElim:
				mark(rec.Reference(1), rec.Reference(2))
				mark(rec.Reference(3), rec.Reference(4))
			}
		}
	}
	for _, s := range table.Scopes {
		if s.Parent == nil || !s.Closed {
			continue
		}
		if discharged[s.StartLine+"-"+s.EndLine] {
			continue
		}
		line, col := posOf(table, s.StartLine)
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.BoxMustBeDisposed, Line: line, Column: col})
	}
}

func posOf(table *symbols.Table, line string) (int, int) {
	if p, ok := table.FindToken(line); ok {
		return p.Line, p.Column
	}
	return 0, 0
}

// Evaluate dispatches a LineRecord to its rule-specific evaluator. Premise,
// Hypothesis, HypothesisFO, BoxVariableOpener, BoxClose and Malformed carry
// no soundness obligation of their own (evaluation() is a no-op for them in
// the original) and are skipped.
func Evaluate(table *symbols.Table, rec ast.LineRecord, out Collector) {
	switch r := rec.(type) {
	case *ast.ImpElim:
		evalImpElim(table, r, out)
	case *ast.ImpIntro:
		evalImpIntro(table, r, out)
	case *ast.OrIntro:
		evalOrIntro(table, r, out)
	case *ast.AndIntro:
		evalAndIntro(table, r, out)
	case *ast.AndElim:
		evalAndElim(table, r, out)
	case *ast.OrElim:
		evalOrElim(table, r, out)
	case *ast.NotIntro:
		evalNotIntro(table, r, out)
	case *ast.NotElim:
		evalNotElim(table, r, out)
	case *ast.BotElim:
		evalBotElim(table, r, out)
	case *ast.Raa:
		evalRaa(table, r, out)
	case *ast.Copy:
		evalCopy(table, r, out)
	case *ast.ForallElim:
		evalForallElim(table, r, out)
	case *ast.ExistsIntro:
		evalExistsIntro(table, r, out)
	case *ast.ExistsElim:
		evalExistsElim(table, r, out)
	case *ast.ForallIntro:
		evalForallIntro(table, r, out)
	}
}

func evalImpElim(table *symbols.Table, r *ast.ImpElim, out Collector) {
	ref1, ref2 := r.Reference(0), r.Reference(1)
	before := checkReferenceBefore(r.Line, ref1, out) && checkReferenceBefore(r.Line, ref2, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
		checkReferenceVisible(table, r.Line, ref2, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok1 := table.LookupFormulaByLine(r.Line, ref1.Line)
	f2, ok2 := table.LookupFormulaByLine(r.Line, ref2.Line)
	if !ok1 || !ok2 {
		return
	}
	concl := r.RecordFormula()
	left := formula.NewBinary(formula.Implies, f1, concl)
	right := formula.NewBinary(formula.Implies, f2, concl)
	if !left.Equal(f2) && !right.Equal(f1) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidResult, Line: line, Column: col, Args: []string{ref1.Line}})
	}
}

func evalImpIntro(table *symbols.Table, r *ast.ImpIntro, out Collector) {
	bs, be := r.Reference(0), r.Reference(1)
	checkReferenceBefore(r.Line, bs, out)
	checkReferenceBefore(r.Line, be, out)
	first, last, ok := checkScopeDelimiter(table, r.Line, bs, be, out)
	checkBoxDisposedImmediately(r.Line, bs, be, r.IsCopied(), out)
	line, col := posOf(table, r.Line)
	if !ok || first == nil || last == nil {
		return
	}
	concl := r.RecordFormula()
	bin, isBin := concl.(*formula.Binary)
	if !isBin || !bin.IsImplication() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidResult, Line: line, Column: col})
		return
	}
	if !bin.Left.Equal(first) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidHypothesis, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
	}
	if !bin.Right.Equal(last) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidBoxResult, Line: be.Tok.Line, Column: be.Tok.Column, Args: []string{be.Line}})
	}
}

func evalOrIntro(table *symbols.Table, r *ast.OrIntro, out Collector) {
	ref1 := r.Reference(0)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok {
		return
	}
	concl := r.RecordFormula()
	bin, isBin := concl.(*formula.Binary)
	if !isBin || !bin.IsDisjunction() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.IsNotDisjunction, Line: line, Column: col})
		return
	}
	if !bin.Left.Equal(f1) && !bin.Right.Equal(f1) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidLeftOrRightDisjunction, Line: ref1.Tok.Line, Column: ref1.Tok.Column, Args: []string{ref1.Line}})
	}
}

func evalAndIntro(table *symbols.Table, r *ast.AndIntro, out Collector) {
	ref1, ref2 := r.Reference(0), r.Reference(1)
	before := checkReferenceBefore(r.Line, ref1, out) && checkReferenceBefore(r.Line, ref2, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
		checkReferenceVisible(table, r.Line, ref2, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok1 := table.LookupFormulaByLine(r.Line, ref1.Line)
	f2, ok2 := table.LookupFormulaByLine(r.Line, ref2.Line)
	if !ok1 || !ok2 {
		return
	}
	concl := r.RecordFormula()
	bin, isBin := concl.(*formula.Binary)
	if !isBin || !bin.IsConjunction() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.IsNotConjunction, Line: ref1.Tok.Line, Column: ref1.Tok.Column, Args: []string{ref1.Line}})
		return
	}
	if !bin.Left.Equal(f1) && !bin.Left.Equal(f2) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidLeftConjunction, Line: line, Column: col})
	}
	if !bin.Right.Equal(f1) && !bin.Right.Equal(f2) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidRightConjunction, Line: line, Column: col})
	}
}

func evalAndElim(table *symbols.Table, r *ast.AndElim, out Collector) {
	ref1 := r.Reference(0)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok {
		return
	}
	bin, isBin := f1.(*formula.Binary)
	if !isBin || !bin.IsConjunction() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.IsNotConjunction, Line: line, Column: col})
		return
	}
	concl := r.RecordFormula()
	if !bin.Left.Equal(concl) && !bin.Right.Equal(concl) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidLeftOrRightConjunction, Line: ref1.Tok.Line, Column: ref1.Tok.Column, Args: []string{ref1.Line}})
	}
}

func evalOrElim(table *symbols.Table, r *ast.OrElim, out Collector) {
	ref1, b2s, b2e, b3s, b3e := r.Reference(0), r.Reference(1), r.Reference(2), r.Reference(3), r.Reference(4)
	checkScopeDelimiter(table, r.Line, b2s, b2e, out)
	if lineNum(b3s.Line) != lineNum(b2e.Line)+1 {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidScopeDelimiter, Line: b3s.Tok.Line, Column: b3s.Tok.Column})
	}
	checkScopeDelimiter(table, r.Line, b3s, b3e, out)
	checkBoxDisposedImmediately(r.Line, b3s, b3e, r.IsCopied(), out)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok1 := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok1 {
		return
	}
	f2, f3, ok2 := table.CheckScopeDelimiter(b2s.Line, b2e.Line)
	f4, f5, ok3 := table.CheckScopeDelimiter(b3s.Line, b3e.Line)
	if !ok2 || !ok3 || f2 == nil || f3 == nil || f4 == nil {
		return
	}
	bin, isBin := f1.(*formula.Binary)
	if !isBin || !bin.IsDisjunction() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.IsNotDisjunction, Line: ref1.Tok.Line, Column: ref1.Tok.Column, Args: []string{ref1.Line}})
		return
	}
	if !bin.Left.Equal(f2) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidHypothesis, Line: b2s.Tok.Line, Column: b2s.Tok.Column, Args: []string{b2s.Line}})
	}
	if !bin.Right.Equal(f4) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidHypothesis, Line: b3s.Tok.Line, Column: b3s.Tok.Column, Args: []string{b3s.Line}})
	}
	concl := r.RecordFormula()
	if !concl.Equal(f3) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidBoxResult, Line: b2e.Tok.Line, Column: b2e.Tok.Column, Args: []string{b2e.Line}})
	}
	if !concl.Equal(f5) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidBoxResult, Line: b3e.Tok.Line, Column: b3e.Tok.Column, Args: []string{b3e.Line}})
	}
	_ = line
	_ = col
}

func evalNotIntro(table *symbols.Table, r *ast.NotIntro, out Collector) {
	bs, be := r.Reference(0), r.Reference(1)
	checkReferenceBefore(r.Line, bs, out)
	checkReferenceBefore(r.Line, be, out)
	first, last, ok := checkScopeDelimiter(table, r.Line, bs, be, out)
	checkBoxDisposedImmediately(r.Line, bs, be, r.IsCopied(), out)
	line, col := posOf(table, r.Line)
	if !ok || first == nil || last == nil {
		return
	}
	concl := r.RecordFormula()
	neg, isNeg := concl.(*formula.Negation)
	if !isNeg {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidResult, Line: line, Column: col})
		return
	}
	if !neg.Sub.Equal(first) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidHypothesis, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
	}
	if !formula.IsBottom(last) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidBoxResult, Line: be.Tok.Line, Column: be.Tok.Column, Args: []string{be.Line}})
	}
}

func evalNotElim(table *symbols.Table, r *ast.NotElim, out Collector) {
	ref1, ref2 := r.Reference(0), r.Reference(1)
	before := checkReferenceBefore(r.Line, ref1, out) && checkReferenceBefore(r.Line, ref2, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
		checkReferenceVisible(table, r.Line, ref2, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok1 := table.LookupFormulaByLine(r.Line, ref1.Line)
	f2, ok2 := table.LookupFormulaByLine(r.Line, ref2.Line)
	if !ok1 || !ok2 {
		return
	}
	if !formula.IsBottom(r.RecordFormula()) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidResult, Line: line, Column: col})
		return
	}
	if !formula.NewNegation(f2).Equal(f1) && !formula.NewNegation(f1).Equal(f2) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidNegation, Line: ref1.Tok.Line, Column: ref1.Tok.Column})
	}
}

func evalBotElim(table *symbols.Table, r *ast.BotElim, out Collector) {
	ref1 := r.Reference(0)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	f1, ok := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok {
		return
	}
	if !formula.IsBottom(f1) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.IsNotBottom, Line: ref1.Tok.Line, Column: ref1.Tok.Column, Args: []string{ref1.Line}})
	}
}

func evalRaa(table *symbols.Table, r *ast.Raa, out Collector) {
	ref1, ref2 := r.Reference(0), r.Reference(1)
	checkReferenceBefore(r.Line, ref1, out)
	checkReferenceBefore(r.Line, ref2, out)
	first, last, ok := checkScopeDelimiter(table, r.Line, ref1, ref2, out)
	checkBoxDisposedImmediately(r.Line, ref1, ref2, r.IsCopied(), out)
	if !ok || first == nil || last == nil {
		return
	}
	concl := r.RecordFormula()
	if !formula.NewNegation(concl).Equal(first) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidHypothesis, Line: ref1.Tok.Line, Column: ref1.Tok.Column, Args: []string{ref1.Line}})
	}
	if !formula.IsBottom(last) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidBoxResult, Line: ref2.Tok.Line, Column: ref2.Tok.Column, Args: []string{ref2.Line}})
	}
}

func evalCopy(table *symbols.Table, r *ast.Copy, out Collector) {
	ref1 := r.Reference(0)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok {
		return
	}
	if !f1.Equal(r.RecordFormula()) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.CopyDifferentFormula, Line: line, Column: col})
	}
}

func evalForallElim(table *symbols.Table, r *ast.ForallElim, out Collector) {
	ref1 := r.Reference(0)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok {
		return
	}
	q, isQ := f1.(*formula.Quantifier)
	if !isQ || !q.IsUniversal() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidUniversalFormula, Line: ref1.Tok.Line, Column: ref1.Tok.Column})
		return
	}
	if !q.ValidSubstitution(r.RecordFormula()) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidSubstitutionUniversal, Line: line, Column: col,
			Args: []string{r.RecordFormula().String(), ref1.Line}})
	}
}

func evalExistsIntro(table *symbols.Table, r *ast.ExistsIntro, out Collector) {
	ref1 := r.Reference(0)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	line, col := posOf(table, r.Line)
	f1, ok := table.LookupFormulaByLine(r.Line, ref1.Line)
	if !ok {
		return
	}
	concl := r.RecordFormula()
	q, isQ := concl.(*formula.Quantifier)
	if !isQ || !q.IsExistential() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidExistentialFormula, Line: line, Column: col})
		return
	}
	if !q.ValidSubstitution(f1) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidSubstitutionExistential, Line: line, Column: col,
			Args: []string{concl.String(), ref1.Line}})
	}
}

func evalExistsElim(table *symbols.Table, r *ast.ExistsElim, out Collector) {
	ref1, bs, be := r.Reference(0), r.Reference(1), r.Reference(2)
	before := checkReferenceBefore(r.Line, ref1, out)
	if before {
		checkReferenceVisible(table, r.Line, ref1, out)
	}
	checkScopeDelimiter(table, r.Line, bs, be, out)
	checkBoxDisposedImmediately(r.Line, bs, be, r.IsCopied(), out)

	variable, hasVar := table.FindScopeVariable(bs.Line)
	if !hasVar {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.BoxMustHaveAVariable, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
		return
	}
	if !table.IsFreshVariable(bs.Line) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.VariableIsNotFreshVariable, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
	}

	f1, ok1 := table.LookupFormulaByLine(r.Line, ref1.Line)
	boxFirst, boxLast, ok2 := table.CheckScopeDelimiter(bs.Line, be.Line)
	if !ok1 || !ok2 || boxFirst == nil || boxLast == nil {
		return
	}
	concl := r.RecordFormula()
	if !concl.Equal(boxLast) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidConclusionExistentialLastRule, Line: be.Tok.Line, Column: be.Tok.Column, Args: []string{be.Line}})
	}
	q, isQ := f1.(*formula.Quantifier)
	if !isQ || !q.IsExistential() {
		line, col := posOf(table, r.Line)
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidExistentialFormula, Line: line, Column: col})
	} else if !q.Sub.Substitute(q.Variable, variable).Equal(boxFirst) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidSubstitutionExistential, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{q.String(), ref1.Line}})
	}
	if boxLast.FreeVariables()[variable] {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidConclusionExistential, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
	}
}

func evalForallIntro(table *symbols.Table, r *ast.ForallIntro, out Collector) {
	bs, be := r.Reference(0), r.Reference(1)
	checkReferenceBefore(r.Line, bs, out)
	checkScopeDelimiter(table, r.Line, bs, be, out)
	checkBoxDisposedImmediately(r.Line, bs, be, r.IsCopied(), out)

	variable, hasVar := table.FindScopeVariable(bs.Line)
	if !hasVar {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.BoxMustHaveAVariable, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
		return
	}
	firstRule := table.GetFirstRuleFromScope(bs.Line)
	if _, isHypFO := firstRule.(*ast.HypothesisFO); isHypFO {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.BoxMustHaveOnlyAVariable, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
		return
	}
	if !table.IsFreshVariable(bs.Line) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.VariableIsNotFreshVariable, Line: bs.Tok.Line, Column: bs.Tok.Column, Args: []string{bs.Line}})
	}

	// check_scope_delimiter always returns a nil opener formula for a
	// variable-only box (there is no formula to the right of "{ v"); unlike
	// the original, this does not abort the remaining checks (see
	// CheckScopeDelimiter's doc comment).
	_, boxLast, ok := table.CheckScopeDelimiter(bs.Line, be.Line)
	if !ok || boxLast == nil {
		return
	}
	concl := r.RecordFormula()
	line, col := posOf(table, r.Line)
	q, isQ := concl.(*formula.Quantifier)
	if !isQ || !q.IsUniversal() {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidConclusionUniversalLastRule, Line: be.Tok.Line, Column: be.Tok.Column, Args: []string{be.Line}})
	} else if !q.Sub.Substitute(q.Variable, variable).Equal(boxLast) {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidConclusionUniversalLastRule, Line: be.Tok.Line, Column: be.Tok.Column, Args: []string{be.Line}})
	}
	if concl.FreeVariables()[variable] {
		out.Add(diagnostics.Diagnostic{Kind: diagnostics.InvalidConclusionUniversal, Line: line, Column: col, Args: []string{bs.Line}})
	}
}
