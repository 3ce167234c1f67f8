// Package render produces the two proof presentations spec.md §4.7/§6
// requires: a Fitch-style linear box layout and a Gentzen-style tree,
// both emitted as LaTeX markup, grounded on ParserNadia's box_latex
// accumulator and the *Def.toLatex methods in nadia_pt_fo.py.
package render

import (
	"strconv"
	"strings"

	"github.com/daviromero/nadia/internal/ast"
	"github.com/daviromero/nadia/internal/symbols"
)

// Fitch renders the proof as a \begin{logicproof}{n}...\end{logicproof}
// block, one row per line in source order, indentation following box
// nesting depth via subproof environments, mirroring box_latex.
func Fitch(table *symbols.Table) string {
	var b strings.Builder
	b.WriteString("\\begin{logicproof}{6}\n")
	writeScope(&b, table.Root())
	b.WriteString("\\end{logicproof}")
	return b.String()
}

func writeScope(b *strings.Builder, s *symbols.Scope) {
	if s.Parent != nil {
		b.WriteString("\\begin{subproof}\n")
		if s.HasVar {
			b.WriteString("\\llap{$" + s.Variable + "\\quad$} &\\\\\n")
		}
	}
	for _, rec := range s.Records {
		if child := childClosedBy(s, rec); child != nil {
			writeScope(b, child)
			continue
		}
		writeFitchLine(b, rec)
	}
	if s.Parent != nil {
		b.WriteString("\\end{subproof}\n")
	}
}

// childClosedBy returns the child scope that the box-close record rec ends.
// A box's own records (its opener included) live in the child Scope; the
// parent only holds the BoxClose that follows them, so each child is
// rendered where its BoxClose sits in the parent's record walk.
func childClosedBy(s *symbols.Scope, rec ast.LineRecord) *symbols.Scope {
	if _, ok := rec.(*ast.BoxClose); !ok {
		return nil
	}
	for _, child := range s.Children {
		if child.Closed && child.EndLine == rec.RecordLine() {
			return child
		}
	}
	return nil
}

func writeFitchLine(b *strings.Builder, rec ast.LineRecord) {
	switch r := rec.(type) {
	case *ast.Premise:
		b.WriteString(r.RecordFormula().Latex() + " & premissa\\\\\n")
	case *ast.Hypothesis:
		b.WriteString(r.RecordFormula().Latex() + " & hipótese\\\\\n")
	case *ast.HypothesisFO:
		b.WriteString("\\llap{$" + r.Variable + "\\quad$}" + r.RecordFormula().Latex() + " & hipótese\\\\\n")
	case *ast.BoxVariableOpener:
		// handled by the enclosing subproof header
	case *ast.BoxClose:
		// no row of its own; \end{subproof} closes the block
	case *ast.AndIntro:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\land i", r.Reference(0).Line+","+r.Reference(1).Line))
	case *ast.AndElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\land e", r.Reference(0).Line))
	case *ast.OrIntro:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\lor i", r.Reference(0).Line))
	case *ast.OrElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\lor e",
			r.Reference(0).Line+","+r.Reference(1).Line+"-"+r.Reference(2).Line+","+r.Reference(3).Line+"-"+r.Reference(4).Line))
	case *ast.ImpIntro:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\rightarrow i", r.Reference(0).Line+"-"+r.Reference(1).Line))
	case *ast.ImpElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\rightarrow e", r.Reference(0).Line+","+r.Reference(1).Line))
	case *ast.NotIntro:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\lnot i", r.Reference(0).Line+"-"+r.Reference(1).Line))
	case *ast.NotElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\lnot e", r.Reference(0).Line+","+r.Reference(1).Line))
	case *ast.BotElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\bot e", r.Reference(0).Line))
	case *ast.Raa:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "raa", r.Reference(0).Line+"-"+r.Reference(1).Line))
	case *ast.Copy:
		b.WriteString(r.RecordFormula().Latex() + " & copie " + r.Reference(0).Line + "\\\\\n")
	case *ast.ForallElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\forall e", r.Reference(0).Line))
	case *ast.ForallIntro:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\forall i", r.Reference(0).Line+"-"+r.Reference(1).Line))
	case *ast.ExistsIntro:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\exists i", r.Reference(0).Line))
	case *ast.ExistsElim:
		b.WriteString(fmtRule(r.RecordFormula().Latex(), "\\exists e",
			r.Reference(0).Line+","+r.Reference(1).Line+"-"+r.Reference(2).Line))
	}
}

func fmtRule(formulaLatex, ruleName, refs string) string {
	return formulaLatex + " & $" + ruleName + "$ " + refs + "\\\\\n"
}

// hypothesisNumbering is call-local state assigning discharge labels in
// recursion order, mirroring the original's module-global hypothesis dict
// (made per-call here so two renders never interfere — spec.md §5's
// no-shared-state rule for the core).
type hypothesisNumbering struct {
	n      int
	byLine map[string]string
}

func newHypothesisNumbering() *hypothesisNumbering {
	return &hypothesisNumbering{byLine: map[string]string{}}
}

func (h *hypothesisNumbering) assign(line string) string {
	if existing, ok := h.byLine[line]; ok {
		return existing
	}
	h.n++
	label := strconv.Itoa(h.n)
	h.byLine[line] = label
	return label
}

// Gentzen renders the proof as a single \[ \infer[...]{...}{...} \] tree,
// built by post-order recursion from the conclusion's record, grounded on
// the *Def.toLatex methods (each one a node of the infer tree).
func Gentzen(table *symbols.Table) string {
	h := newHypothesisNumbering()
	root := table.Root()
	if len(root.Records) == 0 {
		return "\\[\\]\n"
	}
	last := root.Records[len(root.Records)-1]
	return "\\[" + gentzenNode(table, last, h) + "\\]\n"
}

func gentzenNode(table *symbols.Table, rec ast.LineRecord, h *hypothesisNumbering) string {
	switch r := rec.(type) {
	case *ast.Premise:
		return "{" + r.RecordFormula().Latex() + "}"
	case *ast.Hypothesis:
		label := h.assign(r.Line)
		return "\\big[" + r.RecordFormula().Latex() + "\\big]^{_{" + label + "}}"
	case *ast.HypothesisFO:
		label := h.assign(r.Line)
		return "\\big[" + r.RecordFormula().Latex() + "\\big]^{_{" + label + "}}"
	case *ast.Copy:
		if orig, ok := r.OriginalHypothesisLine(); ok {
			if hyp := table.GetRule(orig); hyp != nil {
				return gentzenNode(table, hyp, h)
			}
		}
		return "{" + r.RecordFormula().Latex() + "}"
	case *ast.AndIntro:
		return infer("\\!\\!{\\land\\text{i}}", r.RecordFormula(),
			ruleAt(table, r.Reference(0).Line, h), ruleAt(table, r.Reference(1).Line, h))
	case *ast.AndElim:
		return infer("\\!\\!{\\land\\text{e}}", r.RecordFormula(), ruleAt(table, r.Reference(0).Line, h))
	case *ast.OrIntro:
		return infer("\\!\\!{\\lor\\text{i}}", r.RecordFormula(), ruleAt(table, r.Reference(0).Line, h))
	case *ast.OrElim:
		label1 := h.assign(r.Reference(1).Line)
		label2 := h.assign(r.Reference(3).Line)
		return infer("\\!\\!{\\lor\\text{e}^{_{"+label1+", "+label2+"} } }", r.RecordFormula(),
			ruleAt(table, r.Reference(0).Line, h), ruleAt(table, r.Reference(2).Line, h), ruleAt(table, r.Reference(4).Line, h))
	case *ast.ImpIntro:
		label := h.assign(r.Reference(0).Line)
		return infer("\\!\\!{\\rightarrow\\text{i}^{_"+label+"}}", r.RecordFormula(), ruleAt(table, r.Reference(1).Line, h))
	case *ast.ImpElim:
		return infer("\\!\\!{\\rightarrow\\text{e}}", r.RecordFormula(),
			ruleAt(table, r.Reference(0).Line, h), ruleAt(table, r.Reference(1).Line, h))
	case *ast.NotIntro:
		label := h.assign(r.Reference(0).Line)
		return infer("\\!\\!{\\lnot\\text{i}^{_"+label+"}}", r.RecordFormula(), ruleAt(table, r.Reference(1).Line, h))
	case *ast.NotElim:
		return infer("\\!\\!{\\lnot\\text{e}}", r.RecordFormula(),
			ruleAt(table, r.Reference(0).Line, h), ruleAt(table, r.Reference(1).Line, h))
	case *ast.BotElim:
		return infer("\\!\\!{\\bot e}", r.RecordFormula(), ruleAt(table, r.Reference(0).Line, h))
	case *ast.Raa:
		label := h.assign(r.Reference(0).Line)
		return infer("\\!\\!{\\text{raa}^_{"+label+"} }", r.RecordFormula(), ruleAt(table, r.Reference(1).Line, h))
	case *ast.ForallElim:
		return infer("\\!\\!\\forall\\text{e}", r.RecordFormula(), ruleAt(table, r.Reference(0).Line, h))
	case *ast.ForallIntro:
		h.assign(r.Reference(1).Line)
		return infer("\\!\\!{\\forall\\text{i}}", r.RecordFormula(), ruleAt(table, r.Reference(1).Line, h))
	case *ast.ExistsIntro:
		return infer("\\!\\!\\exists\\text{i}", r.RecordFormula(), ruleAt(table, r.Reference(0).Line, h))
	case *ast.ExistsElim:
		label := h.assign(r.Reference(1).Line)
		return "\\infer[\\!\\!{\\exists\\text{e}^{_" + label + "} }]{" + r.RecordFormula().Latex() + "}{" +
			ruleAt(table, r.Reference(0).Line, h) + " & " + ruleAt(table, r.Reference(2).Line, h) + "}"
	default:
		return "{}"
	}
}

func infer(label string, concl interface{ Latex() string }, premises ...string) string {
	var b strings.Builder
	b.WriteString("\\infer[" + label + "]{" + concl.Latex() + "}{")
	for i, p := range premises {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString("{" + p + "}")
	}
	b.WriteString("}")
	return b.String()
}

func ruleAt(table *symbols.Table, line string, h *hypothesisNumbering) string {
	rec := table.GetRule(line)
	if rec == nil {
		return "{}"
	}
	return gentzenNode(table, rec, h)
}
