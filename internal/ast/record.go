// Package ast holds LineRecord, the tagged variant of one proof-line
// justification, grounded on the *Def classes in nadia_pt_fo.py
// (PremisseDef, HypothesisDef, ImplicationIntroductionDef, ...).
package ast

import "github.com/daviromero/nadia/internal/formula"

// Ref is a reference to a previously-numbered line, carrying the source
// token's text so diagnostics can point back at it (spec.md's "references
// as tokens, not pointers").
type Ref struct {
	Line   string // the referenced line number, as written in source
	Tok    Pos    // source position of the reference token itself
}

// Pos is a source position, used to anchor diagnostics.
type Pos struct {
	Line   int
	Column int
	Text   string // the raw source line the position falls on
}

// LineRecord is implemented by every justification kind. Line is the
// proof-assigned line number (as a string, matching how the symbol table
// indexes records); Formula is nil for BoxVariableOpener (the pure-variable
// opening of a universal-introduction box).
type LineRecord interface {
	isLineRecord()
	RecordLine() string
	RecordFormula() formula.Formula
	RecordPos() Pos
	// IsCopied marks a record produced by a Copy rule that is standing in
	// for an original hypothesis, for Gentzen discharge-identity purposes.
	IsCopied() bool
}

type base struct {
	Line     string
	Formula  formula.Formula
	Pos      Pos
	Copied   bool
}

func (b base) RecordLine() string          { return b.Line }
func (b base) RecordFormula() formula.Formula { return b.Formula }
func (b base) RecordPos() Pos              { return b.Pos }
func (b base) IsCopied() bool              { return b.Copied }

// Premise is a user-asserted premise line ("N. F pre").
type Premise struct{ base }

func NewPremise(line string, f formula.Formula, pos Pos) *Premise {
	return &Premise{base{Line: line, Formula: f, Pos: pos}}
}
func (*Premise) isLineRecord() {}

// Hypothesis opens a propositional box ("N. { F hip").
type Hypothesis struct{ base }

func NewHypothesis(line string, f formula.Formula, pos Pos) *Hypothesis {
	return &Hypothesis{base{Line: line, Formula: f, Pos: pos}}
}
func (*Hypothesis) isLineRecord() {}

// HypothesisFO opens a box introducing a fresh variable and a hypothesis
// ("N. { v F hip"), used by ∃e.
type HypothesisFO struct {
	base
	Variable string
}

func NewHypothesisFO(line, variable string, f formula.Formula, pos Pos) *HypothesisFO {
	return &HypothesisFO{base: base{Line: line, Formula: f, Pos: pos}, Variable: variable}
}
func (*HypothesisFO) isLineRecord() {}

// BoxVariableOpener opens a box introducing only a fresh variable
// ("N. { v"), used by ∀i. It carries no formula.
type BoxVariableOpener struct {
	base
	Variable string
}

func NewBoxVariableOpener(line, variable string, pos Pos) *BoxVariableOpener {
	return &BoxVariableOpener{base: base{Line: line, Pos: pos}, Variable: variable}
}
func (*BoxVariableOpener) isLineRecord() {}

// BoxClose closes the innermost open box ("}"). Line is bound to the last
// line that was inside the closed box.
type BoxClose struct{ base }

func NewBoxClose(line string, pos Pos) *BoxClose {
	return &BoxClose{base{Line: line, Pos: pos}}
}
func (*BoxClose) isLineRecord() {}

// Malformed marks a line the parser recovered past after a known shape
// error (wrong rule arity), so the rest of the proof can still be walked.
type Malformed struct{ base }

func NewMalformed(line string, pos Pos) *Malformed {
	return &Malformed{base{Line: line, Pos: pos}}
}
func (*Malformed) isLineRecord() {}

// refRecord factors the common "Line/Formula/Pos plus N references" shape
// shared by every inference-rule record.
type refRecord struct {
	base
	Refs []Ref
}

func (r refRecord) Reference(i int) Ref { return r.Refs[i] }

// AndIntro is "&i(r1,r2)".
type AndIntro struct{ refRecord }

func NewAndIntro(line string, f formula.Formula, pos Pos, r1, r2 Ref) *AndIntro {
	return &AndIntro{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1, r2}}}
}
func (*AndIntro) isLineRecord() {}

// AndElim is "&e(r1)".
type AndElim struct{ refRecord }

func NewAndElim(line string, f formula.Formula, pos Pos, r1 Ref) *AndElim {
	return &AndElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1}}}
}
func (*AndElim) isLineRecord() {}

// OrIntro is "|i(r1)".
type OrIntro struct{ refRecord }

func NewOrIntro(line string, f formula.Formula, pos Pos, r1 Ref) *OrIntro {
	return &OrIntro{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1}}}
}
func (*OrIntro) isLineRecord() {}

// OrElim is "|e(r1, b2s..b2e, b3s..b3e)".
type OrElim struct {
	refRecord
	// Refs holds [r1, b2Start, b2End, b3Start, b3End].
}

func NewOrElim(line string, f formula.Formula, pos Pos, r1, b2s, b2e, b3s, b3e Ref) *OrElim {
	return &OrElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1, b2s, b2e, b3s, b3e}}}
}
func (*OrElim) isLineRecord() {}

// ImpIntro is "->i(bs..be)".
type ImpIntro struct{ refRecord }

func NewImpIntro(line string, f formula.Formula, pos Pos, bs, be Ref) *ImpIntro {
	return &ImpIntro{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{bs, be}}}
}
func (*ImpIntro) isLineRecord() {}

// ImpElim is "->e(r1,r2)".
type ImpElim struct{ refRecord }

func NewImpElim(line string, f formula.Formula, pos Pos, r1, r2 Ref) *ImpElim {
	return &ImpElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1, r2}}}
}
func (*ImpElim) isLineRecord() {}

// NotIntro is "~i(bs..be)".
type NotIntro struct{ refRecord }

func NewNotIntro(line string, f formula.Formula, pos Pos, bs, be Ref) *NotIntro {
	return &NotIntro{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{bs, be}}}
}
func (*NotIntro) isLineRecord() {}

// NotElim is "~e(r1,r2)".
type NotElim struct{ refRecord }

func NewNotElim(line string, f formula.Formula, pos Pos, r1, r2 Ref) *NotElim {
	return &NotElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1, r2}}}
}
func (*NotElim) isLineRecord() {}

// BotElim is "@e(r1)".
type BotElim struct{ refRecord }

func NewBotElim(line string, f formula.Formula, pos Pos, r1 Ref) *BotElim {
	return &BotElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1}}}
}
func (*BotElim) isLineRecord() {}

// Raa is "raa(bs..be)".
type Raa struct{ refRecord }

func NewRaa(line string, f formula.Formula, pos Pos, bs, be Ref) *Raa {
	return &Raa{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{bs, be}}}
}
func (*Raa) isLineRecord() {}

// Copy is "copie(r1)". A Copy that copies a hypothesis preserves the
// hypothesis's identity for Gentzen rendering via OriginalHypothesisLine.
type Copy struct {
	refRecord
	originalHypLine string
	originalHypOK   bool
}

func NewCopy(line string, f formula.Formula, pos Pos, r1 Ref) *Copy {
	return &Copy{refRecord: refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1}}}
}
func (*Copy) isLineRecord() {}

// SetOriginalHypothesis records that this copy stands in for the hypothesis
// opened at line, for discharge-identity purposes (spec.md §9's open
// question on cross-scope copie of a hypothesis).
func (c *Copy) SetOriginalHypothesis(line string) {
	c.originalHypLine, c.originalHypOK, c.Copied = line, true, true
}

// OriginalHypothesisLine returns the hypothesis line this copy is
// transparent for, if any.
func (c *Copy) OriginalHypothesisLine() (string, bool) { return c.originalHypLine, c.originalHypOK }

// ForallElim is "Ae(r1)".
type ForallElim struct{ refRecord }

func NewForallElim(line string, f formula.Formula, pos Pos, r1 Ref) *ForallElim {
	return &ForallElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1}}}
}
func (*ForallElim) isLineRecord() {}

// ForallIntro is "Ai(bs..be)".
type ForallIntro struct{ refRecord }

func NewForallIntro(line string, f formula.Formula, pos Pos, bs, be Ref) *ForallIntro {
	return &ForallIntro{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{bs, be}}}
}
func (*ForallIntro) isLineRecord() {}

// ExistsIntro is "Ei(r1)".
type ExistsIntro struct{ refRecord }

func NewExistsIntro(line string, f formula.Formula, pos Pos, r1 Ref) *ExistsIntro {
	return &ExistsIntro{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1}}}
}
func (*ExistsIntro) isLineRecord() {}

// ExistsElim is "Ee(r1, bs..be)".
type ExistsElim struct{ refRecord }

func NewExistsElim(line string, f formula.Formula, pos Pos, r1, bs, be Ref) *ExistsElim {
	return &ExistsElim{refRecord{base{Line: line, Formula: f, Pos: pos}, []Ref{r1, bs, be}}}
}
func (*ExistsElim) isLineRecord() {}
