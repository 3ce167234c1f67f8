// Package formula implements the abstract syntax of first-order formulas:
// structural equality, free/bound/all-variable sets, substitution and the
// substitutability test, grounded on BinaryFormula/NegationFormula/
// AtomFormula/PredicateFormula/QuantifierFormula in
// nadia_pt_fo.py.
package formula

import "sort"

// BinOp is a binary connective.
type BinOp int

const (
	And BinOp = iota
	Or
	Implies
	Iff
)

func (op BinOp) String() string {
	switch op {
	case And:
		return "&"
	case Or:
		return "|"
	case Implies:
		return "->"
	case Iff:
		return "<->"
	}
	return "?"
}

// QuantKind distinguishes universal from existential quantification.
type QuantKind int

const (
	ForAll QuantKind = iota
	Exists
)

func (k QuantKind) String() string {
	if k == ForAll {
		return "A"
	}
	return "E"
}

// Formula is a closed sum of the five formula shapes. It is implemented by
// *Atom, *Predicate, *Negation, *Binary and *Quantifier. The unexported
// marker method keeps the sum closed, replacing the original's class
// hierarchy (spec.md's "tagged variants instead of class hierarchies").
type Formula interface {
	isFormula()

	// String renders the formula using the surface ASCII grammar.
	String() string
	// Latex renders the formula using the original's LaTeX operator table.
	Latex() string

	// Equal is structural equality (not up to alpha-equivalence).
	Equal(other Formula) bool

	AllVariables() map[string]bool
	FreeVariables() map[string]bool
	BoundVariables() map[string]bool

	// Substitute replaces every free occurrence of x by the identifier t.
	Substitute(x, t string) Formula
	// IsSubstitutable reports whether substituting t for x avoids capture.
	IsSubstitutable(x, t string) bool
}

// Bottom is the distinguished atom "⊥", written "@" in source.
const Bottom = "@"

// Atom is a propositional atom, possibly the distinguished Bottom atom.
type Atom struct {
	Name string
}

func NewAtom(name string) *Atom { return &Atom{Name: name} }

func (*Atom) isFormula() {}

func (a *Atom) String() string { return a.Name }
func (a *Atom) Latex() string {
	if a.Name == Bottom {
		return "\\bot "
	}
	return a.Name
}

func (a *Atom) Equal(other Formula) bool {
	o, ok := other.(*Atom)
	return ok && a.Name == o.Name
}

func (a *Atom) AllVariables() map[string]bool  { return map[string]bool{} }
func (a *Atom) FreeVariables() map[string]bool { return map[string]bool{} }
func (a *Atom) BoundVariables() map[string]bool { return map[string]bool{} }

func (a *Atom) Substitute(x, t string) Formula         { return a }
func (a *Atom) IsSubstitutable(x, t string) bool { return true }

// IsBottom reports whether f is the distinguished bottom atom.
func IsBottom(f Formula) bool {
	a, ok := f.(*Atom)
	return ok && a.Name == Bottom
}

// Predicate is an n-ary predicate applied to an ordered list of
// identifiers (variables or constants — nadia does not distinguish them
// syntactically).
type Predicate struct {
	Name      string
	Variables []string
}

func NewPredicate(name string, vars []string) *Predicate {
	return &Predicate{Name: name, Variables: append([]string(nil), vars...)}
}

func (*Predicate) isFormula() {}

func (p *Predicate) String() string {
	if len(p.Variables) == 0 {
		return p.Name
	}
	s := p.Name + "("
	for i, v := range p.Variables {
		if i > 0 {
			s += ","
		}
		s += v
	}
	return s + ")"
}

func (p *Predicate) Latex() string { return p.String() }

func (p *Predicate) Equal(other Formula) bool {
	o, ok := other.(*Predicate)
	if !ok || p.Name != o.Name || len(p.Variables) != len(o.Variables) {
		return false
	}
	for i := range p.Variables {
		if p.Variables[i] != o.Variables[i] {
			return false
		}
	}
	return true
}

func (p *Predicate) AllVariables() map[string]bool {
	out := map[string]bool{}
	for _, v := range p.Variables {
		out[v] = true
	}
	return out
}

func (p *Predicate) FreeVariables() map[string]bool  { return p.AllVariables() }
func (p *Predicate) BoundVariables() map[string]bool { return map[string]bool{} }

func (p *Predicate) Substitute(x, t string) Formula {
	vars := make([]string, len(p.Variables))
	for i, v := range p.Variables {
		if v == x {
			vars[i] = t
		} else {
			vars[i] = v
		}
	}
	return &Predicate{Name: p.Name, Variables: vars}
}

func (p *Predicate) IsSubstitutable(x, t string) bool { return true }

// Negation is ¬sub.
type Negation struct {
	Sub Formula
}

func NewNegation(sub Formula) *Negation { return &Negation{Sub: sub} }

func (*Negation) isFormula() {}

func (n *Negation) String() string {
	if _, ok := n.Sub.(*Binary); ok {
		return "~(" + n.Sub.String() + ")"
	}
	return "~" + n.Sub.String()
}

func (n *Negation) Latex() string {
	if _, ok := n.Sub.(*Binary); ok {
		return "\\lnot(" + n.Sub.Latex() + ")"
	}
	return "\\lnot " + n.Sub.Latex()
}

func (n *Negation) Equal(other Formula) bool {
	o, ok := other.(*Negation)
	return ok && n.Sub.Equal(o.Sub)
}

func (n *Negation) AllVariables() map[string]bool  { return n.Sub.AllVariables() }
func (n *Negation) FreeVariables() map[string]bool { return n.Sub.FreeVariables() }
func (n *Negation) BoundVariables() map[string]bool {
	return setDiff(n.AllVariables(), n.FreeVariables())
}

func (n *Negation) Substitute(x, t string) Formula {
	return &Negation{Sub: n.Sub.Substitute(x, t)}
}

func (n *Negation) IsSubstitutable(x, t string) bool { return n.Sub.IsSubstitutable(x, t) }

// Binary is a binary connective applied to Left and Right.
type Binary struct {
	Op    BinOp
	Left  Formula
	Right Formula
}

func NewBinary(op BinOp, left, right Formula) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (*Binary) isFormula() {}

func wrap(f Formula) string {
	if _, ok := f.(*Binary); ok {
		return "(" + f.String() + ")"
	}
	return f.String()
}

func wrapLatex(f Formula) string {
	if _, ok := f.(*Binary); ok {
		return "(" + f.Latex() + ")"
	}
	return f.Latex()
}

func (b *Binary) String() string { return wrap(b.Left) + b.Op.String() + wrap(b.Right) }

var latexOps = map[BinOp]string{
	And: "\\land ", Or: "\\lor ", Implies: "\\rightarrow ", Iff: "\\leftrightarrow ",
}

func (b *Binary) Latex() string { return wrapLatex(b.Left) + latexOps[b.Op] + wrapLatex(b.Right) }

func (b *Binary) Equal(other Formula) bool {
	o, ok := other.(*Binary)
	return ok && b.Op == o.Op && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (b *Binary) AllVariables() map[string]bool {
	return setUnion(b.Left.AllVariables(), b.Right.AllVariables())
}

func (b *Binary) FreeVariables() map[string]bool {
	return setUnion(b.Left.FreeVariables(), b.Right.FreeVariables())
}

func (b *Binary) BoundVariables() map[string]bool {
	return setDiff(b.AllVariables(), b.FreeVariables())
}

func (b *Binary) Substitute(x, t string) Formula {
	return &Binary{Op: b.Op, Left: b.Left.Substitute(x, t), Right: b.Right.Substitute(x, t)}
}

func (b *Binary) IsSubstitutable(x, t string) bool {
	return b.Left.IsSubstitutable(x, t) && b.Right.IsSubstitutable(x, t)
}

func (b *Binary) IsConjunction() bool { return b.Op == And }
func (b *Binary) IsDisjunction() bool { return b.Op == Or }
func (b *Binary) IsImplication() bool { return b.Op == Implies }

// Quantifier is ∀x.Sub or ∃x.Sub.
type Quantifier struct {
	Kind     QuantKind
	Variable string
	Sub      Formula
}

func NewQuantifier(kind QuantKind, variable string, sub Formula) *Quantifier {
	return &Quantifier{Kind: kind, Variable: variable, Sub: sub}
}

func (*Quantifier) isFormula() {}

func (q *Quantifier) String() string {
	return q.Kind.String() + q.Variable + " " + wrap(q.Sub)
}

var quantLatex = map[QuantKind]string{ForAll: "\\forall ", Exists: "\\exists "}

func (q *Quantifier) Latex() string {
	return quantLatex[q.Kind] + q.Variable + " " + wrapLatex(q.Sub)
}

func (q *Quantifier) Equal(other Formula) bool {
	o, ok := other.(*Quantifier)
	return ok && q.Kind == o.Kind && q.Variable == o.Variable && q.Sub.Equal(o.Sub)
}

func (q *Quantifier) AllVariables() map[string]bool {
	out := q.Sub.AllVariables()
	out[q.Variable] = true
	return out
}

func (q *Quantifier) FreeVariables() map[string]bool {
	out := map[string]bool{}
	for v := range q.Sub.FreeVariables() {
		if v != q.Variable {
			out[v] = true
		}
	}
	return out
}

func (q *Quantifier) BoundVariables() map[string]bool {
	return setDiff(q.AllVariables(), q.FreeVariables())
}

// Substitute halts descent once it reaches the quantifier binding x: x is no
// longer free below this point.
func (q *Quantifier) Substitute(x, t string) Formula {
	if q.Variable == x {
		return q
	}
	return &Quantifier{Kind: q.Kind, Variable: q.Variable, Sub: q.Sub.Substitute(x, t)}
}

// IsSubstitutable fails if this quantifier binds a variable equal to t while
// x occurs free in its body — that would let t be captured.
func (q *Quantifier) IsSubstitutable(x, t string) bool {
	if q.Variable == t && q.Sub.FreeVariables()[x] {
		return false
	}
	return q.Sub.IsSubstitutable(x, t)
}

func (q *Quantifier) IsUniversal() bool   { return q.Kind == ForAll }
func (q *Quantifier) IsExistential() bool { return q.Kind == Exists }

// ValidSubstitution reports whether there exists some identifier t such that
// q.Sub.Substitute(q.Variable, t) == g. Per spec.md §4.1, any successful t
// must occur free in g (or g degenerately equals the body with t == the
// bound variable itself), so only free(g) plus the bound variable need be
// tried.
func (q *Quantifier) ValidSubstitution(g Formula) bool {
	candidates := make([]string, 0, len(g.FreeVariables())+1)
	for v := range g.FreeVariables() {
		candidates = append(candidates, v)
	}
	candidates = append(candidates, q.Variable)
	sort.Strings(candidates)
	for _, t := range candidates {
		if q.Sub.Substitute(q.Variable, t).Equal(g) {
			return true
		}
	}
	return false
}

func setUnion(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func setDiff(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a))
	for k := range a {
		if !b[k] {
			out[k] = true
		}
	}
	return out
}

// SortedKeys returns the keys of a variable set in deterministic order, used
// by callers that need a stable iteration (e.g. diagnostics formatting).
func SortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
