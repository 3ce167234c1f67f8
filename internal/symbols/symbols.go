// Package symbols implements the symbol table: a tree of scopes tracking
// nested proof boxes, their hypotheses, and their scoping of free
// variables, grounded on SymbolTable in nadia_pt_fo.py.
package symbols

import (
	"sort"
	"strconv"

	"github.com/daviromero/nadia/internal/ast"
	"github.com/daviromero/nadia/internal/formula"
)

// Scope represents one open/closed box.
type Scope struct {
	Name       string
	Parent     *Scope
	Children   []*Scope
	Records    []ast.LineRecord
	Positions  []ast.Pos // parallel to Records
	Variable   string
	HasVar     bool
	StartLine  string
	EndLine    string
	Closed     bool // true once EndScope has run for this scope
}

// Table is a SymbolTable: the ordered list of scopes plus a current-scope
// cursor, exactly the shape of the original's SymbolTable.
type Table struct {
	Scopes  []*Scope
	Current *Scope

	byLine      map[string]*Scope // line number -> owning scope
	byStartLine map[string]*Scope // scope start_line -> scope (for var-only openers)
	visible     map[string][]string
}

// New creates a Table with only the root scope S0.
func New() *Table {
	root := &Scope{Name: "scope_0", StartLine: "1", EndLine: "1"}
	t := &Table{
		Scopes:      []*Scope{root},
		byLine:      map[string]*Scope{},
		byStartLine: map[string]*Scope{},
		visible:     map[string][]string{},
	}
	t.Current = root
	return t
}

// Insert appends record to the current scope.
func (t *Table) Insert(record ast.LineRecord, pos ast.Pos) {
	t.Current.Records = append(t.Current.Records, record)
	t.Current.Positions = append(t.Current.Positions, pos)
	// A BoxClose reuses the line number of the box's last record; that line
	// keeps belonging to the closed box, not to the scope holding the close.
	if _, isClose := record.(*ast.BoxClose); !isClose && record.RecordLine() != "" {
		t.byLine[record.RecordLine()] = t.Current
	}
}

// AddScope creates a child of the current scope and makes it current.
func (t *Table) AddScope(startLine string, variable string, hasVar bool) *Scope {
	s := &Scope{
		Name:      "scope_" + strconv.Itoa(len(t.Scopes)),
		Parent:    t.Current,
		Variable:  variable,
		HasVar:    hasVar,
		StartLine: startLine,
		EndLine:   startLine,
	}
	t.Scopes = append(t.Scopes, s)
	t.byStartLine[startLine] = s
	t.Current.Children = append(t.Current.Children, s)
	t.Current = s
	return s
}

// EndScope writes end_line on the current scope and restores its parent as
// current. It must not be called on S0.
func (t *Table) EndScope(endLine string) bool {
	if t.Current.Parent == nil {
		return false
	}
	t.Current.EndLine = endLine
	t.Current.Closed = true
	t.Current = t.Current.Parent
	return true
}

// FindScope returns the unique scope that contains a record with this line
// number, or (if none does) the scope whose start_line equals this line —
// so a variable-only box-opener is locatable too.
func (t *Table) FindScope(line string) *Scope {
	if s, ok := t.byLine[line]; ok {
		return s
	}
	return t.byStartLine[line]
}

// FindScopeVariable returns the scope variable of line's scope, if any.
func (t *Table) FindScopeVariable(line string) (string, bool) {
	s := t.FindScope(line)
	if s == nil {
		return "", false
	}
	return s.Variable, s.HasVar
}

// LookupFormulaByLine walks from fromLine's scope upward; within each
// ancestor, it returns the formula of the record whose line equals refLine.
// ok is false if refLine is not visible from fromLine (it was inside a
// closed sibling box, or never existed).
func (t *Table) LookupFormulaByLine(fromLine, refLine string) (formula.Formula, bool) {
	s := t.FindScope(fromLine)
	for s != nil {
		for i, r := range s.Records {
			if r.RecordLine() == refLine {
				_ = i
				return r.RecordFormula(), r.RecordFormula() != nil
			}
		}
		s = s.Parent
	}
	return nil, false
}

// CheckScopeDelimiter returns the formulas of the first and last records of
// the unique non-root scope whose start_line == line1 and end_line ==
// line2. first may be nil even when ok is true (the ∀i box opener carries
// no formula); callers that require a formula there check it explicitly.
func (t *Table) CheckScopeDelimiter(line1, line2 string) (first, last formula.Formula, ok bool) {
	for _, s := range t.Scopes {
		if s.Parent == nil {
			continue
		}
		if s.StartLine == line1 && s.EndLine == line2 {
			if len(s.Records) == 0 {
				return nil, nil, false
			}
			return s.Records[0].RecordFormula(), s.Records[len(s.Records)-1].RecordFormula(), true
		}
	}
	return nil, nil, false
}

// GetFirstRuleFromScope returns the first record of line's scope.
func (t *Table) GetFirstRuleFromScope(line string) ast.LineRecord {
	s := t.FindScope(line)
	if s == nil || len(s.Records) == 0 {
		return nil
	}
	return s.Records[0]
}

// GetRule returns the record whose line equals rule_line, searching every
// scope (matches the original's linear get_rule).
func (t *Table) GetRule(line string) ast.LineRecord {
	if s, ok := t.byLine[line]; ok {
		for _, r := range s.Records {
			if r.RecordLine() == line {
				return r
			}
		}
	}
	return nil
}

// FindToken returns the source position of the record at line, for
// diagnostics that need to point at a formula's own line rather than a
// reference.
func (t *Table) FindToken(line string) (ast.Pos, bool) {
	if s, ok := t.byLine[line]; ok {
		for i, r := range s.Records {
			if r.RecordLine() == line {
				return s.Positions[i], true
			}
		}
	}
	return ast.Pos{}, false
}

// freeVariablesBeforeScope unions the free variables of every record
// strictly before line in every strict ancestor scope, plus the scope
// variable of any ancestor whose box opened before line.
func (t *Table) freeVariablesBeforeScope(line string) map[string]bool {
	out := map[string]bool{}
	s := t.FindScope(line)
	if s == nil {
		return out
	}
	s = s.Parent
	lineNum, _ := strconv.Atoi(line)
	for s != nil {
		for _, r := range s.Records {
			if n, err := strconv.Atoi(r.RecordLine()); err == nil && n < lineNum {
				if f := r.RecordFormula(); f != nil {
					for v := range f.FreeVariables() {
						out[v] = true
					}
				}
			}
		}
		if n, err := strconv.Atoi(s.StartLine); err == nil && n < lineNum && s.HasVar {
			out[s.Variable] = true
		}
		s = s.Parent
	}
	return out
}

// IsFreshVariable reports whether the scope variable of line's box is an
// eigenvariable: not free in any record before it in any ancestor scope,
// and not itself an ancestor's own scope variable.
func (t *Table) IsFreshVariable(line string) bool {
	s := t.FindScope(line)
	if s == nil || !s.HasVar {
		return false
	}
	return !t.freeVariablesBeforeScope(line)[s.Variable]
}

// GetVisibleLines returns, in no particular order, every line strictly
// before fromLine in fromLine's own scope or any ancestor.
func (t *Table) GetVisibleLines(fromLine string) []string {
	var lines []string
	s := t.FindScope(fromLine)
	fromNum, _ := strconv.Atoi(fromLine)
	for s != nil {
		for _, r := range s.Records {
			if n, err := strconv.Atoi(r.RecordLine()); err == nil && n < fromNum {
				lines = append(lines, r.RecordLine())
			}
		}
		s = s.Parent
	}
	return lines
}

// SetLinesVisible precomputes GetVisibleLines for every line 1..N-1,
// mirroring the original's set_lines_visible (used only for diagnostics).
func (t *Table) SetLinesVisible() {
	t.visible = map[string][]string{}
	n := t.lenRecords()
	for i := 1; i < n; i++ {
		line := strconv.Itoa(i)
		t.visible[line] = t.GetVisibleLines(line)
	}
}

func (t *Table) lenRecords() int {
	n := 0
	for _, s := range t.Scopes {
		n += len(s.Records)
	}
	return n
}

// Premises returns the deduplicated (structural equality, first-seen order)
// list of premise formulas across every scope.
func (t *Table) Premises() []formula.Formula {
	var out []formula.Formula
	for _, s := range t.Scopes {
		for _, r := range s.Records {
			if _, ok := r.(*ast.Premise); ok {
				f := r.RecordFormula()
				dup := false
				for _, seen := range out {
					if seen.Equal(f) {
						dup = true
						break
					}
				}
				if !dup {
					out = append(out, f)
				}
			}
		}
	}
	return out
}

// Conclusion returns the formula of the last record in S0, if any.
func (t *Table) Conclusion() formula.Formula {
	root := t.Scopes[0]
	if len(root.Records) == 0 {
		return nil
	}
	return root.Records[len(root.Records)-1].RecordFormula()
}

// Root returns S0.
func (t *Table) Root() *Scope { return t.Scopes[0] }

// SortedScopeNames is a small test/debug helper returning scope names
// sorted lexically (not in creation order).
func (t *Table) SortedScopeNames() []string {
	names := make([]string, len(t.Scopes))
	for i, s := range t.Scopes {
		names[i] = s.Name
	}
	sort.Strings(names) // scope_10 < scope_2 lexically; acceptable for debug use only
	return names
}
