// Package diagnostics defines the error catalog a proof check can report:
// a closed set of kinds, one Diagnostic value per violation, and the
// three-line caret-pointing formatter used to render them against source
// text. Grounded on the constants class and the three get_error methods
// (ParserNadia, ParserTheorem, ParserFormula) in nadia_pt_fo.py.
package diagnostics

import "strings"

// Kind names one distinguishable way a proof line can fail to check, one
// constant per error kind of the original's constants class. Values are
// numbered consecutively from zero by iota; there is no Kind for SUCCESS.
type Kind int

const (
	ReferencedFormulaNone Kind = iota
	InvalidResult
	UnexpectedResult
	InvalidHypothesis
	NoneCopy
	CopyDifferentFormula
	InvalidHipPreWrite
	ExcedentHipPreWrite
	UsingDiscardedRule
	ReferencedLineNotDefined
	HypothesisWithoutBox
	CloseBracketWithoutBox
	HypothesisWithoutClosedBox
	BoxMustBeDisposed
	BoxMustBeDisposedByRule
	LinesMustBeSequence
	InvalidSubstitutionUniversal
	InvalidUniversalFormula
	InvalidSubstitutionExistential
	InvalidExistentialFormula
	VariableIsNotFreshVariable
	InvalidConclusionExistential
	InvalidConclusionUniversal
	InvalidConclusionExistentialLastRule
	InvalidConclusionUniversalLastRule
	InvalidScopeDelimiter
	BoxMustHaveAVariable
	BoxMustHaveOnlyAVariable
	InvalidBoxResult
	IsNotDisjunction
	IsNotConjunction
	IsNotImplication
	IsNotBottom
	InvalidLeftConjunction
	InvalidRightConjunction
	InvalidNegation
	InvalidLeftOrRightDisjunction
	InvalidLeftOrRightConjunction
	InvalidRule
	InvalidRuleOneReference
	AutoReference
	LineRepetition
	ReferencedBoxNone
)

var names = [...]string{
	"REFERENCED_FORMULA_NONE",
	"INVALID_RESULT",
	"UNEXPECTED_RESULT",
	"INVALID_HYPOTHESIS",
	"NONE_COPY",
	"COPY_DIFFERENT_FORMULA",
	"INVALID_HIP_PRE_WRITE",
	"EXCEDENT_HIP_PRE_WRITE",
	"USING_DISCARDED_RULE",
	"REFERENCED_LINE_NOT_DEFINED",
	"HYPOTHESIS_WITHOUT_BOX",
	"CLOSE_BRACKET_WITHOUT_BOX",
	"HYPOTHESIS_WITHOUT_CLOSED_BOX",
	"BOX_MUST_BE_DISPOSED",
	"BOX_MUST_BE_DISPOSED_BY_RULE",
	"LINES_MUST_BE_SEQUENCE",
	"INVALID_SUBSTITUTION_UNIVERSAL",
	"INVALID_UNIVERSAL_FORMULA",
	"INVALID_SUBSTITUTION_EXISTENTIAL",
	"INVALID_EXISTENTIAL_FORMULA",
	"VARIABLE_IS_NOT_FRESH_VARIABLE",
	"INVALID_CONCLUSION_EXISTENTIAL",
	"INVALID_CONCLUSION_UNIVERSAL",
	"INVALID_CONCLUSION_EXISTENTIAL_LAST_RULE",
	"INVALID_CONCLUSION_UNIVERSAL_LAST_RULE",
	"INVALID_SCOPE_DELIMITER",
	"BOX_MUST_HAVE_A_VARIABLE",
	"BOX_MUST_HAVE_ONLY_A_VARIABLE",
	"INVALID_BOX_RESULT",
	"IS_NOT_DISJUNCTION",
	"IS_NOT_CONJUNCTION",
	"IS_NOT_IMPLICATION",
	"IS_NOT_BOTTOM",
	"INVALID_LEFT_CONJUNCTION",
	"INVALID_RIGHT_CONJUNCTION",
	"INVALID_NEGATION",
	"INVALID_LEFT_OR_RIGHT_DISJUNCTION",
	"INVALID_LEFT_OR_RIGHT_CONJUNCTION",
	"INVALID_RULE",
	"INVALID_RULE_ONE_REFERENCE",
	"AUTO_REFERENCE",
	"LINE_REPETITION",
	"REFERENCED_BOX_NONE",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "UNKNOWN"
}

// Locale selects a message-catalog language. Portuguese is the original's
// only language; English is SPEC_FULL.md's addition for non-pt-BR callers.
type Locale int

const (
	PT Locale = iota
	EN
)

// Diagnostic is one reported proof violation: a Kind plus the arguments its
// message template needs, and the position it should be caret-pointed at.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Column  int
	Args    []string // positional %s substitutions, in template order
}

// Error satisfies the error interface using the PT catalog, so a
// Diagnostic can be returned as an ordinary Go error where only one is
// produced (e.g. a syntax error).
func (d Diagnostic) Error() string { return Message(d, PT) }

var ptTemplates = map[Kind]string{
	ReferencedFormulaNone:                "A fórmula %s não foi definida anteriormente ou foi descartada.",
	InvalidResult:                        "A fórmula %s não é um resultado válido para esta regra.",
	UnexpectedResult:                     "A fórmula %s não é um resultado válido para a regra aplicada.",
	InvalidHypothesis:                    "A hipótese da linha %s não corresponde a hipótese esperada para a fórmula da conclusão desta regra.",
	NoneCopy:                             "A Fórmula referenciada para cópia não existe.",
	CopyDifferentFormula:                 "A Fórmula referenciada para cópia é diferente da definida para essa regra.",
	InvalidHipPreWrite:                   "uma hipótese só pode ser usado no início de uma caixa e é introduzida apenas por uma regra de inferência.",
	ExcedentHipPreWrite:                  "Não é esperado texto depois de pre.",
	UsingDiscardedRule:                   "a referência a fórmula da linha %s não pode ser utilizada, pois esta fórmula já foi descartada.",
	ReferencedLineNotDefined:             "a referência a fórmula da linha %s não pode ser utilizada, pois todas as referências devem ocorrer antes desta regra.",
	HypothesisWithoutBox:                 "A hipótese definida não está dentro de uma caixa.",
	CloseBracketWithoutBox:               "Fechamento de caixa sem caixa aberta.",
	HypothesisWithoutClosedBox:           "É necessário fechar o escopo desta caixa.",
	BoxMustBeDisposed:                    "A hipótese que foi introduzida por essa caixa dever ser descartada pela regra que a introduziu em linha imediatamente posterior ao fechamento desta caixa.",
	BoxMustBeDisposedByRule:              "Esta caixa dever ser fechada em linha imediatamente posterior pela regra que a introduziu.",
	LinesMustBeSequence:                  "as linhas de uma demonstração devem ser numeradas em sequência.",
	InvalidSubstitutionUniversal:         "A fórmula %s não é uma substituição válida da fórmula universal refenciada na linha %s.",
	InvalidUniversalFormula:              "A fórmula referenciada na regra do universal não é uma fórmula do tipo universal.",
	InvalidSubstitutionExistential:       "A fórmula %s não é uma substituição válida da fórmula existencial refenciada na linha %s.",
	InvalidExistentialFormula:            "A fórmula referenciada na regra do existencial não é uma fórmula do tipo existencial.",
	VariableIsNotFreshVariable:           "A variável utilizada na linha %s é uma variável livre de uma fórmula definida anteriormente e, portanto, não pode ser utilizada nesta regra.",
	InvalidConclusionExistential:         "A variável utilizada na conclusão dessa regra não pode ser a variável utilizada na caixa que inicia na linha %s.",
	InvalidConclusionUniversal:           "A variável utilizada na caixa que inicia na linha %s não pode ocorrer como variável livre na conclusão da fórmula e, portanto, não pode ser utilizada nesta regra.",
	InvalidConclusionExistentialLastRule: "A formula da conclusão desta regra deve ser a mesma fórmula refenciada na linha %s.",
	InvalidConclusionUniversalLastRule:   "A formula da conclusão desta regra deve ser a quantificação universal da fórmula refenciada na linha %s com a variável definida neste escopo.",
	InvalidScopeDelimiter:                "esta não é uma caixa (escopo) válida.",
	BoxMustHaveAVariable:                 "A caixa que inicia na linha %s deve iniciar com uma variável para esta regra.",
	BoxMustHaveOnlyAVariable:             "A caixa que inicia na linha %s não tem hipótese. A caixa deve iniciar com uma variável apenas para a regra da introdução do universal.",
	InvalidBoxResult:                     "A fórmula da linha %s não corresponde a conclusão esperada desta caixa para esta regra.",
	IsNotDisjunction:                     "A fórmula referenciada na linha %s não é disjunção.",
	IsNotConjunction:                     "A fórmula referenciada na linha %s não é conjunção.",
	IsNotImplication:                     "A fórmula referenciada na linha %s não é implicação.",
	IsNotBottom:                          "A fórmula referenciada na linha %s deveria ser @.",
	InvalidLeftConjunction:               "A fórmula à esquerda fórmula da conclusão não é demonstrada por nenhuma das linhas referenciadas nesta regra.",
	InvalidRightConjunction:              "A fórmula à direita da fórmula da conclusão não é demonstrada por nenhuma das linhas referenciadas nesta regra.",
	InvalidNegation:                      "Nenhuma das fórmulas referencias pelas linhas é a negação da outra fórmula.",
	InvalidLeftOrRightDisjunction:        "A fórmula à direita ou à esquerda da fórmula da conclusão deve ser a mesma da fórmula referencia na linha %s.",
	InvalidLeftOrRightConjunction:        "A fórmula à direita ou à esquerda da fórmula da linha %s deve ser a mesma da fórmula da conclusão da regra.",
	InvalidRule:                          "a regra %s deve ter duas referências separadas por vírgula.",
	InvalidRuleOneReference:              "a regra %s deve ter uma única referência.",
	AutoReference:                        "uma regra não pode referenciar a própria linha.",
	LineRepetition:                       "a linha %s já foi utilizada nesta demonstração.",
	ReferencedBoxNone:                    "a caixa referenciada na linha %s não existe.",
}

var enTemplates = map[Kind]string{
	ReferencedFormulaNone:                "formula %s was not defined earlier, or has been discarded.",
	InvalidResult:                        "formula %s is not a valid result for this rule.",
	UnexpectedResult:                     "formula %s is not a valid result for the applied rule.",
	InvalidHypothesis:                    "the hypothesis on line %s does not match the hypothesis expected for this rule's conclusion.",
	NoneCopy:                             "the formula referenced for copying does not exist.",
	CopyDifferentFormula:                 "the formula referenced for copying differs from the one defined for this rule.",
	InvalidHipPreWrite:                   "a hypothesis may only be used at the start of a box, introduced by a single inference rule.",
	ExcedentHipPreWrite:                  "unexpected text after pre.",
	UsingDiscardedRule:                   "the reference to the formula on line %s cannot be used: it has already been discarded.",
	ReferencedLineNotDefined:             "the reference to the formula on line %s cannot be used: all references must occur before this rule.",
	HypothesisWithoutBox:                 "the hypothesis is not inside a box.",
	CloseBracketWithoutBox:               "box close without an open box.",
	HypothesisWithoutClosedBox:           "this box's scope must be closed.",
	BoxMustBeDisposed:                    "the hypothesis introduced by this box must be discharged by the rule that introduced it, on the line immediately after the box closes.",
	BoxMustBeDisposedByRule:              "this box must be closed on the line immediately following it, by the rule that introduced it.",
	LinesMustBeSequence:                  "proof lines must be numbered in sequence.",
	InvalidSubstitutionUniversal:         "formula %s is not a valid substitution instance of the universal formula referenced on line %s.",
	InvalidUniversalFormula:              "the formula referenced by the universal rule is not a universally quantified formula.",
	InvalidSubstitutionExistential:       "formula %s is not a valid substitution instance of the existential formula referenced on line %s.",
	InvalidExistentialFormula:            "the formula referenced by the existential rule is not an existentially quantified formula.",
	VariableIsNotFreshVariable:           "the variable used on line %s is free in an earlier formula, and so cannot be used by this rule.",
	InvalidConclusionExistential:         "this rule's conclusion cannot use the variable from the box that starts on line %s.",
	InvalidConclusionUniversal:           "the variable of the box starting on line %s cannot occur free in the conclusion, and so cannot be used by this rule.",
	InvalidConclusionExistentialLastRule: "this rule's conclusion must be the same formula referenced on line %s.",
	InvalidConclusionUniversalLastRule:   "this rule's conclusion must be the universal quantification, over this scope's variable, of the formula referenced on line %s.",
	InvalidScopeDelimiter:                "this is not a valid box (scope).",
	BoxMustHaveAVariable:                 "the box starting on line %s must open with a variable for this rule.",
	BoxMustHaveOnlyAVariable:             "the box starting on line %s has a hypothesis; universal introduction requires a box that opens with only a variable.",
	InvalidBoxResult:                     "the formula on line %s does not match this box's expected conclusion for this rule.",
	IsNotDisjunction:                     "the formula referenced on line %s is not a disjunction.",
	IsNotConjunction:                     "the formula referenced on line %s is not a conjunction.",
	IsNotImplication:                     "the formula referenced on line %s is not an implication.",
	IsNotBottom:                          "the formula referenced on line %s should be @.",
	InvalidLeftConjunction:               "the left side of the conclusion is not proved by any of the lines referenced by this rule.",
	InvalidRightConjunction:              "the right side of the conclusion is not proved by any of the lines referenced by this rule.",
	InvalidNegation:                      "neither referenced formula is the negation of the other.",
	InvalidLeftOrRightDisjunction:        "the left or right side of the conclusion must match the formula referenced on line %s.",
	InvalidLeftOrRightConjunction:        "the left or right side of the formula on line %s must match the rule's conclusion.",
	InvalidRule:                          "rule %s must take two references separated by a comma.",
	InvalidRuleOneReference:              "rule %s must take a single reference.",
	AutoReference:                        "a rule cannot reference its own line.",
	LineRepetition:                       "line %s has already been used in this proof.",
	ReferencedBoxNone:                    "the box referenced on line %s does not exist.",
}

// Message renders a Diagnostic's text (without the source excerpt or caret)
// in the given locale.
func Message(d Diagnostic, locale Locale) string {
	templates := ptTemplates
	if locale == EN {
		templates = enTemplates
	}
	tmpl, ok := templates[d.Kind]
	if !ok {
		return d.Kind.String()
	}
	args := make([]interface{}, len(d.Args))
	for i, a := range d.Args {
		args[i] = a
	}
	n := strings.Count(tmpl, "%s")
	if n > len(args) {
		n = len(args)
	}
	out := tmpl
	for i := 0; i < n; i++ {
		out = strings.Replace(out, "%s", args[i], 1)
	}
	return out
}

// Format renders the three-line caret presentation spec.md §4.6 requires:
// a header naming the line, the offending source line verbatim, and a
// caret line pointing at the column, followed by the message text.
// source is the full proof text; lines are 1-indexed.
func Format(d Diagnostic, source string, locale Locale) string {
	header := "Erro de sintaxe na linha"
	if locale == EN {
		header = "Syntax error on line"
	}
	srcLines := strings.Split(source, "\n")
	var srcLine string
	if d.Line >= 1 && d.Line <= len(srcLines) {
		srcLine = srcLines[d.Line-1]
	}
	col := d.Column
	if col < 1 {
		col = 1
	}
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(" ")
	b.WriteString(itoa(d.Line))
	b.WriteString(":\n")
	b.WriteString(srcLine)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString("^, ")
	b.WriteString(Message(d, locale))
	return b.String()
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
