package earley

import (
	"strings"
)

// Rule is a single production of a context-free grammar.  Rules are
// built through NewRule, NewLexRule or Lex and immutable afterwards:
// the engine shares them freely between states and across concurrent
// parses.
type Rule struct {
	lhs         string
	rhs         []Symbol
	preterminal bool
	key         string

	// Probability is carried for rule sets that attach weights.  No
	// part of the engine reads it and it does not participate in rule
	// equality.
	Probability float64
}

// NewRule builds a non-preterminal rule rewriting lhs into the given
// categories.
func NewRule(lhs string, rhs ...Category) *Rule {
	symbols := make([]Symbol, len(rhs))
	for i, c := range rhs {
		symbols[i] = c
	}
	return newRule(lhs, symbols, false)
}

// NewLexRule builds a preterminal rule whose terminal is matched
// against exactly one input token.
func NewLexRule(lhs string, t Terminal) *Rule {
	return newRule(lhs, []Symbol{t}, true)
}

// Lex is shorthand for the common literal lexicon entry.
func Lex(lhs, token string) *Rule {
	return NewLexRule(lhs, Literal(token))
}

func newRule(lhs string, rhs []Symbol, preterminal bool) *Rule {
	r := &Rule{lhs: lhs, rhs: rhs, preterminal: preterminal}

	var s strings.Builder
	s.WriteString(lhs)
	if preterminal {
		s.WriteString(" => ")
	} else {
		s.WriteString(" -> ")
	}
	for i, sym := range rhs {
		if i > 0 {
			s.WriteByte(' ')
		}
		s.WriteString(sym.String())
	}
	r.key = s.String()
	return r
}

// LHS returns the label of the constituent this rule produces.
func (r *Rule) LHS() string { return r.lhs }

// RHS returns the ordered right-hand side.  For a preterminal rule it
// holds the Terminal matched against one input token; otherwise the
// Categories to expand, left to right.  Callers must not mutate the
// returned slice.
func (r *Rule) RHS() []Symbol { return r.rhs }

// Preterminal reports whether this is a lexical rule: its right-hand
// side bottoms out on a single token and is never expanded by
// prediction.
func (r *Rule) Preterminal() bool { return r.preterminal }

// Equal reports structural equality: same label, same right-hand side,
// same preterminal flag.  Probability is deliberately left out.
func (r *Rule) Equal(other *Rule) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil {
		return false
	}
	return r.key == other.key
}

// String renders the rule as an arrow production, e.g. `VP -> V NP`.
func (r *Rule) String() string {
	parts := make([]string, len(r.rhs))
	for i, sym := range r.rhs {
		parts[i] = sym.String()
	}
	return r.lhs + " -> " + strings.Join(parts, " ")
}

// DefaultStartSymbol is the distinguished symbol a Grammar starts from
// unless overridden at construction.
const DefaultStartSymbol = "S"

// Grammar is an ordered collection of rules plus the distinguished
// start symbol.  Rules only ever get appended; once construction is
// done a Grammar is safe to share read-only across concurrent parsers.
type Grammar struct {
	rules []*Rule
	start string
}

// NewGrammar builds a grammar over the given rules with the default
// start symbol "S".
func NewGrammar(rules ...*Rule) *Grammar {
	return NewGrammarWithStart(DefaultStartSymbol, rules...)
}

// NewGrammarWithStart builds a grammar whose parses must derive from
// the given start symbol.
func NewGrammarWithStart(start string, rules ...*Rule) *Grammar {
	g := &Grammar{start: start}
	for _, r := range rules {
		g.AddRule(r)
	}
	return g
}

// AddRule appends a rule.  Adding the same rule twice keeps both
// entries; the chart's state dedup makes the duplicate harmless.
func (g *Grammar) AddRule(r *Rule) {
	g.rules = append(g.rules, r)
}

// Contains reports whether a structurally equal rule is present.
func (g *Grammar) Contains(r *Rule) bool {
	for _, have := range g.rules {
		if have.Equal(r) {
			return true
		}
	}
	return false
}

// Len returns the number of rules.
func (g *Grammar) Len() int { return len(g.rules) }

// Rules returns the rules in insertion order.  Callers must not
// mutate the returned slice.
func (g *Grammar) Rules() []*Rule { return g.rules }

// RulesFor returns every rule whose left-hand side is lhs, in grammar
// order.
func (g *Grammar) RulesFor(lhs string) []*Rule {
	var out []*Rule
	for _, r := range g.rules {
		if r.lhs == lhs {
			out = append(out, r)
		}
	}
	return out
}

// StartSymbol returns the distinguished symbol parses derive from.
func (g *Grammar) StartSymbol() string { return g.start }
