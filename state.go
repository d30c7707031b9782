package earley

import (
	"fmt"
	"strings"
)

// State tracks the progress of one rule through the input: how much of
// the rule's right-hand side has been recognized (the dot), which span
// of tokens that progress covers, and which completed states justified
// each advancement of the dot.
//
// States are immutable.  Advancing the dot always allocates a new
// State; existing states may already be referenced from other states'
// backpointer chains, so they are never touched after construction.
type State struct {
	rule           *Rule
	spanStart      int
	spanStop       int
	dotPosition    int
	previousStates []*State

	key string
}

func newState(rule *Rule, spanStart, spanStop, dotPosition int, previousStates []*State) *State {
	s := &State{
		rule:           rule,
		spanStart:      spanStart,
		spanStop:       spanStop,
		dotPosition:    dotPosition,
		previousStates: previousStates,
	}
	// netstring-style length prefixes keep the key injective even
	// when rule labels contain the delimiter characters
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%s|%d|%d|%d[", len(rule.key), rule.key, spanStart, spanStop, dotPosition)
	for _, prev := range previousStates {
		fmt.Fprintf(&b, "%d:%s;", len(prev.key), prev.key)
	}
	b.WriteByte(']')
	s.key = b.String()
	return s
}

// Rule returns the rule whose progress this state tracks.
func (s *State) Rule() *Rule { return s.rule }

// SpanStart returns the input position the state's constituent starts
// at.
func (s *State) SpanStart() int { return s.spanStart }

// SpanStop returns the input position right after the last token the
// state's progress covers.
func (s *State) SpanStop() int { return s.spanStop }

// DotPosition returns how many right-hand-side elements have been
// recognized so far.
func (s *State) DotPosition() int { return s.dotPosition }

// PreviousStates returns the completed states that advanced this
// state's dot, in completion order.  Callers must not mutate the
// returned slice.
func (s *State) PreviousStates() []*State { return s.previousStates }

// Incomplete reports whether the dot has not reached the end of the
// rule.
func (s *State) Incomplete() bool { return s.dotPosition < len(s.rule.rhs) }

// NextCategory returns the label of the category right after the dot,
// or the empty string when the state is complete or the next element
// is a terminal.
func (s *State) NextCategory() string {
	if !s.Incomplete() {
		return ""
	}
	if c, ok := s.rule.rhs[s.dotPosition].(Category); ok {
		return string(c)
	}
	return ""
}

// Equal reports deep structural equality: rule, span, dot, and the
// whole backpointer chain.  This is the equality the chart dedups by.
func (s *State) Equal(other *State) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.key == other.key
}

// String renders the state as a dotted rule with its span, e.g.
// `VP -> V . NP, [0, 1]`.
func (s *State) String() string {
	parts := make([]string, 0, len(s.rule.rhs)+1)
	for i, sym := range s.rule.rhs {
		if i == s.dotPosition {
			parts = append(parts, ".")
		}
		parts = append(parts, sym.String())
	}
	if s.dotPosition == len(s.rule.rhs) {
		parts = append(parts, ".")
	}
	return fmt.Sprintf("%s -> %s, [%d, %d]", s.rule.lhs, strings.Join(parts, " "), s.spanStart, s.spanStop)
}
