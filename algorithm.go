package earley

import (
	"github.com/tliron/commonlog"
)

// gammaSymbol labels the synthetic augmenting rule used to seed the
// chart.  It lives outside the user's grammar, so a complete state
// with this label at the final position is unambiguously a full parse.
const gammaSymbol = "_GAMMA"

var log = commonlog.GetLogger("earley")

// algorithm drives a grammar through the three Earley operations.  It
// owns nothing beyond the grammar reference; all per-parse state lives
// in the Chart, so one algorithm value is safe to use from concurrent
// Parse calls.
type algorithm struct {
	grammar *Grammar
}

// predict hypothesizes expansions of the category right after the
// state's dot, seeding zero-progress states at the position its span
// ends.  Preterminal rules are skipped: they bottom out on a token and
// belong to scan.
func (a algorithm) predict(state *State, chart *Chart) {
	for _, rule := range a.grammar.RulesFor(state.NextCategory()) {
		if rule.preterminal {
			continue
		}
		next := newState(rule, state.spanStop, state.spanStop, 0, nil)
		if added, _ := chart.Enqueue(next, state.spanStop); added {
			log.Debugf("predict: %v", next)
		}
	}
}

// scan consumes exactly one token: every preterminal rule for the
// awaited category whose terminal accepts the token under the state's
// span end yields a completed lexical state one position further on.
func (a algorithm) scan(state *State, chart *Chart) {
	if state.spanStop >= len(chart.tokens) {
		return
	}
	token := chart.tokens[state.spanStop]
	for _, rule := range a.grammar.rules {
		if !rule.preterminal || rule.lhs != state.NextCategory() {
			continue
		}
		if t, ok := rule.rhs[0].(Terminal); !ok || !t.Matches(token) {
			continue
		}
		next := newState(rule, state.spanStop, state.spanStop+1, 1, nil)
		if added, _ := chart.Enqueue(next, state.spanStop+1); added {
			log.Debugf("scan %q: %v", token, next)
		}
	}
}

// complete advances every state that was waiting, at the position this
// state's span starts, for a constituent with this state's label.  The
// advanced copy records state in its backpointers; the waiting state is
// left untouched since other chains may reference it.
func (a algorithm) complete(state *State, chart *Chart) {
	// index-based for the same reason as the main loop: when the
	// completed span is empty this appends to the agenda being walked
	for j := 0; j < len(chart.agenda(state.spanStart)); j++ {
		candidate := chart.agenda(state.spanStart)[j]
		if candidate.NextCategory() != state.rule.lhs || candidate.spanStop != state.spanStart {
			continue
		}
		previous := make([]*State, 0, len(candidate.previousStates)+1)
		previous = append(previous, candidate.previousStates...)
		previous = append(previous, state)
		next := newState(candidate.rule, candidate.spanStart, state.spanStop, candidate.dotPosition+1, previous)
		if added, _ := chart.Enqueue(next, state.spanStop); added {
			log.Debugf("complete: %v", next)
		}
	}
}

// parse runs the chart to a fixed point and extracts one tree per
// complete augmenting state at the final position.  The agenda loop
// re-reads the agenda length on every step because predict, scan and
// complete all append to the very agenda being walked.
func (a algorithm) parse(tokens []string) []*Tree {
	chart := NewChart(tokens)
	gamma := NewRule(gammaSymbol, Category(a.grammar.StartSymbol()))
	chart.Enqueue(newState(gamma, 0, 0, 0, nil), 0)

	for i := 0; i < chart.Len(); i++ {
		for j := 0; j < len(chart.agenda(i)); j++ {
			state := chart.agenda(i)[j]
			if state.Incomplete() {
				a.predict(state, chart)
				a.scan(state, chart)
			} else {
				a.complete(state, chart)
			}
		}
	}

	var trees []*Tree
	for _, state := range chart.agenda(chart.Len() - 1) {
		if state.Incomplete() || state.rule.lhs != gammaSymbol {
			continue
		}
		// drop the synthetic _GAMMA wrapper so trees root at the
		// grammar's real start symbol
		trees = append(trees, treeFromState(state, tokens).Children[0])
	}
	return trees
}
