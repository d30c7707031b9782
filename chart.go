package earley

import (
	"fmt"
	"strings"
)

// Chart is the working memory of one parse: one agenda of states per
// input position, 0 through len(tokens) inclusive.  Agendas preserve
// insertion order and never hold two structurally equal states; both
// properties matter, the first for the enumeration order of ambiguous
// parses and the second for termination.
//
// A Chart belongs to a single Parse call and must not be shared.
type Chart struct {
	tokens  []string
	agendas [][]*State
	seen    []map[string]struct{}
}

// NewChart builds an empty chart over the token sequence to be parsed.
func NewChart(tokens []string) *Chart {
	n := len(tokens) + 1
	c := &Chart{
		tokens:  tokens,
		agendas: make([][]*State, n),
		seen:    make([]map[string]struct{}, n),
	}
	for i := range c.seen {
		c.seen[i] = make(map[string]struct{})
	}
	return c
}

// Tokens returns the token sequence the chart was built over.
func (c *Chart) Tokens() []string { return c.tokens }

// Len returns the number of positions, always len(tokens)+1.
func (c *Chart) Len() int { return len(c.agendas) }

// Enqueue appends state to the agenda at position unless a
// structurally equal state is already there.  It reports whether the
// state was appended.
func (c *Chart) Enqueue(state *State, position int) (bool, error) {
	if position < 0 || position >= len(c.agendas) {
		return false, &ChartRangeError{Position: position, Len: len(c.agendas)}
	}
	if _, dup := c.seen[position][state.key]; dup {
		return false, nil
	}
	c.seen[position][state.key] = struct{}{}
	c.agendas[position] = append(c.agendas[position], state)
	return true, nil
}

// At returns the agenda at the given position in insertion order.
// Callers must not mutate the returned slice.
func (c *Chart) At(position int) ([]*State, error) {
	if position < 0 || position >= len(c.agendas) {
		return nil, &ChartRangeError{Position: position, Len: len(c.agendas)}
	}
	return c.agendas[position], nil
}

// Agendas returns every agenda in position order.  Callers must not
// mutate the returned slices.
func (c *Chart) Agendas() [][]*State { return c.agendas }

// String renders every agenda position with its states, one state per
// line.  Useful when tracing a parse.
func (c *Chart) String() string {
	var s strings.Builder
	for i, agenda := range c.agendas {
		fmt.Fprintf(&s, "S(%d):\n", i)
		for _, state := range agenda {
			s.WriteString("  ")
			s.WriteString(state.String())
			s.WriteByte('\n')
		}
	}
	return s.String()
}

// agenda is the engine-internal accessor for positions that are valid
// by construction.  Reaching an invalid position from inside the
// engine means the span bookkeeping broke, which is fatal.
func (c *Chart) agenda(position int) []*State {
	states, err := c.At(position)
	if err != nil {
		panic("earley: " + err.Error())
	}
	return states
}
