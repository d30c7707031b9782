package earley

import (
	"encoding/json"
	"sort"
	"strings"
)

// Tree is one parse of a token sequence: a node labeled with the
// producing rule's left-hand side, carrying either the single matched
// token (preterminal derivations) or one child per contributing
// constituent, ordered by the input span they start at.
type Tree struct {
	Label    string
	Token    string
	Children []*Tree
}

// IsLeaf reports whether the node is a preterminal derivation holding
// a matched token.
func (t *Tree) IsLeaf() bool { return len(t.Children) == 0 }

// Leaves returns the matched tokens left to right.  For any tree
// returned by Parse this reproduces the input token sequence exactly.
func (t *Tree) Leaves() []string {
	if t.IsLeaf() {
		return []string{t.Token}
	}
	var out []string
	for _, child := range t.Children {
		out = append(out, child.Leaves()...)
	}
	return out
}

// Text returns the surface text the tree covers, tokens joined by
// single spaces.
func (t *Tree) Text() string {
	return strings.Join(t.Leaves(), " ")
}

// String renders the tree as a bracketed s-expression, e.g.
// `(S (V Book))`.
func (t *Tree) String() string {
	var s strings.Builder
	t.write(&s)
	return s.String()
}

func (t *Tree) write(s *strings.Builder) {
	s.WriteByte('(')
	s.WriteString(t.Label)
	if t.IsLeaf() {
		s.WriteByte(' ')
		s.WriteString(t.Token)
	} else {
		for _, child := range t.Children {
			s.WriteByte(' ')
			child.write(s)
		}
	}
	s.WriteByte(')')
}

// Equal reports deep structural equality of two trees.
func (t *Tree) Equal(other *Tree) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.Label != other.Label || t.Token != other.Token || len(t.Children) != len(other.Children) {
		return false
	}
	for i, child := range t.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON serializes the tree as nested ordered sequences: a leaf
// becomes ["Label", "token"], an inner node ["Label", child, child...].
func (t *Tree) MarshalJSON() ([]byte, error) {
	seq := make([]any, 0, len(t.Children)+2)
	seq = append(seq, t.Label)
	if t.IsLeaf() {
		seq = append(seq, t.Token)
	} else {
		for _, child := range t.Children {
			seq = append(seq, child)
		}
	}
	return json.Marshal(seq)
}

// treeFromState rebuilds the parse tree hanging off a completed
// state's backpointer chain.  Contributors are ordered by ascending
// span start, not completion order: completions can interleave
// contributions from different spans.  The sort is stable and works on
// a copy, since the backpointer slice is shared with other states.
func treeFromState(state *State, tokens []string) *Tree {
	if state.rule.preterminal {
		return &Tree{Label: state.rule.lhs, Token: tokens[state.spanStart]}
	}
	contributors := make([]*State, len(state.previousStates))
	copy(contributors, state.previousStates)
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].spanStart < contributors[j].spanStart
	})
	tree := &Tree{Label: state.rule.lhs}
	for _, contributor := range contributors {
		tree.Children = append(tree.Children, treeFromState(contributor, tokens))
	}
	return tree
}
