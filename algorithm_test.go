package earley

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightGrammar() *Grammar {
	return NewGrammar(
		NewRule("S", "VP"),
		NewRule("VP", "V", "NP"),
		NewRule("NP", "Det", "Nominal"),
		Lex("Det", "that"),
		Lex("Nominal", "flight"),
		Lex("V", "Book"),
	)
}

func duckGrammar() *Grammar {
	return NewGrammar(
		NewRule("S", "N", "V", "N", "V"),
		NewRule("S", "N", "V", "N", "N"),
		Lex("N", "duck"),
		Lex("V", "duck"),
		Lex("N", "her"),
		Lex("V", "made"),
		Lex("N", "I"),
	)
}

func leaf(label, token string) *Tree { return &Tree{Label: label, Token: token} }

func node(label string, children ...*Tree) *Tree {
	return &Tree{Label: label, Children: children}
}

func TestParseBookThatFlight(t *testing.T) {
	parser := NewParser(flightGrammar())
	trees := parser.Parse([]string{"Book", "that", "flight"})

	require.Len(t, trees, 1)
	expected := node("S",
		node("VP",
			leaf("V", "Book"),
			node("NP",
				leaf("Det", "that"),
				leaf("Nominal", "flight"))))
	assert.True(t, expected.Equal(trees[0]), "got %s", trees[0])
}

func TestParseAmbiguousDuck(t *testing.T) {
	parser := NewParser(duckGrammar())
	trees := parser.Parse([]string{"I", "made", "her", "duck"})

	require.Len(t, trees, 2)

	want := map[string]bool{
		"(S (N I) (V made) (N her) (V duck))": false,
		"(S (N I) (V made) (N her) (N duck))": false,
	}
	for _, tree := range trees {
		_, ok := want[tree.String()]
		require.True(t, ok, "unexpected parse %s", tree)
		want[tree.String()] = true
	}
	for rendering, seen := range want {
		assert.True(t, seen, "missing parse %s", rendering)
	}
}

func TestParsePatternTerminal(t *testing.T) {
	g := NewGrammar(NewLexRule("S", MustPattern("[a-z]+")))
	trees := NewParser(g).Parse([]string{"hello"})

	require.Len(t, trees, 1)
	assert.True(t, leaf("S", "hello").Equal(trees[0]))
}

func TestParseNoParse(t *testing.T) {
	g := NewGrammarWithStart("N", Lex("N", "Nothing"))
	assert.Empty(t, NewParser(g).Parse([]string{"Something"}))
}

func TestParseEmptyInput(t *testing.T) {
	for _, g := range []*Grammar{flightGrammar(), duckGrammar(), NewGrammar()} {
		assert.Empty(t, NewParser(g).Parse(nil))
		assert.Empty(t, NewParser(g).Parse([]string{}))
	}
}

func TestParseEmptyGrammar(t *testing.T) {
	parser := NewParser(NewGrammar())
	assert.Empty(t, parser.Parse([]string{"Book", "that", "flight"}))
}

func TestParseDeterministic(t *testing.T) {
	parser := NewParser(duckGrammar())
	tokens := []string{"I", "made", "her", "duck"}

	first := parser.Parse(tokens)
	for i := 0; i < 5; i++ {
		again := parser.Parse(tokens)
		require.Len(t, again, len(first))
		for j := range first {
			assert.True(t, first[j].Equal(again[j]), "tree order changed between runs")
		}
	}
}

func TestParseSoundness(t *testing.T) {
	tests := []struct {
		name    string
		grammar *Grammar
		tokens  []string
	}{
		{"book that flight", flightGrammar(), []string{"Book", "that", "flight"}},
		{"i made her duck", duckGrammar(), []string{"I", "made", "her", "duck"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			trees := NewParser(test.grammar).Parse(test.tokens)
			require.NotEmpty(t, trees)
			for _, tree := range trees {
				assert.Equal(t, test.tokens, tree.Leaves(),
					"leaves must reproduce the input token sequence")
			}
		})
	}
}

func TestParseCountsAllDerivations(t *testing.T) {
	// X -> X X over n tokens has Catalan(n-1) distinct parses: one
	// per binary bracketing.
	g := NewGrammarWithStart("X",
		NewRule("X", "X", "X"),
		NewLexRule("X", Literal("a")),
	)
	parser := NewParser(g)

	tests := []struct {
		tokens int
		parses int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 5},
		{5, 14},
	}

	for _, test := range tests {
		tokens := make([]string, test.tokens)
		for i := range tokens {
			tokens[i] = "a"
		}
		trees := parser.Parse(tokens)
		assert.Len(t, trees, test.parses, "tokens=%d", test.tokens)
	}
}

func TestParseRejectsPartialCover(t *testing.T) {
	parser := NewParser(flightGrammar())

	// prefix and suffix of a valid sentence must not parse
	assert.Empty(t, parser.Parse([]string{"Book", "that"}))
	assert.Empty(t, parser.Parse([]string{"that", "flight"}))
	assert.Empty(t, parser.Parse([]string{"Book", "that", "flight", "now"}))
}

func TestParseSharedGrammarAcrossParsers(t *testing.T) {
	g := flightGrammar()
	a := NewParser(g)
	b := NewParser(g)

	tokens := []string{"Book", "that", "flight"}
	require.Len(t, a.Parse(tokens), 1)
	require.Len(t, b.Parse(tokens), 1)
	require.Len(t, a.Parse(tokens), 1, "parses must not leak state into the shared grammar")
}
