package earley

// Parser parses token sequences against a context-free grammar,
// producing every valid parse tree.
//
// Example usage:
//
//	grammar := earley.NewGrammar(
//		earley.NewRule("S", "VP"),
//		earley.NewRule("VP", "V", "NP"),
//		earley.NewRule("NP", "Det", "Nominal"),
//		earley.Lex("Det", "that"),
//		earley.Lex("Nominal", "flight"),
//		earley.Lex("V", "Book"),
//	)
//	parser := earley.NewParser(grammar)
//	trees := parser.Parse([]string{"Book", "that", "flight"})
//
// The grammar is only read, so one Parser (or several sharing a
// grammar) may serve concurrent Parse calls.
type Parser struct {
	alg algorithm
}

// NewParser builds a parser over the given grammar.  Construction is
// total: any grammar, including an empty one, yields a working parser.
func NewParser(grammar *Grammar) *Parser {
	return &Parser{alg: algorithm{grammar: grammar}}
}

// Parse parses a sequence of tokens and returns every valid parse
// tree, rooted at the grammar's start symbol.  The result is empty,
// never an error, when the grammar does not derive the sequence.  Tree
// order is deterministic for a fixed grammar and input.
func (p *Parser) Parse(tokens []string) []*Tree {
	return p.alg.parse(tokens)
}
