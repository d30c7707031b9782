/*
Earley parses a sequence of tokens against one of the built-in
demonstration grammars and prints every valid parse tree.

Usage:

	earley [flags] TOKEN...

Each command line argument is one token; no tokenization is performed.
By default every parse is printed as a bracketed s-expression, one per
line.  If the grammar does not derive the token sequence, nothing is
printed and the program exits with status 1.

The flags are:

	-g, --grammar NAME
		Parse against the named built-in grammar.  NAME is one of:
		flight (the default), a tiny imperative grammar deriving
		"Book that flight"; duck, an ambiguous grammar deriving
		"I made her duck" two ways; words, a pattern-based grammar
		deriving any sequence of lowercase words.

	-p, --pretty
		Print trees with box-drawing connectors instead of
		s-expressions.

	-j, --json
		Print trees as nested JSON sequences, one per line.

	-v, --verbose
		Increase log verbosity.  Repeat to trace every predict, scan
		and complete step of the engine.
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"

	"github.com/chartparse/earley"

	_ "github.com/tliron/commonlog/simple"
)

var (
	flagGrammar = pflag.StringP("grammar", "g", "flight", "Name of the built-in grammar to parse against.")
	flagPretty  = pflag.BoolP("pretty", "p", false, "Print trees with box-drawing connectors.")
	flagJSON    = pflag.BoolP("json", "j", false, "Print trees as nested JSON sequences.")
	flagVerbose = pflag.CountP("verbose", "v", "Increase log verbosity.")
)

func builtinGrammar(name string) (*earley.Grammar, error) {
	switch name {
	case "flight":
		return earley.NewGrammar(
			earley.NewRule("S", "VP"),
			earley.NewRule("VP", "V", "NP"),
			earley.NewRule("NP", "Det", "Nominal"),
			earley.Lex("Det", "that"),
			earley.Lex("Nominal", "flight"),
			earley.Lex("V", "Book"),
		), nil
	case "duck":
		return earley.NewGrammar(
			earley.NewRule("S", "N", "V", "N", "V"),
			earley.NewRule("S", "N", "V", "N", "N"),
			earley.Lex("N", "duck"),
			earley.Lex("V", "duck"),
			earley.Lex("N", "her"),
			earley.Lex("V", "made"),
			earley.Lex("N", "I"),
		), nil
	case "words":
		return earley.NewGrammar(
			earley.NewRule("S", "Word"),
			earley.NewRule("S", "Word", "S"),
			earley.NewLexRule("Word", earley.MustPattern(`[a-z]+`)),
		), nil
	default:
		return nil, fmt.Errorf("unknown grammar %q (have: flight, duck, words)", name)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "earley: "+format+"\n", args...)
	os.Exit(2)
}

func main() {
	pflag.Parse()
	commonlog.Configure(*flagVerbose, nil)

	tokens := pflag.Args()
	if len(tokens) == 0 {
		fatal("no tokens informed")
	}

	grammar, err := builtinGrammar(*flagGrammar)
	if err != nil {
		fatal("%s", err)
	}

	trees := earley.NewParser(grammar).Parse(tokens)
	if len(trees) == 0 {
		os.Exit(1)
	}

	for _, tree := range trees {
		switch {
		case *flagJSON:
			data, err := json.Marshal(tree)
			if err != nil {
				fatal("encoding tree: %s", err)
			}
			fmt.Println(string(data))
		case *flagPretty:
			fmt.Println(tree.PrettyString())
		default:
			fmt.Println(tree)
		}
	}
}
