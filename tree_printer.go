package earley

import (
	"strconv"
	"strings"
)

// treePrinter renders a Tree with box-drawing connectors, keeping a
// stack of padding strings so nested children line up under their
// parents.
type treePrinter struct {
	padStr []string
	output strings.Builder
}

func (tp *treePrinter) indent(s string) {
	tp.padStr = append(tp.padStr, s)
}

func (tp *treePrinter) unindent() {
	tp.padStr = tp.padStr[:len(tp.padStr)-1]
}

func (tp *treePrinter) write(s string) {
	tp.output.WriteString(s)
}

func (tp *treePrinter) pwrite(s string) {
	for _, item := range tp.padStr {
		tp.write(item)
	}
	tp.write(s)
}

func (tp *treePrinter) visit(t *Tree) {
	if t.IsLeaf() {
		tp.write(t.Label + " " + strconv.Quote(t.Token))
		return
	}
	tp.write(t.Label)
	for i, child := range t.Children {
		tp.write("\n")
		if i == len(t.Children)-1 {
			tp.pwrite("└── ")
			tp.indent("    ")
		} else {
			tp.pwrite("├── ")
			tp.indent("│   ")
		}
		tp.visit(child)
		tp.unindent()
	}
}

// PrettyString renders the tree one node per line with box-drawing
// connectors, suitable for terminal output and line-by-line
// comparisons in tests.
func (t *Tree) PrettyString() string {
	tp := &treePrinter{}
	tp.visit(t)
	return tp.output.String()
}
