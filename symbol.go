package earley

import (
	"fmt"
	"regexp"
	"strconv"
)

// Symbol is a single element on the right-hand side of a Rule.  It is
// either a Category, naming a constituent that other rules rewrite, or
// a Terminal that is matched directly against one input token.
type Symbol interface {
	fmt.Stringer
}

// Category references a constituent by the label other rules carry on
// their left-hand side.
type Category string

func (c Category) String() string { return string(c) }

// Terminal is the matching capability of a preterminal rule's
// right-hand side: it either accepts or rejects a single token.
type Terminal interface {
	Symbol
	Matches(token string) bool
}

// Literal matches a token by exact string equality.
type Literal string

func (l Literal) Matches(token string) bool { return string(l) == token }
func (l Literal) String() string            { return strconv.Quote(string(l)) }

// Pattern matches a token against a compiled regular expression.  The
// expression is anchored on both ends so a partial match within the
// token doesn't count.
type Pattern struct {
	re *regexp.Regexp
}

// NewPattern compiles expr into a Pattern, reporting the compile error
// to the caller.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{re: re}, nil
}

// MustPattern is like NewPattern but panics if the expression can't be
// compiled.  It follows the regexp.MustCompile convention for patterns
// known at program initialization.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(`earley: MustPattern(` + strconv.Quote(expr) + `): ` + err.Error())
	}
	return p
}

func (p Pattern) Matches(token string) bool { return p.re != nil && p.re.MatchString(token) }
func (p Pattern) String() string            { return "/" + p.rawExpr() + "/" }

func (p Pattern) rawExpr() string {
	if p.re == nil {
		return ""
	}
	expr := p.re.String()
	// strip the anchoring added by NewPattern
	return expr[len(`\A(?:`) : len(expr)-len(`)\z`)]
}
