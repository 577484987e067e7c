// Package expr parses infix arithmetic expressions and assembles them into
// autodiff graphs.
//
// Grammar, lowest precedence first:
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ "^" unary ]
//	primary = number | identifier | "(" expr ")"
//
// "^" is right-associative and binds tighter than unary minus, so -x^2 is -(x^2).
package expr

import (
	"sort"
	"strconv"
)

// Node is a parsed expression.
type Node interface {
	// Pos returns the byte offset of the node in the source.
	Pos() int
	String() string
}

// Number is a numeric literal.
type Number struct {
	Value  float64
	Offset int
}

// Ident is a variable reference.
type Ident struct {
	Name   string
	Offset int
}

// Unary is a negation.
type Unary struct {
	X      Node
	Offset int
}

// Binary is an infix operation; Op is one of + - * / ^.
type Binary struct {
	Op     byte
	L, R   Node
	Offset int
}

// Pos implements Node.
func (n *Number) Pos() int { return n.Offset }

// Pos implements Node.
func (n *Ident) Pos() int { return n.Offset }

// Pos implements Node.
func (n *Unary) Pos() int { return n.Offset }

// Pos implements Node.
func (n *Binary) Pos() int { return n.Offset }

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Ident) String() string {
	return n.Name
}

func (n *Unary) String() string {
	return "(-" + n.X.String() + ")"
}

func (n *Binary) String() string {
	return "(" + n.L.String() + " " + string(n.Op) + " " + n.R.String() + ")"
}

// Variables returns the distinct identifiers referenced by n, sorted.
func Variables(n Node) []string {
	seen := make(map[string]struct{})
	walk(n, func(id *Ident) { seen[id.Name] = struct{}{} })

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func walk(n Node, visit func(*Ident)) {
	switch n := n.(type) {
	case *Ident:
		visit(n)
	case *Unary:
		walk(n.X, visit)
	case *Binary:
		walk(n.L, visit)
		walk(n.R, visit)
	}
}
