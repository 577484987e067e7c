package expr

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp // + - * / ^ ( )
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// Parse parses src into an expression tree.
// Errors are *SyntaxError values.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, &SyntaxError{Offset: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
	}
	return n, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

func lex(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			// Exponent: 1e-3, 2.5E+4
			if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
				j := i + 1
				if j < len(src) && (src[j] == '+' || src[j] == '-') {
					j++
				}
				if j < len(src) && isDigit(src[j]) {
					for j < len(src) && isDigit(src[j]) {
						j++
					}
					i = j
				}
			}
			toks = append(toks, token{kind: tokNumber, text: src[start:i], pos: start})
		case isLetter(c):
			start := i
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], pos: start})
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '^' || c == '(' || c == ')':
			toks = append(toks, token{kind: tokOp, text: src[i : i+1], pos: i})
			i++
		default:
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return append(toks, token{kind: tokEOF, text: "end of input", pos: len(src)}), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

// accept consumes the next token if it is one of the given operators.
func (p *parser) accept(ops string) (token, bool) {
	tok := p.peek()
	if tok.kind != tokOp {
		return tok, false
	}
	for i := 0; i < len(ops); i++ {
		if tok.text[0] == ops[i] {
			return p.next(), true
		}
	}
	return tok, false
}

func (p *parser) expr() (Node, error) {
	return p.binary("+-", p.term)
}

func (p *parser) term() (Node, error) {
	return p.binary("*/", p.unary)
}

// binary parses a left-associative chain of operand (ops operand)*.
func (p *parser) binary(ops string, operand func() (Node, error)) (Node, error) {
	l, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.accept(ops)
		if !ok {
			return l, nil
		}
		r, err := operand()
		if err != nil {
			return nil, err
		}
		l = &Binary{Op: tok.text[0], L: l, R: r, Offset: tok.pos}
	}
}

func (p *parser) unary() (Node, error) {
	if tok, ok := p.accept("-"); ok {
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{X: x, Offset: tok.pos}, nil
	}
	return p.power()
}

func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	tok, ok := p.accept("^")
	if !ok {
		return base, nil
	}
	exp, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: '^', L: base, R: exp, Offset: tok.pos}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: tok.pos, Msg: errors.Wrap(err, "bad number").Error()}
		}
		return &Number{Value: v, Offset: tok.pos}, nil
	case tokIdent:
		return &Ident{Name: tok.text, Offset: tok.pos}, nil
	case tokOp:
		if tok.text == "(" {
			n, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, ok := p.accept(")"); !ok {
				next := p.peek()
				return nil, &SyntaxError{Offset: next.pos, Msg: fmt.Sprintf("expected ')', found %q", next.text)}
			}
			return n, nil
		}
	}
	return nil, &SyntaxError{Offset: tok.pos, Msg: fmt.Sprintf("unexpected %q", tok.text)}
}
