package expr

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/numeric"
)

// Build assembles n into g and returns the output node.
//
// Identifiers borrow the handles in bind. Number literals become constant
// operands; where an operation needs a node (the base or exponent of "^", or a
// literal output) a Coeff node is created.
func Build[T numeric.Differentiable](g *autodiff.Graph[T], n Node, bind map[string]autodiff.Value[T]) (autodiff.Value[T], error) {
	b := &builder[T]{g: g, bind: bind}
	out, err := b.build(n)
	if err != nil {
		return autodiff.Value[T]{}, err
	}
	return b.value(out), nil
}

// built is an intermediate result: a node, or a literal not yet in the graph.
type built[T numeric.Differentiable] struct {
	v       autodiff.Value[T]
	literal bool
	c       T
}

type builder[T numeric.Differentiable] struct {
	g    *autodiff.Graph[T]
	bind map[string]autodiff.Value[T]
}

func (b *builder[T]) operand(x built[T]) autodiff.Operand[T] {
	if x.literal {
		return autodiff.Scalar(x.c)
	}
	return x.v.Ref()
}

func (b *builder[T]) value(x built[T]) autodiff.Value[T] {
	if x.literal {
		return b.g.Coeff(x.c)
	}
	return x.v
}

func (b *builder[T]) build(n Node) (built[T], error) {
	switch n := n.(type) {
	case *Number:
		return built[T]{literal: true, c: T(n.Value)}, nil

	case *Ident:
		v, ok := b.bind[n.Name]
		if !ok {
			return built[T]{}, unbound(n)
		}
		return built[T]{v: v}, nil

	case *Unary:
		x, err := b.build(n.X)
		if err != nil {
			return built[T]{}, err
		}
		return built[T]{v: b.g.Neg(b.operand(x))}, nil

	case *Binary:
		l, err := b.build(n.L)
		if err != nil {
			return built[T]{}, err
		}
		r, err := b.build(n.R)
		if err != nil {
			return built[T]{}, err
		}

		var v autodiff.Value[T]
		switch n.Op {
		case '+':
			v = b.g.Add(b.operand(l), b.operand(r))
		case '-':
			v = b.g.Sub(b.operand(l), b.operand(r))
		case '*':
			v = b.g.Mul(b.operand(l), b.operand(r))
		case '/':
			v = b.g.Div(b.operand(l), b.operand(r))
		case '^':
			v = b.g.Pow(b.value(l), b.value(r))
		default:
			return built[T]{}, fmt.Errorf("expr: unknown operator %q", n.Op)
		}
		return built[T]{v: v}, nil

	default:
		return built[T]{}, fmt.Errorf("expr: unknown node %T", n)
	}
}
