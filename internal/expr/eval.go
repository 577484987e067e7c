package expr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// Eval evaluates n with plain float64 arithmetic.
func Eval(n Node, env map[string]float64) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Ident:
		v, ok := env[n.Name]
		if !ok {
			return 0, unbound(n)
		}
		return v, nil
	case *Unary:
		x, err := Eval(n.X, env)
		return -x, err
	case *Binary:
		l, err := Eval(n.L, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(n.R, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			return l / r, nil
		case '^':
			return math.Pow(l, r), nil
		}
		return 0, fmt.Errorf("expr: unknown operator %q", n.Op)
	}
	return 0, fmt.Errorf("expr: unknown node %T", n)
}

// EvalDual evaluates n in forward mode, seeding the variable wrt.
// The result's Emag part is ∂n/∂wrt.
func EvalDual(n Node, env map[string]float64, wrt string) (dual.Number, error) {
	switch n := n.(type) {
	case *Number:
		return dual.Number{Real: n.Value}, nil
	case *Ident:
		v, ok := env[n.Name]
		if !ok {
			return dual.Number{}, unbound(n)
		}
		d := dual.Number{Real: v}
		if n.Name == wrt {
			d.Emag = 1
		}
		return d, nil
	case *Unary:
		x, err := EvalDual(n.X, env, wrt)
		return dual.Scale(-1, x), err
	case *Binary:
		l, err := EvalDual(n.L, env, wrt)
		if err != nil {
			return dual.Number{}, err
		}
		r, err := EvalDual(n.R, env, wrt)
		if err != nil {
			return dual.Number{}, err
		}
		switch n.Op {
		case '+':
			return dual.Add(l, r), nil
		case '-':
			return dual.Sub(l, r), nil
		case '*':
			return dual.Mul(l, r), nil
		case '/':
			return dual.Mul(l, dual.Inv(r)), nil
		case '^':
			if r.Emag == 0 {
				// Constant exponent: keeps negative bases finite.
				return dual.PowReal(l, r.Real), nil
			}
			return dual.Pow(l, r), nil
		}
		return dual.Number{}, fmt.Errorf("expr: unknown operator %q", n.Op)
	}
	return dual.Number{}, fmt.Errorf("expr: unknown node %T", n)
}
