package autodiff

import "github.com/born-ml/micrograd/internal/numeric"

// Backward computes d(v)/d(n) for every ancestor n of v and adds it to n's
// accumulator.
//
// Algorithm:
//  1. Seed v with dv/dv = 1
//  2. Walk the arena from v down to the first node. Nodes are created after
//     their operands, so when a node is reached its gradient for this pass is
//     complete
//  3. For each reached node, multiply the incoming gradient by the local
//     derivative of every borrowed, tracked operand and add the result to that
//     operand's pass gradient
//  4. Add each node's pass gradient to its accumulator
//
// Constant operands and untracked nodes receive nothing and are not expanded.
// When both operands are the same node (x + x, x / x) both contributions land
// on that one node, which is then expanded once.
//
// Accumulators are never overwritten: calling Backward twice without
// ZeroGrad doubles every gradient.
func (v Value[T]) Backward() {
	g := v.g
	if g == nil {
		panic("autodiff: use of zero Value")
	}

	// Gradient of v with respect to each node for this pass only.
	pass := make([]T, v.id+1)
	reached := make([]bool, v.id+1)
	pass[v.id] = numeric.EyeGrad[T]()
	reached[v.id] = true

	for id := v.id; id >= 0; id-- {
		if !reached[id] {
			continue
		}
		n := &g.nodes[id]
		if n.tracked {
			n.grad += pass[id]
		}
		if n.op == OpNone {
			continue // end of graph
		}

		da, db := local(n.op, n.lhs.Data(), n.rhs.Data())
		propagate(n.lhs, da*pass[id], pass, reached)
		if !n.op.Unary() {
			propagate(n.rhs, db*pass[id], pass, reached)
		}
	}
}

// propagate adds delta to the pass gradient of o if o is a tracked Ref.
func propagate[T numeric.Differentiable](o Operand[T], delta T, pass []T, reached []bool) {
	n := o.node()
	if n == nil || !n.tracked {
		return
	}
	pass[o.id] += delta
	reached[o.id] = true
}
