package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/numeric"
)

// Value is a handle to a node in a Graph.
//
// Handles are small and meant to be passed by value. The zero Value is not usable.
type Value[T numeric.Differentiable] struct {
	g  *Graph[T]
	id NodeID
}

// Graph returns the graph that owns the node.
func (v Value[T]) Graph() *Graph[T] {
	return v.g
}

// ID returns the node's index in its graph.
func (v Value[T]) ID() NodeID {
	return v.id
}

// Data returns the node's value.
func (v Value[T]) Data() T {
	return v.node().data
}

// Grad returns the accumulated gradient.
// The second result is false if the node does not track gradients.
func (v Value[T]) Grad() (T, bool) {
	n := v.node()
	if !n.tracked {
		return numeric.ZeroGrad[T](), false
	}
	return n.grad, true
}

// ZeroGrad resets this node's accumulator. Ancestors are not affected.
func (v Value[T]) ZeroGrad() {
	n := v.node()
	if n.tracked {
		n.grad = numeric.ZeroGrad[T]()
	}
}

// RequiresGrad returns true if the node tracks gradients.
func (v Value[T]) RequiresGrad() bool {
	return v.node().tracked
}

// SetRequiresGrad enables or disables gradient tracking for the node.
// Either way the accumulator restarts from zero.
//
// An untracked node receives no gradient, and propagation does not continue
// past it into the operands that produced it.
func (v Value[T]) SetRequiresGrad(enabled bool) {
	n := v.node()
	n.tracked = enabled
	n.grad = numeric.ZeroGrad[T]()
}

// IsLeaf returns true if the node was not produced by an operation.
func (v Value[T]) IsLeaf() bool {
	return v.node().op == OpNone
}

// Op returns the operation that produced the node, or OpNone for leaves.
func (v Value[T]) Op() Op {
	return v.node().op
}

// Ref returns an operand that borrows this node.
func (v Value[T]) Ref() Operand[T] {
	v.node()
	return Operand[T]{kind: operandRef, g: v.g, id: v.id}
}

// Owned returns a constant operand holding a snapshot of the node's value.
// Gradient never flows through an owned operand.
func (v Value[T]) Owned() Operand[T] {
	return Scalar(v.Data())
}

// String returns a human-readable description of the node.
func (v Value[T]) String() string {
	n := v.node()
	if !n.tracked {
		return fmt.Sprintf("Value(data=%v)", n.data)
	}
	return fmt.Sprintf("Value(data=%v, grad=%v)", n.data, n.grad)
}

func (v Value[T]) node() *node[T] {
	if v.g == nil {
		panic("autodiff: use of zero Value")
	}
	return &v.g.nodes[v.id]
}
