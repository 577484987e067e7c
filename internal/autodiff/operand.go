package autodiff

import "github.com/born-ml/micrograd/internal/numeric"

type operandKind uint8

const (
	operandConst operandKind = iota // owned snapshot, never traversed
	operandRef                      // borrowed node, traversable
)

// Operand is an input of an operation: either a borrowed reference to a node
// (Ref) or an owned constant snapshot of a scalar (Const).
//
// Only Ref operands receive gradient during the backward pass.
type Operand[T numeric.Differentiable] struct {
	kind operandKind
	g    *Graph[T]
	id   NodeID
	data T // valid for Const operands only
}

// Scalar returns a constant operand holding x.
func Scalar[T numeric.Differentiable](x T) Operand[T] {
	return Operand[T]{kind: operandConst, data: x}
}

// IsRef returns true if the operand borrows a node.
func (o Operand[T]) IsRef() bool {
	return o.kind == operandRef
}

// Data returns the operand's current value.
func (o Operand[T]) Data() T {
	if o.kind == operandRef {
		return o.g.nodes[o.id].data
	}
	return o.data
}

// node returns the referenced node, or nil for constants.
func (o Operand[T]) node() *node[T] {
	if o.kind != operandRef {
		return nil
	}
	return &o.g.nodes[o.id]
}
