package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/numeric"
)

// Op identifies the operation that produced a node.
//
// Supported operations:
//   - OpAdd: a + b (d/da = 1, d/db = 1)
//   - OpSub: a - b (d/da = 1, d/db = -1)
//   - OpMul: a * b (d/da = b, d/db = a)
//   - OpDiv: a / b (d/da = 1/b, d/db = -a/b²)
//   - OpPow: a ^ b (d/da = b·a^(b-1), d/db = a^b·ln(a))
//   - OpNeg: -a (d/da = -1)
type Op uint8

// Operation kinds. OpNone marks a leaf.
const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
)

// String returns the operator symbol.
func (op Op) String() string {
	switch op {
	case OpNone:
		return "leaf"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpNeg:
		return "neg"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Unary returns true for operations with a single operand.
func (op Op) Unary() bool {
	return op == OpNeg
}

// forward computes the result of op applied to a and b.
// Unary operations ignore b.
func forward[T numeric.Differentiable](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPow:
		return numeric.Pow(a, b)
	case OpNeg:
		return -a
	default:
		panic(fmt.Sprintf("autodiff: forward of %v", op))
	}
}

// local returns the partial derivatives ∂z/∂a and ∂z/∂b of z = op(a, b).
// For unary operations the second result is zero.
//
// Division by zero and ln of a non-positive base yield Inf/NaN as the
// underlying float type defines.
func local[T numeric.Differentiable](op Op, a, b T) (T, T) {
	eye := numeric.EyeGrad[T]()
	switch op {
	case OpAdd:
		return eye, eye
	case OpSub:
		return eye, -eye
	case OpMul:
		return b, a
	case OpDiv:
		return eye / b, -a / (b * b)
	case OpPow:
		return b * numeric.Pow(a, b-eye), numeric.Pow(a, b) * numeric.Log(a)
	case OpNeg:
		return -eye, numeric.ZeroGrad[T]()
	default:
		panic(fmt.Sprintf("autodiff: backward of %v", op))
	}
}
