// Package numeric defines the scalar types the autodiff engine can differentiate.
//
// A type qualifies when its underlying type is float32 or float64. Go supplies the
// arithmetic operator set (+ - * / and unary -) for every such type, so the package
// only has to provide the gradient identities and the two transcendental
// primitives the power rule needs.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Differentiable is a constraint for scalar types supported by the engine.
// Defined types such as `type Meters float64` satisfy it as well.
type Differentiable interface {
	constraints.Float
}

// ZeroGrad returns the additive identity, used to reset gradient accumulators.
func ZeroGrad[T Differentiable]() T {
	return 0
}

// EyeGrad returns the multiplicative identity, the seed dy/dy of a backward pass.
func EyeGrad[T Differentiable]() T {
	return 1
}

// Pow returns base raised to exp with math.Pow semantics.
func Pow[T Differentiable](base, exp T) T {
	return T(math.Pow(float64(base), float64(exp)))
}

// Log returns the natural logarithm of x.
//
// Log(0) is -Inf and Log of a negative number is NaN; neither is trapped.
func Log[T Differentiable](x T) T {
	return T(math.Log(float64(x)))
}
