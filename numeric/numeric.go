// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric exposes the scalar types the autodiff engine can differentiate.
//
// Any type whose underlying type is float32 or float64 qualifies:
//
//	type Meters float64
//
//	g := autodiff.NewGraph[Meters]()
package numeric

import "github.com/born-ml/micrograd/internal/numeric"

// Differentiable is the constraint satisfied by differentiable scalar types.
type Differentiable = numeric.Differentiable

// ZeroGrad returns the additive identity of T.
func ZeroGrad[T Differentiable]() T {
	return numeric.ZeroGrad[T]()
}

// EyeGrad returns the multiplicative identity of T.
func EyeGrad[T Differentiable]() T {
	return numeric.EyeGrad[T]()
}

// Pow returns base raised to exp.
func Pow[T Differentiable](base, exp T) T {
	return numeric.Pow(base, exp)
}

// Log returns the natural logarithm of x.
func Log[T Differentiable](x T) T {
	return numeric.Log(x)
}
