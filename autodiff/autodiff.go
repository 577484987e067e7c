// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every node lives in a Graph arena and is addressed through a Value handle.
// Arithmetic on handles records the operation; Backward walks the recorded
// graph in reverse and accumulates d(output)/d(node) into every ancestor.
//
// Example:
//
//	import "github.com/born-ml/micrograd/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph[float64]()
//	    x := g.New(2)
//	    y := g.New(3)
//
//	    out := x.Mul(y).Add(x) // out = x·y + x
//	    out.Backward()
//
//	    dx, _ := x.Grad() // y + 1 = 4
//	    dy, _ := y.Grad() // x = 2
//	}
//
// Operands can be borrowed (Value.Ref) so gradient flows into them, or passed
// as constants (Value.Owned, Scalar) so it does not:
//
//	scaled := g.Mul(x.Ref(), autodiff.Scalar(4.5))
package autodiff

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/numeric"
)

// Graph owns the nodes of a computation graph.
type Graph[T numeric.Differentiable] = autodiff.Graph[T]

// Value is a handle to a node in a Graph.
type Value[T numeric.Differentiable] = autodiff.Value[T]

// Operand is a borrowed node or a constant used as an operation input.
type Operand[T numeric.Differentiable] = autodiff.Operand[T]

// NodeID is a node's index inside its graph.
type NodeID = autodiff.NodeID

// Op identifies the operation that produced a node.
type Op = autodiff.Op

// Operation kinds.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpSub  = autodiff.OpSub
	OpMul  = autodiff.OpMul
	OpDiv  = autodiff.OpDiv
	OpPow  = autodiff.OpPow
	OpNeg  = autodiff.OpNeg
)

// NewGraph creates an empty graph.
//
// Example:
//
//	g := autodiff.NewGraph[float32]()
//	w := g.New(0.5)
func NewGraph[T numeric.Differentiable]() *Graph[T] {
	return autodiff.NewGraph[T]()
}

// Scalar returns a constant operand holding x.
func Scalar[T numeric.Differentiable](x T) Operand[T] {
	return autodiff.Scalar(x)
}
