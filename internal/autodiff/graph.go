// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Graph[T]: an arena that owns every node; nodes are addressed by NodeID
//   - Value[T]: a cheap handle {graph, id}; copying it never copies a node
//   - Operand[T]: a borrowed Ref to a node, or an owned Const snapshot of a value
//   - Op: closed set of operations (Add, Sub, Mul, Div, Pow, Neg) with their
//     local derivative rules
//
// Usage:
//
//	g := autodiff.NewGraph[float64]()
//	x := g.New(13)
//	y := g.New(2)
//	z := x.Mul(y)
//	out := z.Mul(x) // out = x·y·x
//
//	out.Backward()
//	grad, _ := x.Grad() // d(out)/dx = 2xy = 52
//
// Gradients accumulate across Backward calls. Reset a node with Value.ZeroGrad
// or every node in the arena with Graph.ZeroGrad before reusing a graph.
//
// A Graph is not safe for concurrent use.
package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/numeric"
)

// NodeID is the index of a node inside its graph's arena.
type NodeID int

// node is a single scalar in the computation graph.
type node[T numeric.Differentiable] struct {
	data    T
	grad    T
	tracked bool // whether grad is an active accumulator

	// op is OpNone for leaves. Neg stores its operand in both slots.
	op       Op
	lhs, rhs Operand[T]
}

// Graph owns the nodes of a computation graph.
//
// Nodes are appended in creation order and never removed, so every operand of a
// node has a smaller NodeID than the node itself.
type Graph[T numeric.Differentiable] struct {
	nodes     []node[T]
	recording bool
}

// NewGraph creates an empty graph with recording enabled.
func NewGraph[T numeric.Differentiable]() *Graph[T] {
	return &Graph[T]{
		nodes:     make([]node[T], 0, 64), // Pre-allocate for common case
		recording: true,
	}
}

// New creates a leaf that tracks gradients (an input or parameter).
func (g *Graph[T]) New(data T) Value[T] {
	return g.push(node[T]{data: data, grad: numeric.ZeroGrad[T](), tracked: true})
}

// Coeff creates a leaf that does not track gradients (a constant).
func (g *Graph[T]) Coeff(data T) Value[T] {
	return g.push(node[T]{data: data})
}

// StartRecording enables operation recording (the default).
func (g *Graph[T]) StartRecording() {
	g.recording = true
}

// StopRecording disables operation recording.
// Arithmetic performed while not recording yields untracked leaves.
func (g *Graph[T]) StopRecording() {
	g.recording = false
}

// IsRecording returns true if arithmetic records operations.
func (g *Graph[T]) IsRecording() bool {
	return g.recording
}

// Len returns the number of nodes in the arena.
func (g *Graph[T]) Len() int {
	return len(g.nodes)
}

// ZeroGrad resets the accumulator of every tracked node in the graph.
func (g *Graph[T]) ZeroGrad() {
	for i := range g.nodes {
		if g.nodes[i].tracked {
			g.nodes[i].grad = numeric.ZeroGrad[T]()
		}
	}
}

func (g *Graph[T]) push(n node[T]) Value[T] {
	g.nodes = append(g.nodes, n)
	return Value[T]{g: g, id: NodeID(len(g.nodes) - 1)}
}

// owns panics if v was not created by g.
func (g *Graph[T]) owns(v Value[T]) {
	if v.g != g {
		panic(fmt.Sprintf("autodiff: node %d belongs to a different graph", v.id))
	}
}
