// Package gradcheck computes reference gradients for expressions and compares
// them with the reverse-mode engine.
//
// Three methods are available:
//   - Reverse: autodiff.Graph + Backward (the engine under test)
//   - Forward: dual numbers, exact up to rounding
//   - Central: central finite differences, O(eps²) truncation error
package gradcheck

import (
	"fmt"
	"math"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/expr"
	"github.com/born-ml/micrograd/internal/numeric"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
)

// DefaultEpsilon is the finite-difference step used when Options.Epsilon is zero.
const DefaultEpsilon = 1e-6

// Options configures Check.
type Options struct {
	Epsilon  float64         // Finite-difference step (default: DefaultEpsilon)
	Parallel parallel.Config // Fan-out across variables
}

// Report holds the value of an expression and its gradient per method.
// Gradient slices are indexed like Names.
type Report struct {
	Value   float64
	Names   []string
	Reverse []float64
	Forward []float64
	Central []float64
}

// MismatchError reports the first gradient that differs beyond tolerance.
type MismatchError struct {
	Index     int
	Got, Want float64
	Tol       float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("gradient %d: got %g, want %g (tol %g)", e.Index, e.Got, e.Want, e.Tol)
}

// Check evaluates n at env with all three methods. The reverse pass runs in
// precision T. Every variable of n must be bound in env.
func Check[T numeric.Differentiable](n expr.Node, env map[string]float64, opts Options) (*Report, error) {
	if opts.Epsilon == 0 {
		opts.Epsilon = DefaultEpsilon
	}
	names := expr.Variables(n)

	value, rev, err := Reverse[T](n, env, names)
	if err != nil {
		return nil, err
	}
	fwd, err := Forward(n, env, names, opts.Parallel)
	if err != nil {
		return nil, err
	}

	point := make([]float64, len(names))
	for i, name := range names {
		point[i] = env[name]
	}
	f := func(p []float64) float64 {
		local := make(map[string]float64, len(env))
		for k, v := range env {
			local[k] = v
		}
		for i, name := range names {
			local[name] = p[i]
		}
		// Variables were validated by Reverse.
		v, _ := expr.Eval(n, local)
		return v
	}

	return &Report{
		Value:   value,
		Names:   names,
		Reverse: rev,
		Forward: fwd,
		Central: Central(f, point, opts.Epsilon, opts.Parallel),
	}, nil
}

// Reverse builds n into a fresh graph with one tracked leaf per name, runs
// Backward and returns the output value and d(output)/d(name).
func Reverse[T numeric.Differentiable](n expr.Node, env map[string]float64, names []string) (float64, []float64, error) {
	g := autodiff.NewGraph[T]()
	bind := make(map[string]autodiff.Value[T], len(names))
	for _, name := range names {
		v, ok := env[name]
		if !ok {
			return 0, nil, errors.Wrapf(expr.ErrUnboundVariable, "%q", name)
		}
		bind[name] = g.New(T(v))
	}

	out, err := expr.Build(g, n, bind)
	if err != nil {
		return 0, nil, errors.Wrap(err, "build graph")
	}
	out.Backward()

	grads := make([]float64, len(names))
	for i, name := range names {
		d, _ := bind[name].Grad()
		grads[i] = float64(d)
	}
	return float64(out.Data()), grads, nil
}

// Forward returns ∂n/∂name for each name using dual numbers, one forward
// evaluation per name.
func Forward(n expr.Node, env map[string]float64, names []string, cfg parallel.Config) ([]float64, error) {
	errs := make([]error, len(names))
	grads := parallel.Map(len(names), func(i int) float64 {
		d, err := expr.EvalDual(n, env, names[i])
		errs[i] = err
		return d.Emag
	}, cfg)

	for _, err := range errs {
		if err != nil {
			return nil, errors.Wrap(err, "forward mode")
		}
	}
	return grads, nil
}

// Central returns ∂f/∂x_i for every coordinate of x using central differences:
//
//	(f(x + eps·e_i) - f(x - eps·e_i)) / (2·eps)
//
// f must be safe to call concurrently when cfg enables parallelism.
func Central(f func([]float64) float64, x []float64, eps float64, cfg parallel.Config) []float64 {
	return parallel.Map(len(x), func(i int) float64 {
		plus := append([]float64(nil), x...)
		minus := append([]float64(nil), x...)
		plus[i] += eps
		minus[i] -= eps
		return (f(plus) - f(minus)) / (2 * eps)
	}, cfg)
}

// Compare returns a *MismatchError for the first i where got[i] and want[i]
// differ by more than tol relative to max(1, |want[i]|). NaN matches NaN.
func Compare(got, want []float64, tol float64) error {
	if len(got) != len(want) {
		return errors.Errorf("length mismatch: %d vs %d", len(got), len(want))
	}
	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		if math.Abs(got[i]-want[i]) > tol*math.Max(1, math.Abs(want[i])) || math.IsNaN(got[i]) != math.IsNaN(want[i]) {
			return &MismatchError{Index: i, Got: got[i], Want: want[i], Tol: tol}
		}
	}
	return nil
}
