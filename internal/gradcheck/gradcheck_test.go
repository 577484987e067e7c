package gradcheck

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/expr"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentral_Quadratic(t *testing.T) {
	f := func(p []float64) float64 { return p[0]*p[0] + 3*p[0]*p[1] }

	for _, cfg := range []parallel.Config{parallel.Sequential(), parallel.DefaultConfig()} {
		got := Central(f, []float64{2, 5}, 1e-5, cfg)
		require.Len(t, got, 2)
		assert.InDelta(t, 2*2+3*5, got[0], 1e-6)
		assert.InDelta(t, 3*2, got[1], 1e-6)
	}
}

func TestCheck_PowerChain(t *testing.T) {
	n := expr.MustParse("(x ^ y + z) ^ z")
	env := map[string]float64{"x": 2, "y": 3, "z": 0.1}

	report, err := Check[float64](n, env, Options{Parallel: parallel.DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y", "z"}, report.Names)
	assert.InDelta(t, math.Pow(8.1, 0.1), report.Value, 1e-12)
	require.NoError(t, Compare(report.Reverse, report.Forward, 1e-9))
	require.NoError(t, Compare(report.Reverse, report.Central, 1e-3))
}

func TestCheck_Float32(t *testing.T) {
	n := expr.MustParse("x * y * x")
	env := map[string]float64{"x": 13, "y": 2}

	report, err := Check[float32](n, env, Options{})
	require.NoError(t, err)

	assert.Equal(t, []float64{52, 169}, report.Reverse)
	require.NoError(t, Compare(report.Reverse, report.Forward, 1e-6))
}

func TestCheck_UnboundVariable(t *testing.T) {
	_, err := Check[float64](expr.MustParse("x + y"), map[string]float64{"x": 1}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrUnboundVariable))
}

func TestCompare(t *testing.T) {
	assert.NoError(t, Compare([]float64{1, 100}, []float64{1.0005, 100.05}, 1e-3))
	assert.NoError(t, Compare([]float64{math.NaN()}, []float64{math.NaN()}, 1e-3))

	err := Compare([]float64{1, 2}, []float64{1, 2.5}, 1e-3)
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 1, mismatch.Index)
	assert.Equal(t, 2.5, mismatch.Want)

	assert.Error(t, Compare([]float64{math.NaN()}, []float64{0}, 1e-3))
	assert.Error(t, Compare([]float64{1}, []float64{1, 2}, 1e-3))
}
