package autodiff_test

import (
	"testing"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI_ProductRule(t *testing.T) {
	g := autodiff.NewGraph[float64]()
	x := g.New(13)
	y := g.New(2)

	out := x.Mul(y).Mul(x)
	out.Backward()

	dx, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, 52.0, dx)
	assert.Equal(t, autodiff.OpMul, out.Op())
}

func TestPublicAPI_Scalar(t *testing.T) {
	g := autodiff.NewGraph[float32]()
	x := g.New(2)

	out := g.Add(x.Ref(), autodiff.Scalar[float32](1))
	out.Backward()

	dx, ok := x.Grad()
	require.True(t, ok)
	assert.Equal(t, float32(1), dx)
	assert.Equal(t, float32(3), out.Data())
}
