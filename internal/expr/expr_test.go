package expr

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Precedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x + y * z", "(x + (y * z))"},
		{"x - y - z", "((x - y) - z)"},
		{"x / y / z", "((x / y) / z)"},
		{"x ^ y ^ z", "(x ^ (y ^ z))"},
		{"-x ^ 2", "(-(x ^ 2))"},
		{"2 ^ -x", "(2 ^ (-x))"},
		{"(x + y) * z", "((x + y) * z)"},
		{"--x", "(-(-x))"},
		{"1.5e-3 * x_1", "(0.0015 * x_1)"},
		{"  42 ", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			n, err := Parse(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		src    string
		offset int
	}{
		{"", 0},
		{"x +", 3},
		{"(x + y", 6},
		{"x $ y", 2},
		{"x y", 2},
		{"1.2.3", 0},
		{")", 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Parse(tt.src)
			require.Error(t, err)

			var syn *SyntaxError
			require.True(t, errors.As(err, &syn), "want *SyntaxError, got %T", err)
			assert.Equal(t, tt.offset, syn.Offset)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("(") })
	assert.NotPanics(t, func() { MustParse("x") })
}

func TestVariables(t *testing.T) {
	n := MustParse("b * a + b ^ c - 2")
	assert.Equal(t, []string{"a", "b", "c"}, Variables(n))
	assert.Empty(t, Variables(MustParse("1 + 2")))
}

func TestEval(t *testing.T) {
	n := MustParse("(x + 1) ^ 2 / y - -z")
	got, err := Eval(n, map[string]float64{"x": 2, "y": 3, "z": 4})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got, 1e-12)
}

func TestUnboundVariable(t *testing.T) {
	n := MustParse("x * y")

	_, err := Eval(n, map[string]float64{"x": 1})
	assert.True(t, errors.Is(err, ErrUnboundVariable))
	assert.Contains(t, err.Error(), `"y"`)

	_, err = EvalDual(n, map[string]float64{"y": 1}, "y")
	assert.True(t, errors.Is(err, ErrUnboundVariable))

	g := autodiff.NewGraph[float64]()
	_, err = Build(g, n, map[string]autodiff.Value[float64]{"x": g.New(1)})
	assert.True(t, errors.Is(err, ErrUnboundVariable))
}

func TestBuild_MatchesForwardMode(t *testing.T) {
	env := map[string]float64{"x": 2, "y": 3, "z": 0.1}

	tests := []string{
		"x + x",
		"x * y * x",
		"x / x",
		"x - y",
		"(x ^ y + z) ^ z",
		"-x * y + z / y",
		"x ^ 2 + 3 * x * y - 1 / z",
		"(x + y) * (x - y) / (z + 1)",
		"2 ^ x",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			n := MustParse(src)

			g := autodiff.NewGraph[float64]()
			bind := make(map[string]autodiff.Value[float64], len(env))
			for name, v := range env {
				bind[name] = g.New(v)
			}

			out, err := Build(g, n, bind)
			require.NoError(t, err)
			out.Backward()

			want, err := Eval(n, env)
			require.NoError(t, err)
			assert.InDelta(t, want, out.Data(), 1e-12)

			for name, v := range bind {
				d, err := EvalDual(n, env, name)
				require.NoError(t, err)
				got, ok := v.Grad()
				require.True(t, ok)
				assert.InDelta(t, d.Emag, got, 1e-9, "d/d%s", name)
			}
		})
	}
}

func TestBuild_LiteralOutput(t *testing.T) {
	g := autodiff.NewGraph[float32]()
	out, err := Build(g, MustParse("3"), nil)
	require.NoError(t, err)

	assert.Equal(t, float32(3), out.Data())
	assert.False(t, out.RequiresGrad())
}

func TestBuild_NegativeBaseConstantExponent(t *testing.T) {
	n := MustParse("x ^ 3")
	g := autodiff.NewGraph[float64]()
	x := g.New(-2)

	out, err := Build(g, n, map[string]autodiff.Value[float64]{"x": x})
	require.NoError(t, err)
	out.Backward()

	got, _ := x.Grad()
	assert.InDelta(t, 12.0, got, 1e-12)
	assert.False(t, math.IsNaN(got))

	d, err := EvalDual(n, map[string]float64{"x": -2}, "x")
	require.NoError(t, err)
	assert.InDelta(t, 12.0, d.Emag, 1e-12)
}
