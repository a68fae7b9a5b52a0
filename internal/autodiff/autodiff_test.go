package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/backprop/internal/autodiff"
)

// TestNewValue tests leaf construction.
func TestNewValue(t *testing.T) {
	v := autodiff.NewValue(1.5, true)

	assert.Equal(t, 1.5, v.Data())
	assert.True(t, v.RequiresGrad())
	assert.True(t, v.IsLeaf())
	assert.Empty(t, v.Parents())
	assert.Equal(t, "", v.Op())
	assert.False(t, v.HasGrad())

	_, err := v.Grad()
	assert.ErrorIs(t, err, autodiff.ErrNoGradient)
}

func TestConstantAndParam(t *testing.T) {
	c := autodiff.Constant(3)
	p := autodiff.Param(3)

	assert.False(t, c.RequiresGrad())
	assert.True(t, p.RequiresGrad())
	assert.NotEqual(t, c.ID(), p.ID(), "equal data must not alias")
}

// TestNewValue_NonFinite checks that NaN and Inf are stored as-is.
func TestNewValue_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(autodiff.Param(math.NaN()).Data()))
	assert.True(t, math.IsInf(autodiff.Param(math.Inf(-1)).Data(), -1))

	out := autodiff.Mul(autodiff.Param(math.Inf(1)), autodiff.Param(0))
	assert.True(t, math.IsNaN(out.Data()))
}

// TestOperations_Forward tests forward results of every operation.
func TestOperations_Forward(t *testing.T) {
	a := autodiff.Param(3)
	b := autodiff.Param(2)

	tests := []struct {
		name string
		got  *autodiff.Value
		want float64
		op   string
	}{
		{"add", autodiff.Add(a, b), 5, "add"},
		{"sub", autodiff.Sub(a, b), 1, "sub"},
		{"mul", autodiff.Mul(a, b), 6, "mul"},
		{"div", autodiff.Div(a, b), 1.5, "div"},
		{"neg", autodiff.Neg(a), -3, "neg"},
		{"pow", autodiff.Pow(a, 2), 9, "pow"},
		{"exp", autodiff.Exp(b), math.Exp(2), "exp"},
		{"log", autodiff.Log(b), math.Log(2), "log"},
		{"tanh", autodiff.Tanh(b), math.Tanh(2), "tanh"},
		{"sigmoid", autodiff.Sigmoid(b), 1 / (1 + math.Exp(-2)), "sigmoid"},
		{"relu", autodiff.ReLU(autodiff.Neg(a)), 0, "relu"},
		{"method chain", a.Mul(b).Sub(b).Pow(2), 16, "pow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got.Data(), 1e-12)
			assert.Equal(t, tt.op, tt.got.Op())
			assert.False(t, tt.got.IsLeaf())
			assert.True(t, tt.got.RequiresGrad())
		})
	}
}

// TestOperations_RequiresGradIsOr tests flag propagation.
func TestOperations_RequiresGradIsOr(t *testing.T) {
	p := autodiff.Param(1)
	c := autodiff.Constant(2)

	assert.True(t, autodiff.Mul(p, c).RequiresGrad())
	assert.True(t, autodiff.Mul(c, p).RequiresGrad())
	assert.False(t, autodiff.Mul(c, c).RequiresGrad())
	assert.False(t, autodiff.Pow(c, 3).RequiresGrad())
}

// TestOperations_RecordsDifferentiableParents tests parent edges.
func TestOperations_RecordsDifferentiableParents(t *testing.T) {
	w := autodiff.Param(1)
	x := autodiff.Constant(1)

	z := autodiff.Mul(w, x)
	assert.Equal(t, []*autodiff.Value{w}, z.Parents())

	both := autodiff.Mul(w, w)
	parents := both.Parents()
	require.Len(t, parents, 2)
	assert.Same(t, w, parents[0])
	assert.Same(t, w, parents[1])

	assert.Empty(t, autodiff.Mul(x, x).Parents())
}

// TestOperations_Pure checks operands are not mutated by operations.
func TestOperations_Pure(t *testing.T) {
	a := autodiff.Param(2)
	b := autodiff.Param(5)

	_ = autodiff.Mul(a, b)
	_ = autodiff.Sub(a, b)

	assert.Equal(t, 2.0, a.Data())
	assert.Equal(t, 5.0, b.Data())
	assert.Empty(t, a.Parents())
	assert.False(t, a.HasGrad())
}

func TestParents_ReturnsCopy(t *testing.T) {
	a := autodiff.Param(2)
	z := autodiff.Mul(a, a)

	parents := z.Parents()
	parents[0] = autodiff.Param(100)

	assert.Same(t, a, z.Parents()[0])
}

// TestOperations_NilOperandPanics tests the contract violation path.
func TestOperations_NilOperandPanics(t *testing.T) {
	a := autodiff.Param(1)

	assert.PanicsWithValue(t, "autodiff: mul: nil operand", func() { autodiff.Mul(a, nil) })
	assert.PanicsWithValue(t, "autodiff: sub: nil operand", func() { autodiff.Sub(nil, a) })
	assert.PanicsWithValue(t, "autodiff: pow: nil operand", func() { autodiff.Pow(nil, 2) })
	assert.PanicsWithValue(t, "autodiff: sum: nil operand", func() { autodiff.Sum(a, nil) })
}

func TestSum(t *testing.T) {
	a := autodiff.Param(1)
	b := autodiff.Param(2)
	c := autodiff.Param(3)

	s := autodiff.Sum(a, b, c)
	assert.Equal(t, 6.0, s.Data())

	require.NoError(t, s.Backward())
	for _, v := range []*autodiff.Value{a, b, c} {
		g, err := v.Grad()
		require.NoError(t, err)
		assert.Equal(t, 1.0, g)
	}

	empty := autodiff.Sum()
	assert.Equal(t, 0.0, empty.Data())
	assert.False(t, empty.RequiresGrad())

	assert.Same(t, a, autodiff.Sum(a))
}

func TestValue_String(t *testing.T) {
	w := autodiff.Param(1)
	loss := w.Mul(autodiff.Constant(1)).Sub(autodiff.Constant(2)).Pow(2)

	assert.Equal(t, "Value(data=2)", autodiff.Constant(2).String())
	assert.Equal(t, "Value(data=1, requires_grad=true)", w.String())

	require.NoError(t, loss.Backward())
	assert.Equal(t, "Value(data=1, grad=-2)", w.String())
	assert.Equal(t, "Value(data=1, grad=1)", loss.String())
}
