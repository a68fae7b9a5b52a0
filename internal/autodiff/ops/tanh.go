package ops

import "math"

// TanhOp represents the hyperbolic tangent: tanh(x) = (exp(x) - exp(-x)) / (exp(x) + exp(-x)).
type TanhOp struct {
	input  float64
	output float64
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp(x float64) *TanhOp {
	return &TanhOp{
		input:  x,
		output: math.Tanh(x),
	}
}

// Name returns "tanh".
func (op *TanhOp) Name() string { return "tanh" }

// Inputs returns the input value.
func (op *TanhOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns the output value.
func (op *TanhOp) Output() float64 {
	return op.output
}

// LocalGrads returns the gradient rule for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func (op *TanhOp) LocalGrads() []LocalGrad {
	y := op.output
	return []LocalGrad{
		func(g float64) float64 { return g * (1 - y*y) },
	}
}
