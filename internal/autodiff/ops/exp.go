package ops

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	input  float64 // x
	output float64 // exp(x)
}

// NewExpOp creates a new ExpOp.
func NewExpOp(x float64) *ExpOp {
	return &ExpOp{
		input:  x,
		output: math.Exp(x),
	}
}

// Name returns "exp".
func (op *ExpOp) Name() string { return "exp" }

// Inputs returns [x].
func (op *ExpOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns exp(x).
func (op *ExpOp) Output() float64 {
	return op.output
}

// LocalGrads reuses the forward output: grad_input = grad_output * exp(x).
func (op *ExpOp) LocalGrads() []LocalGrad {
	y := op.output
	return []LocalGrad{
		func(g float64) float64 { return g * y },
	}
}
