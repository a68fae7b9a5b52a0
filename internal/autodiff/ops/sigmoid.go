package ops

import "math"

// SigmoidOp represents the sigmoid activation: σ(x) = 1 / (1 + exp(-x)).
//
// Backward pass:
//   - dσ/dx = σ(x) * (1 - σ(x))
type SigmoidOp struct {
	input  float64
	output float64
}

// NewSigmoidOp creates a new sigmoid operation.
func NewSigmoidOp(x float64) *SigmoidOp {
	return &SigmoidOp{
		input:  x,
		output: 1.0 / (1.0 + math.Exp(-x)),
	}
}

// Name returns "sigmoid".
func (op *SigmoidOp) Name() string { return "sigmoid" }

// Inputs returns [x].
func (op *SigmoidOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns σ(x).
func (op *SigmoidOp) Output() float64 {
	return op.output
}

// LocalGrads returns grad_input = grad_output * σ(x) * (1 - σ(x)).
func (op *SigmoidOp) LocalGrads() []LocalGrad {
	s := op.output
	return []LocalGrad{
		func(g float64) float64 { return g * s * (1 - s) },
	}
}
