package ops

import "math"

// LogOp represents the natural logarithm: y = log(x).
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//   - grad_input = grad_output / x
//
// log(0) = -Inf and log(x<0) = NaN are passed through unchanged.
type LogOp struct {
	input  float64
	output float64
}

// NewLogOp creates a new LogOp.
func NewLogOp(x float64) *LogOp {
	return &LogOp{
		input:  x,
		output: math.Log(x),
	}
}

// Name returns "log".
func (op *LogOp) Name() string { return "log" }

// Inputs returns [x].
func (op *LogOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns log(x).
func (op *LogOp) Output() float64 {
	return op.output
}

// LocalGrads returns grad_input = grad_output / x.
func (op *LogOp) LocalGrads() []LocalGrad {
	x := op.input
	return []LocalGrad{
		func(g float64) float64 { return g / x },
	}
}
