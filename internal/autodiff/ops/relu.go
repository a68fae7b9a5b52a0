package ops

// ReLUOp represents the rectified linear unit: max(0, x).
//
// Backward pass:
//   - d(ReLU(x))/dx = 1 if x > 0, else 0
//
// The subgradient at x = 0 is taken as 0.
type ReLUOp struct {
	input  float64
	output float64
}

// NewReLUOp creates a new ReLUOp.
func NewReLUOp(x float64) *ReLUOp {
	out := 0.0
	if x > 0 {
		out = x
	}
	return &ReLUOp{
		input:  x,
		output: out,
	}
}

// Name returns "relu".
func (op *ReLUOp) Name() string { return "relu" }

// Inputs returns [x].
func (op *ReLUOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns max(0, x).
func (op *ReLUOp) Output() float64 {
	return op.output
}

// LocalGrads returns the ReLU gate.
func (op *ReLUOp) LocalGrads() []LocalGrad {
	if op.input > 0 {
		return []LocalGrad{identity}
	}
	return []LocalGrad{zero}
}
