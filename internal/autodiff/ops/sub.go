package ops

// SubOp represents a subtraction operation: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct {
	inputs [2]float64 // [a, b]
	output float64    // a - b
}

// NewSubOp creates a new SubOp and computes its output.
func NewSubOp(a, b float64) *SubOp {
	return &SubOp{
		inputs: [2]float64{a, b},
		output: a - b,
	}
}

// Name returns "sub".
func (op *SubOp) Name() string { return "sub" }

// Inputs returns [a, b].
func (op *SubOp) Inputs() []float64 {
	return []float64{op.inputs[0], op.inputs[1]}
}

// Output returns a - b.
func (op *SubOp) Output() float64 {
	return op.output
}

// LocalGrads returns the subtraction rules.
func (op *SubOp) LocalGrads() []LocalGrad {
	return []LocalGrad{identity, negate}
}
