package ops

// AddOp represents an addition operation: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct {
	inputs [2]float64 // [a, b]
	output float64    // a + b
}

// NewAddOp creates a new AddOp and computes its output.
func NewAddOp(a, b float64) *AddOp {
	return &AddOp{
		inputs: [2]float64{a, b},
		output: a + b,
	}
}

// Name returns "add".
func (op *AddOp) Name() string { return "add" }

// Inputs returns [a, b].
func (op *AddOp) Inputs() []float64 {
	return []float64{op.inputs[0], op.inputs[1]}
}

// Output returns a + b.
func (op *AddOp) Output() float64 {
	return op.output
}

// LocalGrads returns the addition rules. Gradient flows unchanged to both inputs.
func (op *AddOp) LocalGrads() []LocalGrad {
	return []LocalGrad{identity, identity}
}
