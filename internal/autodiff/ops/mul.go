package ops

// MulOp represents a multiplication operation: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	inputs [2]float64 // [a, b]
	output float64    // a * b
}

// NewMulOp creates a new MulOp and computes its output.
func NewMulOp(a, b float64) *MulOp {
	return &MulOp{
		inputs: [2]float64{a, b},
		output: a * b,
	}
}

// Name returns "mul".
func (op *MulOp) Name() string { return "mul" }

// Inputs returns [a, b].
func (op *MulOp) Inputs() []float64 {
	return []float64{op.inputs[0], op.inputs[1]}
}

// Output returns a * b.
func (op *MulOp) Output() float64 {
	return op.output
}

// LocalGrads returns the multiplication rules.
func (op *MulOp) LocalGrads() []LocalGrad {
	a, b := op.inputs[0], op.inputs[1]
	return []LocalGrad{
		func(g float64) float64 { return g * b },
		func(g float64) float64 { return g * a },
	}
}
