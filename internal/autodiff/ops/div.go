package ops

// DivOp represents a division operation: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
//
// Division by zero is not trapped and yields ±Inf or NaN.
type DivOp struct {
	inputs [2]float64 // [a, b]
	output float64    // a / b
}

// NewDivOp creates a new DivOp and computes its output.
func NewDivOp(a, b float64) *DivOp {
	return &DivOp{
		inputs: [2]float64{a, b},
		output: a / b,
	}
}

// Name returns "div".
func (op *DivOp) Name() string { return "div" }

// Inputs returns [a, b].
func (op *DivOp) Inputs() []float64 {
	return []float64{op.inputs[0], op.inputs[1]}
}

// Output returns a / b.
func (op *DivOp) Output() float64 {
	return op.output
}

// LocalGrads returns the division rules.
func (op *DivOp) LocalGrads() []LocalGrad {
	a, b := op.inputs[0], op.inputs[1]
	return []LocalGrad{
		func(g float64) float64 { return g / b },
		func(g float64) float64 { return -(g * a) / (b * b) },
	}
}
