package ops

// NegOp represents negation: output = -a.
type NegOp struct {
	input  float64
	output float64
}

// NewNegOp creates a new NegOp.
func NewNegOp(a float64) *NegOp {
	return &NegOp{input: a, output: -a}
}

// Name returns "neg".
func (op *NegOp) Name() string { return "neg" }

// Inputs returns [a].
func (op *NegOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns -a.
func (op *NegOp) Output() float64 {
	return op.output
}

// LocalGrads returns grad_a = -outputGrad.
func (op *NegOp) LocalGrads() []LocalGrad {
	return []LocalGrad{negate}
}
