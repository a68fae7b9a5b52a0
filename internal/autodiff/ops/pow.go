package ops

import "math"

// PowOp represents raising to a constant power: output = a ** n.
//
// The exponent is a plain number and receives no gradient.
//
// Backward pass:
//   - d(a**n)/da = n * a**(n-1), so grad_a = outputGrad * n * a**(n-1)
//
// Non-integer powers of negative bases and negative powers of zero follow
// math.Pow and yield NaN or ±Inf.
type PowOp struct {
	input    float64 // a
	exponent float64 // n
	output   float64 // a ** n
}

// NewPowOp creates a new PowOp.
func NewPowOp(a, n float64) *PowOp {
	return &PowOp{
		input:    a,
		exponent: n,
		output:   math.Pow(a, n),
	}
}

// Name returns "pow".
func (op *PowOp) Name() string { return "pow" }

// Inputs returns [a]. The exponent is not an input.
func (op *PowOp) Inputs() []float64 {
	return []float64{op.input}
}

// Output returns a ** n.
func (op *PowOp) Output() float64 {
	return op.output
}

// Exponent returns n.
func (op *PowOp) Exponent() float64 {
	return op.exponent
}

// LocalGrads returns the power rule.
func (op *PowOp) LocalGrads() []LocalGrad {
	a, n := op.input, op.exponent
	return []LocalGrad{
		func(g float64) float64 { return g * n * math.Pow(a, n-1) },
	}
}
