// Package ops defines the local derivative rules used by automatic differentiation.
//
// Each operation captures its scalar inputs and output during the forward pass
// and provides one LocalGrad per input. A LocalGrad maps the upstream gradient
// flowing into the operation's output to the contribution owed to that input.
//
// Supported operations:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - SubOp: a - b (d/da = 1, d/db = -1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - DivOp: a / b (d/da = 1/b, d/db = -a/b²)
//   - NegOp: -a
//   - PowOp: a ** n for a constant exponent n (d/da = n * a**(n-1))
//   - ExpOp, LogOp, TanhOp, SigmoidOp, ReLUOp: unary elementary functions
//
// No operation validates its inputs. Singular points (division by zero,
// log of a non-positive number, negative powers of zero) produce Inf or NaN
// exactly as IEEE-754 arithmetic dictates.
package ops

// LocalGrad maps the upstream gradient dL/d(output) to dL/d(input) for one input.
type LocalGrad func(outputGrad float64) float64

// Operation represents a differentiable scalar operation in the computation graph.
// Inputs and output are captured eagerly when the operation is constructed.
type Operation interface {
	// Name returns the short operation name (e.g. "mul", "pow").
	Name() string

	// Inputs returns the input values captured at construction.
	Inputs() []float64

	// Output returns the forward result.
	Output() float64

	// LocalGrads returns one rule per input, in the same order as Inputs.
	//
	// Example for MulOp with inputs [a, b]:
	//   rules[0](g) = g * b
	//   rules[1](g) = g * a
	LocalGrads() []LocalGrad
}

// Backward applies every local rule of op to outputGrad.
// The result has one entry per input.
func Backward(op Operation, outputGrad float64) []float64 {
	rules := op.LocalGrads()
	grads := make([]float64, len(rules))
	for i, rule := range rules {
		grads[i] = rule(outputGrad)
	}
	return grads
}
