// Package autodiff implements reverse-mode automatic differentiation for scalars.
//
// Architecture:
//   - Value: one node of the computation graph (data, requires_grad flag,
//     gradient slot, parent edges)
//   - Operations (Add, Mul, Pow, ...): compute the forward result eagerly and
//     record one local derivative rule per differentiable operand
//   - Backward: orders the graph reachable from an output topologically and
//     applies the chain rule in a single reverse sweep
//
// Usage:
//
//	x := autodiff.Constant(1.0)
//	y := autodiff.Constant(2.0)
//	w := autodiff.Param(1.0)
//
//	loss := autodiff.Pow(autodiff.Sub(autodiff.Mul(w, x), y), 2)
//	if err := autodiff.Backward(loss); err != nil {
//		return err
//	}
//	grad, _ := w.Grad() // d(loss)/dw = 2*(w*x - y)*x = -2
//
// The graph is not safe for concurrent use. Independent graphs may be built
// and differentiated on separate goroutines.
package autodiff

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/born-ml/backprop/internal/autodiff/ops"
)

// record creates the output node of op. The new node requires grad if any
// operand does, and gets one parent edge per operand that requires grad.
func record(op ops.Operation, operands ...*Value) *Value {
	out := &Value{
		id:   uuid.New(),
		data: op.Output(),
		op:   op,
	}

	rules := op.LocalGrads()
	for i, operand := range operands {
		if !operand.requiresGrad {
			continue
		}
		out.requiresGrad = true
		out.parents = append(out.parents, edge{parent: operand, local: rules[i]})
	}

	return out
}

// mustOperands panics if any operand is nil.
func mustOperands(name string, operands ...*Value) {
	for _, v := range operands {
		if v == nil {
			panic(fmt.Sprintf("autodiff: %s: nil operand", name))
		}
	}
}

// Add returns a + b.
func Add(a, b *Value) *Value {
	mustOperands("add", a, b)
	return record(ops.NewAddOp(a.data, b.data), a, b)
}

// Sub returns a - b.
func Sub(a, b *Value) *Value {
	mustOperands("sub", a, b)
	return record(ops.NewSubOp(a.data, b.data), a, b)
}

// Mul returns a * b.
func Mul(a, b *Value) *Value {
	mustOperands("mul", a, b)
	return record(ops.NewMulOp(a.data, b.data), a, b)
}

// Div returns a / b. Division by zero yields ±Inf or NaN.
func Div(a, b *Value) *Value {
	mustOperands("div", a, b)
	return record(ops.NewDivOp(a.data, b.data), a, b)
}

// Neg returns -a.
func Neg(a *Value) *Value {
	mustOperands("neg", a)
	return record(ops.NewNegOp(a.data), a)
}

// Pow returns a ** n. The exponent is a plain number and receives no gradient.
func Pow(a *Value, n float64) *Value {
	mustOperands("pow", a)
	return record(ops.NewPowOp(a.data, n), a)
}

// Exp returns e ** a.
func Exp(a *Value) *Value {
	mustOperands("exp", a)
	return record(ops.NewExpOp(a.data), a)
}

// Log returns the natural logarithm of a.
func Log(a *Value) *Value {
	mustOperands("log", a)
	return record(ops.NewLogOp(a.data), a)
}

// Tanh returns tanh(a).
func Tanh(a *Value) *Value {
	mustOperands("tanh", a)
	return record(ops.NewTanhOp(a.data), a)
}

// Sigmoid returns 1 / (1 + exp(-a)).
func Sigmoid(a *Value) *Value {
	mustOperands("sigmoid", a)
	return record(ops.NewSigmoidOp(a.data), a)
}

// ReLU returns max(0, a).
func ReLU(a *Value) *Value {
	mustOperands("relu", a)
	return record(ops.NewReLUOp(a.data), a)
}

// Sum returns the left fold of Add over values.
// Sum of no values is a zero constant.
func Sum(values ...*Value) *Value {
	mustOperands("sum", values...)
	if len(values) == 0 {
		return Constant(0)
	}
	total := values[0]
	for _, v := range values[1:] {
		total = Add(total, v)
	}
	return total
}

// Add returns v + other.
func (v *Value) Add(other *Value) *Value { return Add(v, other) }

// Sub returns v - other.
func (v *Value) Sub(other *Value) *Value { return Sub(v, other) }

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value { return Mul(v, other) }

// Div returns v / other.
func (v *Value) Div(other *Value) *Value { return Div(v, other) }

// Neg returns -v.
func (v *Value) Neg() *Value { return Neg(v) }

// Pow returns v ** n.
func (v *Value) Pow(n float64) *Value { return Pow(v, n) }

// Exp returns e ** v.
func (v *Value) Exp() *Value { return Exp(v) }

// Log returns ln(v).
func (v *Value) Log() *Value { return Log(v) }

// Tanh returns tanh(v).
func (v *Value) Tanh() *Value { return Tanh(v) }

// Sigmoid returns σ(v).
func (v *Value) Sigmoid() *Value { return Sigmoid(v) }

// ReLU returns max(0, v).
func (v *Value) ReLU() *Value { return ReLU(v) }
