// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation for scalars.
//
// Operations on Values build a computation graph as they execute. Backward
// walks that graph from one output in reverse topological order and stores
// ∂output/∂v in every ancestor v that requires grad.
//
// Example:
//
//	import "github.com/born-ml/backprop/autodiff"
//
//	func main() {
//	    x := autodiff.Constant(1.0)
//	    y := autodiff.Constant(2.0)
//	    w := autodiff.Param(1.0)
//
//	    loss := w.Mul(x).Sub(y).Pow(2)
//	    if err := loss.Backward(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    grad, _ := w.Grad() // -2
//	}
package autodiff

import (
	"github.com/born-ml/backprop/internal/autodiff"
)

// Value is one scalar node of the computation graph.
type Value = autodiff.Value

// Errors reported by Backward and Value.Grad.
var (
	ErrNoGradient       = autodiff.ErrNoGradient
	ErrGradNotTracked   = autodiff.ErrGradNotTracked
	ErrNilOutput        = autodiff.ErrNilOutput
	ErrOutputNotTracked = autodiff.ErrOutputNotTracked
)

// NewValue creates a leaf Value.
func NewValue(data float64, requiresGrad bool) *Value {
	return autodiff.NewValue(data, requiresGrad)
}

// Constant creates a leaf that does not require grad.
func Constant(data float64) *Value { return autodiff.Constant(data) }

// Param creates a leaf that requires grad.
func Param(data float64) *Value { return autodiff.Param(data) }

// Add returns a + b.
func Add(a, b *Value) *Value { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Value) *Value { return autodiff.Sub(a, b) }

// Mul returns a * b.
func Mul(a, b *Value) *Value { return autodiff.Mul(a, b) }

// Div returns a / b.
func Div(a, b *Value) *Value { return autodiff.Div(a, b) }

// Neg returns -a.
func Neg(a *Value) *Value { return autodiff.Neg(a) }

// Pow returns a ** n for a constant exponent n.
func Pow(a *Value, n float64) *Value { return autodiff.Pow(a, n) }

// Exp returns e ** a.
func Exp(a *Value) *Value { return autodiff.Exp(a) }

// Log returns ln(a).
func Log(a *Value) *Value { return autodiff.Log(a) }

// Tanh returns tanh(a).
func Tanh(a *Value) *Value { return autodiff.Tanh(a) }

// Sigmoid returns 1 / (1 + exp(-a)).
func Sigmoid(a *Value) *Value { return autodiff.Sigmoid(a) }

// ReLU returns max(0, a).
func ReLU(a *Value) *Value { return autodiff.ReLU(a) }

// Sum returns the sum of values.
func Sum(values ...*Value) *Value { return autodiff.Sum(values...) }

// Backward computes gradients of out with respect to all its ancestors.
// Gradients reachable from out are reset first, so repeated calls do not accumulate.
func Backward(out *Value) error { return autodiff.Backward(out) }

// TopoOrder returns the nodes reachable from out in backward processing order.
func TopoOrder(out *Value) []*Value { return autodiff.TopoOrder(out) }

// ZeroGrad clears the gradient of every node reachable from out.
func ZeroGrad(out *Value) { autodiff.ZeroGrad(out) }
