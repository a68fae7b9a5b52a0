package autodiff

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/born-ml/backprop/internal/autodiff/ops"
)

// Value is one scalar node in the computation graph.
//
// A Value is either a leaf, created with NewValue, or the result of an
// operation on existing Values. Its forward data and its parent edges are
// fixed at construction; only the gradient slot changes, and only during
// Backward or ZeroGrad.
//
// Graph identity is pointer identity: two Values holding equal data are
// still distinct nodes.
//
// Example:
//
//	w := autodiff.Param(1.0)
//	x := autodiff.Constant(1.0)
//	y := autodiff.Constant(2.0)
//	loss := w.Mul(x).Sub(y).Pow(2)
//	_ = loss.Backward()
//	g, _ := w.Grad() // -2
type Value struct {
	id           uuid.UUID
	data         float64
	requiresGrad bool

	op      ops.Operation // nil for leaves
	parents []edge        // differentiable operands only

	grad    float64
	hasGrad bool
}

// edge ties a node to one parent and the rule that carries gradient to it.
type edge struct {
	parent *Value
	local  ops.LocalGrad
}

// NewValue creates a leaf Value.
//
// Any float64 is accepted, including NaN and ±Inf. A fresh leaf has no
// parents and no gradient.
func NewValue(data float64, requiresGrad bool) *Value {
	return &Value{
		id:           uuid.New(),
		data:         data,
		requiresGrad: requiresGrad,
	}
}

// Constant creates a leaf that does not require grad.
func Constant(data float64) *Value {
	return NewValue(data, false)
}

// Param creates a leaf that requires grad (a trainable parameter).
func Param(data float64) *Value {
	return NewValue(data, true)
}

// ID returns a unique identifier for display and export.
func (v *Value) ID() uuid.UUID {
	return v.id
}

// Data returns the forward value.
func (v *Value) Data() float64 {
	return v.data
}

// RequiresGrad reports whether gradients are tracked for this value.
func (v *Value) RequiresGrad() bool {
	return v.requiresGrad
}

// IsLeaf reports whether the value was created directly rather than by an operation.
func (v *Value) IsLeaf() bool {
	return v.op == nil
}

// Op returns the name of the operation that produced v, or "" for leaves.
func (v *Value) Op() string {
	if v.op == nil {
		return ""
	}
	return v.op.Name()
}

// Parents returns the differentiable operands v was computed from, in operand order.
// The returned slice is a copy.
func (v *Value) Parents() []*Value {
	parents := make([]*Value, len(v.parents))
	for i, e := range v.parents {
		parents[i] = e.parent
	}
	return parents
}

// Grad returns ∂output/∂v from the most recent backward pass that reached v.
//
// Returns ErrGradNotTracked if v does not require grad, and ErrNoGradient if
// no backward pass has reached v (or its gradient was cleared by ZeroGrad).
func (v *Value) Grad() (float64, error) {
	if !v.requiresGrad {
		return 0, ErrGradNotTracked
	}
	if !v.hasGrad {
		return 0, ErrNoGradient
	}
	return v.grad, nil
}

// HasGrad reports whether Grad would return a gradient.
func (v *Value) HasGrad() bool {
	return v.requiresGrad && v.hasGrad
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.HasGrad() {
		return fmt.Sprintf("Value(data=%g, grad=%g)", v.data, v.grad)
	}
	if v.requiresGrad {
		return fmt.Sprintf("Value(data=%g, requires_grad=true)", v.data)
	}
	return fmt.Sprintf("Value(data=%g)", v.data)
}

// accumulate adds g into the gradient slot, starting from 0 on first contribution.
func (v *Value) accumulate(g float64) {
	if !v.requiresGrad {
		return
	}
	if !v.hasGrad {
		v.grad = 0
		v.hasGrad = true
	}
	v.grad += g
}

// clearGrad resets the gradient slot to unset.
func (v *Value) clearGrad() {
	v.grad = 0
	v.hasGrad = false
}
