package autodiff

// Backward computes ∂out/∂v for every value v reachable from out that
// requires grad, seeding ∂out/∂out = 1.
//
// Every reachable gradient is reset before accumulation, so calling Backward
// again on the same output yields the same gradients instead of doubling
// them. Leaves shared with another graph are reset as well.
//
// Backward fails before touching any state if out is nil (ErrNilOutput) or
// does not require grad (ErrOutputNotTracked).
func Backward(out *Value) error {
	if out == nil {
		return ErrNilOutput
	}
	if !out.requiresGrad {
		return ErrOutputNotTracked
	}

	newTape(out).backward()
	return nil
}

// Backward computes gradients of v with respect to its ancestors.
// See the package-level Backward.
func (v *Value) Backward() error {
	return Backward(v)
}

// TopoOrder returns the nodes reachable from out in the order the backward
// pass processes them: out first, and every node before all of its parents.
// Each node appears exactly once.
func TopoOrder(out *Value) []*Value {
	if out == nil {
		return nil
	}
	return newTape(out).reversed()
}

// ZeroGrad clears the gradient of every node reachable from out.
// Afterwards Grad reports ErrNoGradient until the next backward pass.
func ZeroGrad(out *Value) {
	if out == nil {
		return
	}
	newTape(out).clear()
}
