package autodiff

import "errors"

// Common errors.
var (
	// ErrNoGradient is returned by Value.Grad when no completed backward pass
	// has reached the node. It is distinct from a gradient of zero.
	ErrNoGradient = errors.New("no gradient available: backward has not reached this value")

	// ErrGradNotTracked is returned by Value.Grad for values created with
	// requiresGrad = false and for values computed only from such values.
	ErrGradNotTracked = errors.New("gradient not tracked for this value")

	// ErrNilOutput is returned by Backward when the output is nil.
	ErrNilOutput = errors.New("backward: nil output")

	// ErrOutputNotTracked is returned by Backward when the output does not
	// require grad, so no differentiable leaf can be reached from it.
	ErrOutputNotTracked = errors.New("backward: output does not require grad")
)
