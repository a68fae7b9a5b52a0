// Package gradcheck verifies reverse-mode gradients against central finite differences.
//
// For a function f of n scalar inputs, the analytic gradient comes from a
// single autodiff backward pass at the point, and each numeric partial is
//
//	(f(x + ε·e_i) - f(x - ε·e_i)) / 2ε
//
// Every evaluation builds its own graph, so the n probes run in parallel.
package gradcheck

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/parallel"
)

// Common errors.
var (
	ErrNoInputs      = errors.New("gradcheck: no inputs")
	ErrInvalidConfig = errors.New("gradcheck: invalid config")
)

// Func builds a scalar output from its inputs. It must build a fresh graph on
// every call and must not share Values across calls.
type Func func(xs []*autodiff.Value) *autodiff.Value

// Config holds configuration for a gradient check.
type Config struct {
	Epsilon   float64         // Finite difference step (default: 1e-6)
	Tolerance float64         // Allowed error, relative to max(1, |analytic|, |numeric|) (default: 1e-4)
	Parallel  parallel.Config // Worker settings for the numeric probes
}

// DefaultConfig returns the default check settings.
func DefaultConfig() Config {
	return Config{
		Epsilon:   1e-6,
		Tolerance: 1e-4,
		Parallel:  parallel.DefaultConfig(),
	}
}

func (c Config) validate() error {
	if !(c.Epsilon > 0) {
		return fmt.Errorf("%w: epsilon must be positive, got %g", ErrInvalidConfig, c.Epsilon)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalidConfig, c.Tolerance)
	}
	return nil
}

// Result is the comparison for one input.
type Result struct {
	Index    int
	Analytic float64
	Numeric  float64
	AbsError float64
	OK       bool
}

// Report collects the results of a check.
type Report struct {
	Output  float64 // f at the point
	Results []Result
}

// Passed reports whether every input is within tolerance.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.OK {
			return false
		}
	}
	return true
}

// MaxError returns the largest absolute error over all inputs.
func (r *Report) MaxError() float64 {
	worst := 0.0
	for _, res := range r.Results {
		if res.AbsError > worst || math.IsNaN(res.AbsError) {
			worst = res.AbsError
		}
	}
	return worst
}

// Check compares the autodiff gradient of f at point with finite differences.
//
// Inputs that f never uses have an analytic gradient of zero.
func Check(ctx context.Context, f Func, point []float64, cfg Config) (*Report, error) {
	if len(point) == 0 {
		return nil, ErrNoInputs
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	analytic, output, err := analyticGradient(f, point)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(point))
	err = parallel.For(ctx, len(point), func(_ context.Context, i int) error {
		numeric, err := numericGradient(f, point, i, cfg.Epsilon)
		if err != nil {
			return err
		}
		diff := math.Abs(analytic[i] - numeric)
		scale := math.Max(1, math.Max(math.Abs(analytic[i]), math.Abs(numeric)))
		results[i] = Result{
			Index:    i,
			Analytic: analytic[i],
			Numeric:  numeric,
			AbsError: diff,
			OK:       diff <= cfg.Tolerance*scale,
		}
		return nil
	}, cfg.Parallel)
	if err != nil {
		return nil, fmt.Errorf("gradcheck: numeric probe: %w", err)
	}

	return &Report{Output: output, Results: results}, nil
}

// analyticGradient runs one backward pass with every input as a parameter.
func analyticGradient(f Func, point []float64) ([]float64, float64, error) {
	xs := make([]*autodiff.Value, len(point))
	for i, p := range point {
		xs[i] = autodiff.Param(p)
	}

	out := f(xs)
	if err := autodiff.Backward(out); err != nil {
		return nil, 0, fmt.Errorf("gradcheck: analytic: %w", err)
	}

	grads := make([]float64, len(xs))
	for i, x := range xs {
		g, err := x.Grad()
		switch {
		case errors.Is(err, autodiff.ErrNoGradient):
			grads[i] = 0
		case err != nil:
			return nil, 0, fmt.Errorf("gradcheck: input %d: %w", i, err)
		default:
			grads[i] = g
		}
	}
	return grads, out.Data(), nil
}

// numericGradient evaluates the central difference for input i.
func numericGradient(f Func, point []float64, i int, epsilon float64) (float64, error) {
	plus, err := evaluate(f, point, i, epsilon)
	if err != nil {
		return 0, err
	}
	minus, err := evaluate(f, point, i, -epsilon)
	if err != nil {
		return 0, err
	}
	return (plus - minus) / (2 * epsilon), nil
}

// evaluate computes f with input i shifted by delta, on constants only.
func evaluate(f Func, point []float64, i int, delta float64) (float64, error) {
	xs := make([]*autodiff.Value, len(point))
	for j, p := range point {
		if j == i {
			p += delta
		}
		xs[j] = autodiff.Constant(p)
	}
	out := f(xs)
	if out == nil {
		return 0, autodiff.ErrNilOutput
	}
	return out.Data(), nil
}
