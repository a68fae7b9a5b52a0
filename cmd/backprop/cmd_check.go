package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/gradcheck"
)

// errCheckFailed is returned when a gradient is outside tolerance.
var errCheckFailed = errors.New("gradient check failed")

// squaredError is the example loss with every leaf as an input.
func squaredError(xs []*autodiff.Value) *autodiff.Value {
	w, x, y := xs[0], xs[1], xs[2]
	return w.Mul(x).Sub(y).Pow(2)
}

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare autodiff gradients of the example with finite differences",
		Long: `check treats w, x and y all as differentiable inputs, computes the
gradient of the loss by backpropagation and by central differences,
and fails if any partial derivative differs by more than the tolerance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := resolveInputs(cmd, a.cfg.Inputs)
			if err != nil {
				return err
			}

			cfg := gradcheck.DefaultConfig()
			cfg.Epsilon = a.cfg.GradCheck.Epsilon
			cfg.Tolerance = a.cfg.GradCheck.Tolerance
			if a.cfg.GradCheck.Workers > 0 {
				cfg.Parallel.NumWorkers = a.cfg.GradCheck.Workers
			}

			report, err := gradcheck.Check(cmd.Context(), squaredError, []float64{in.W, in.X, in.Y}, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := []string{"w", "x", "y"}
			for _, res := range report.Results {
				status := "ok"
				if !res.OK {
					status = "FAIL"
				}
				fmt.Fprintf(out, "%s: analytic=%g numeric=%g err=%.3g %s\n",
					names[res.Index], res.Analytic, res.Numeric, res.AbsError, status)
			}
			a.logger.Info("gradient check finished",
				zap.Bool("passed", report.Passed()), zap.Float64("max_error", report.MaxError()))

			if !report.Passed() {
				return errCheckFailed
			}
			return nil
		},
	}
	inputFlags(cmd)
	return cmd
}
