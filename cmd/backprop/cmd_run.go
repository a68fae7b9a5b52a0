package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/config"
	"github.com/born-ml/backprop/internal/graph"
)

// example is the squared error graph: loss = (w*x - y)**2.
type example struct {
	w, x, y *autodiff.Value
	yHat    *autodiff.Value
	loss    *autodiff.Value
}

// buildExample runs the forward pass. Only w is trainable.
func buildExample(in config.InputsConfig) *example {
	e := &example{
		x: autodiff.Constant(in.X),
		y: autodiff.Constant(in.Y),
		w: autodiff.Param(in.W),
	}
	e.yHat = autodiff.Mul(e.w, e.x)
	e.loss = autodiff.Pow(autodiff.Sub(e.yHat, e.y), 2)
	return e
}

// inputFlags registers --w, --x and --y on cmd.
func inputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("w", 0, "Weight (requires grad)")
	cmd.Flags().Float64("x", 0, "Input")
	cmd.Flags().Float64("y", 0, "Target")
}

// resolveInputs applies explicitly set flags over the configured inputs.
func resolveInputs(cmd *cobra.Command, in config.InputsConfig) (config.InputsConfig, error) {
	for name, dst := range map[string]*float64{"w": &in.W, "x": &in.X, "y": &in.Y} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return in, err
		}
		*dst = v
	}
	return in, nil
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run forward and backward passes and print the loss and w.grad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := resolveInputs(cmd, a.cfg.Inputs)
			if err != nil {
				return err
			}

			e := buildExample(in)
			a.logger.Debug("forward pass",
				zap.Float64("w", in.W), zap.Float64("x", in.X), zap.Float64("y", in.Y),
				zap.Float64("loss", e.loss.Data()))

			if err := e.loss.Backward(); err != nil {
				return fmt.Errorf("backward: %w", err)
			}

			grad, err := e.w.Grad()
			if err != nil {
				return fmt.Errorf("read w.grad: %w", err)
			}
			stats := graph.Summarize(e.loss)
			a.logger.Debug("backward pass",
				zap.Int("nodes", stats.Nodes), zap.Int("edges", stats.Edges), zap.Float64("w.grad", grad))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "loss = %g\n", e.loss.Data())
			fmt.Fprintf(out, "w.grad = %g\n", grad)
			return nil
		},
	}
	inputFlags(cmd)
	return cmd
}

func newGraphCmd(a *app) *cobra.Command {
	var noBackward bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the example graph in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := resolveInputs(cmd, a.cfg.Inputs)
			if err != nil {
				return err
			}

			e := buildExample(in)
			if !noBackward {
				if err := e.loss.Backward(); err != nil {
					return fmt.Errorf("backward: %w", err)
				}
			}
			return graph.WriteDOT(cmd.OutOrStdout(), e.loss)
		},
	}
	inputFlags(cmd)
	cmd.Flags().BoolVar(&noBackward, "no-backward", false, "Render before the backward pass (no gradients)")
	return cmd
}
