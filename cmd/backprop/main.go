// Package main provides the backprop CLI: a thin driver that builds the
// squared error example graph, runs the backward pass and reports gradients.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/backprop/internal/config"
	"github.com/born-ml/backprop/internal/logging"
)

const version = "v0.1.0-dev"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "backprop",
		Short: "Scalar reverse-mode automatic differentiation",
		Long: `backprop builds the graph of loss = (w*x - y)**2 from scalar leaves,
runs the backward pass and prints d(loss)/dw.

Leaf values come from --config (YAML) and can be overridden with --w, --x and --y.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "backprop.yaml", "Path to YAML config")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newVersionCmd(),
		newRunCmd(a),
		newGraphCmd(a),
		newCheckCmd(a),
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("path", a.configPath))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "backprop %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
