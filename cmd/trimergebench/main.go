// Command trimergebench is the command-line entry point, the Go shape of
// the original project's main.cpp. All algorithmic logic lives in merge,
// internal/refmerge, internal/randgen, and internal/benchharness; this
// binary is a thin cobra driver over those packages.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "trimergebench: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd(logger.Sugar()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *zap.SugaredLogger) *cobra.Command {
	root := &cobra.Command{
		Use:           "trimergebench",
		Short:         "Benchmark and verify the trimerge in-place stable merge engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newBenchCmd(log))
	root.AddCommand(newVerifyCmd(log))
	return root
}
