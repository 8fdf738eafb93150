package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "motion",
		Short:         "Motion plays YAML animation scripts",
		Long:          `Motion renders YAML scene scripts to PNG frame sequences and checks them for errors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newRenderCmd(), newValidateCmd(), newInspectCmd(), newRatesCmd())
	return root
}

// loadScript reads and parses a script file.
func loadScript(path string) (*motion.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	sc, err := motion.ParseScript(data)
	if err != nil {
		return nil, err
	}
	slog.Debug("Script loaded", "path", path, "nodes", len(sc.Nodes), "steps", len(sc.Steps))
	return sc, nil
}
