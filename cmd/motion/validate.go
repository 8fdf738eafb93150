package main

import (
	"fmt"

	"github.com/phanxgames/motion"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <script.yaml>",
		Short: "Check a script for consistency",
		Long:  `Parses the script, checks node and animation references, and builds every node and animation without rendering.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames, err := runValidate(args[0])
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Script is valid (%d frames)\n", frames)
			return nil
		},
	}
}

// runValidate plays the script headless, so errors that only show when an
// animation begins are reported too.
func runValidate(path string) (int, error) {
	sc, err := loadScript(path)
	if err != nil {
		return 0, err
	}
	runner, err := motion.NewScriptRunner(sc, motion.SceneConfig{})
	if err != nil {
		return 0, err
	}
	if err := runner.Run(); err != nil {
		return 0, err
	}
	return runner.Scene().FrameIndex(), nil
}
