package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/platform"
	"github.com/vovakirdan/skyshooter/internal/platform/window"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [profile]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given profile (default: classic).
The window reports real key release, so movement follows the keys exactly.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Close the window

Examples:
  skyshooter window
  skyshooter window ramped --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addProfileFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runWindow(_ *cobra.Command, args []string) error {
	profile := "classic"
	if len(args) == 1 {
		profile = args[0]
	}
	if !registry.Exists(profile) {
		return fmt.Errorf("unknown profile %q (run 'skyshooter list')", profile)
	}
	if flagScale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", flagScale)
	}
	if err := applyProfileFlags(profile); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("skyshooter-window")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(profile)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runner := platform.NewRunner(game, store, logger, runtimeConfig(0, 0), flagPlayer)
	return window.Run(runner, logger, window.Options{Scale: flagScale})
}
