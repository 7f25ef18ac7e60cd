package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/platform/tui"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a profile interactively",
	Long: `Open the profile picker. Select a profile to play it; leaving a
paused or finished game returns to the picker.

Menu controls:
  Up/Down, W/S, K/J  - Move cursor
  Enter/Space        - Play
  Tab                - Scoreboard
  Q/Ctrl+C           - Quit`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every profile: easy, normal, hard, fixed")
	menuCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a movement key counts as held")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyProfileFlags(registry.IDs()...); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("skyshooter")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.RunSession(tui.SessionConfig{
		Store:   store,
		Logger:  logger,
		Runtime: runtimeConfig(width, height),
		Player:  flagPlayer,
		Game: tui.GameOptions{
			Hold:          flagHold,
			ScreenshotDir: tui.DefaultScreenshotDir(),
		},
	})
}
