package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyshooter/internal/platform"
	"github.com/vovakirdan/skyshooter/internal/platform/tui"
	"github.com/vovakirdan/skyshooter/internal/registry"
)

var flagHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play <profile>",
	Short: "Play a profile in the terminal",
	Long: `Start playing the given profile in this terminal.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Back (while paused or after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Terminals do not report key release, so a movement key counts as held
for --hold after its last repeat.

Difficulty options:
  easy   - Fewer spawns, slower ramp
  normal - Profile as configured
  hard   - More spawns, faster ramp
  fixed  - No speed ramp

Examples:
  skyshooter play classic
  skyshooter play ramped --difficulty easy
  skyshooter play tiered --config ./my-tiered.toml
  skyshooter play classic --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addProfileFlags(playCmd)
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a movement key counts as held")
}

func runPlay(_ *cobra.Command, args []string) error {
	profile := args[0]
	if !registry.Exists(profile) {
		return fmt.Errorf("unknown profile %q (run 'skyshooter list')", profile)
	}
	if err := applyProfileFlags(profile); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("skyshooter")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	game, err := registry.Create(profile)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runner := platform.NewRunner(game, store, logger, runtimeConfig(width, height), flagPlayer)
	return tui.Run(runner, tui.GameOptions{
		Hold:          flagHold,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
