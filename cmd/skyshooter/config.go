package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config <profile>",
	Short: "Print the effective config of a profile",
	Long: `Print the config a profile would run with, as YAML. The output can be
saved to ~/.skyshooter/configs/<profile>.yaml and edited to override the
profile, or passed to --config.

Examples:
  skyshooter config classic
  skyshooter config ramped --difficulty hard
  skyshooter config tiered --defaults > tiered.yaml
  skyshooter config classic --config ./my-classic.toml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Profiles(),
	RunE:      runConfig,
}

func init() {
	addProfileFlags(configCmd)
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults, ignoring overrides")
}

func runConfig(_ *cobra.Command, args []string) error {
	profile := args[0]

	if flagConfigDefaults {
		data := config.GetDefaultYAML(profile)
		if data == nil {
			return fmt.Errorf("unknown profile %q (want one of %v)", profile, config.Profiles())
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(profile, flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	dm := config.NewDifficultyManager(cfg)
	base := dm.Base()
	ramp := "off"
	if dm.IsEnabled() {
		ramp = fmt.Sprintf("after %gs", cfg.Difficulty.GraceSeconds)
	}
	fmt.Printf("# %s: enemy speed %g, projectile speed %g, ramp %s\n", profile, base.Enemy, base.Projectile, ramp)

	data, err := config.ToYAML(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
