package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyshooter/internal/registry"
	"github.com/vovakirdan/skyshooter/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresAll   bool
	flagClearYes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [profile]",
	Short: "Show high scores",
	Long: `Display the top scores for a profile, or statistics for every
profile that has been played.

Examples:
  skyshooter scores classic
  skyshooter scores ramped --limit 20
  skyshooter scores tiered --all
  skyshooter scores classic --stats
  skyshooter scores --stats
  skyshooter scores clear classic --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear <profile>",
	Short: "Delete every score of a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregated statistics")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run, ignoring --limit")
	scoresClearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Confirm deletion")
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 && !flagScoresStats {
		return fmt.Errorf("name a profile or pass --stats")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printAllStats(store)
	}

	profile := args[0]
	if !registry.Exists(profile) {
		return fmt.Errorf("unknown profile %q (run 'skyshooter list')", profile)
	}
	if flagScoresStats {
		return printStats(store, profile)
	}
	return printTopScores(store, profile)
}

func printTopScores(store *storage.Store, profile string) error {
	game, err := registry.Create(profile)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if flagScoresAll {
		scores, err = store.AllScores(profile)
	} else {
		scores, err = store.TopScores(profile, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyshooter play %s' to set the first high score!\n", profile)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-6s  %s\n", "----", "------", "-----", "----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-16s  %-8d  %-6s  %s\n",
			i+1, player, entry.Score, formatSeconds(entry.DurationSecs), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store, profile string) error {
	stats, err := store.GetGameStats(profile)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics - %s\n", profile)
	fmt.Println()
	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}
	fmt.Printf("  Games played: %d\n", stats.GamesCount)
	fmt.Printf("  Best score:   %d\n", stats.HighScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total:        %d\n", stats.TotalScore)
	fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Profile", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "-------", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func runScoresClear(_ *cobra.Command, args []string) error {
	profile := args[0]
	if !registry.Exists(profile) {
		return fmt.Errorf("unknown profile %q (run 'skyshooter list')", profile)
	}
	if !flagClearYes {
		return fmt.Errorf("refusing to delete %s scores without --yes", profile)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(profile); err != nil {
		return err
	}
	fmt.Printf("Cleared %s scores.\n", profile)
	return nil
}

// formatSeconds renders a run length as m:ss.
func formatSeconds(secs int) string {
	if secs <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
