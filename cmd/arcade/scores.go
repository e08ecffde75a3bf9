package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-arcade/internal/registry"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show the best runs for a mode",
	Long: `Display the top runs for the given mode. Every run records its seed
and input timeline; replay one by ID with 'arcade run --replay <id>'.

Examples:
  arcade scores shooter
  arcade scores shooter_blitz --limit 25`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available modes)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", registry.Title(gameID))

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %-7s  %-20s  %-12s  %s\n", "Rank", "ID", "Score", "Level", "Ticks", "Seed", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-5s  %-7s  %-20s  %-12s  %s\n", "----", "--", "-----", "-----", "-----", "----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Printf("  %-4d  %-6d  %-8d  %-5d  %-7d  %-20d  %-12s  %s\n",
			i+1, r.ID, r.Score, r.Level, r.Ticks, r.Seed, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Top level: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.BestLevel)
	}
	return nil
}
