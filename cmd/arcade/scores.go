package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagScoresMap   string
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores and best times for a game",
	Long: `Display the top high scores for the specified game, followed by the
fastest won runs and the win/loss record.

Examples:
  arcade scores isocoins
  arcade scores isocoins --map maze
  arcade scores colorwipe --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMap, "map", "", "Only list best times on this map")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows per table")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	runs, err := store.BestTimes(gameID, flagScoresMap, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving best times: %w", err)
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()
	printScores(scores, gameID)

	if len(runs) > 0 || stats.Wins+stats.Losses > 0 {
		fmt.Println()
		printBestTimes(runs)
		fmt.Println()
		fmt.Printf("Won %d, lost %d", stats.Wins, stats.Losses)
		if stats.BestTime > 0 {
			fmt.Printf(", best %.1fs", stats.BestTime.Seconds())
		}
		fmt.Println()
	}
	return nil
}

func printScores(scores []storage.ScoreEntry, gameID string) {
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printBestTimes(runs []storage.RunRecord) {
	fmt.Println("Best Times")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No won runs yet.")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %s\n", "Rank", "Map", "Time", "Coins", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-6s  %s\n", "----", "---", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-14s  %-8s  %-6s  %s\n",
			i+1, r.Variant,
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
			fmt.Sprintf("%d/%d", r.Collected, r.Total),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
