package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/defender/internal/games/defender"
	"github.com/vovakirdan/defender/internal/registry"
	"github.com/vovakirdan/defender/internal/storage"
)

var (
	flagScoresStats  bool
	flagScoresClear  bool
	flagScoresPilots bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode (default: defender).

With --pilots, list each pilot's best game from the database.
With --stats, show per-mode statistics from the database instead.
With --clear, delete every score of the mode from the database.

Examples:
  defender scores
  defender scores defender_scatter
  defender scores --store file
  defender scores --pilots
  defender scores --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-mode statistics (sqlite store)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the mode's scores (sqlite store)")
	scoresCmd.Flags().BoolVar(&flagScoresPilots, "pilots", false, "Best game of each pilot (sqlite store)")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defender.ModeGrid
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'defender list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresStats || flagScoresClear || flagScoresPilots {
		runStoreAdmin(gameID, len(args) == 1)
		return
	}

	sess, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	records := sess.services().Book(gameID).TopScores(10)
	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'defender play %s --name <pilot>' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Pilot", "Score", "Date")
	fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "----", "-----", "-----", "----")
	for i, r := range records {
		dateStr := "-"
		if !r.CreatedAt.IsZero() {
			dateStr = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, r.Name, r.Score, dateStr)
	}

	if sess.store != nil {
		if best, err := sess.store.HighScore(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
}

// runStoreAdmin serves --pilots, --stats and --clear, which only the
// database supports.
func runStoreAdmin(gameID string, modeGiven bool) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	if flagScoresPilots {
		bests, err := store.PilotBests(gameID, 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
		if len(bests) == 0 {
			fmt.Println("No scores recorded yet.")
			return
		}
		fmt.Printf("  %-4s  %-20s  %-10s  %s\n", "Rank", "Pilot", "Best", "Date")
		for i, e := range bests {
			fmt.Printf("  %-4d  %-20s  %-10d  %s\n", i+1, e.PlayerName, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	var stats map[string]*storage.GameStats
	if modeGiven {
		var one *storage.GameStats
		one, err = store.GameStats(gameID)
		if one != nil && one.GamesCount > 0 {
			stats = map[string]*storage.GameStats{gameID: one}
		}
	} else {
		stats, err = store.AllGameStats()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-6s  %-8s  %-10s  %-8s  %s\n", "Mode", "Games", "Pilots", "Best", "Average", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-18s  %-6d  %-8d  %-10d  %-8.1f  %s\n",
			id, s.GamesCount, s.Players, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
