package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagClear bool
	flagStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 5 scores.

Examples:
  snake scores
  snake scores --stats
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Erase the leaderboard")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show statistics over all recorded games")
}

func runScores(_ *cobra.Command, _ []string) {
	a, err := newApp(io.Discard, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if a.store == nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open scores database %s\n", flagDBPath)
		return
	}

	if flagClear {
		if err := a.board.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing leaderboard: %v\n", err)
			return
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	fmt.Println("High Scores")
	fmt.Println()
	entries := a.board.Load()
	fmt.Println(tui.FormatScores(entries))
	if len(entries) == 0 {
		fmt.Println()
		fmt.Println("Play 'snake' to set the first high score!")
	}

	if !flagStats {
		return
	}

	stats, err := a.store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Games played: %d\n", stats.GamesCount)
	if stats.GamesCount == 0 {
		return
	}
	fmt.Printf("Best:         %d\n", stats.HighScore)
	fmt.Printf("Average:      %.1f\n", stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	recent, err := a.store.RecentGames(5)
	if err != nil || len(recent) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent games")
	fmt.Printf("  %-5s  %-6s  %-6s  %-10s  %s\n", "Score", "Length", "Ticks", "Ended by", "Played")
	for _, g := range recent {
		fmt.Printf("  %-5d  %-6d  %-6d  %-10s  %s\n",
			g.Score, g.Length, g.Ticks, g.Reason, g.PlayedAt.Local().Format("2006-01-02 15:04"))
	}
}
