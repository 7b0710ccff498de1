// snake is a terminal snake game with a persistent top-5 leaderboard.
//
// Usage:
//
//	snake                    - Play locally (same as "snake play")
//	snake play               - Play locally
//	snake scores             - Show the leaderboard
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Set database path (default: ~/.snake/snake.db)
//	--seed <value>   - Set RNG seed for reproducible games
//	--theme <name>   - dark or light
//	--log-file <p>   - Write logs to a file
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagSeed    int64
	flagTheme   string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal version of the classic game. Steer the snake,
eat the food, and avoid the walls and your own tail.

Available commands:
  play     - Play a game (default)
  scores   - View the top 5 leaderboard
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --theme light
  snake scores --stats
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: dark or light (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
