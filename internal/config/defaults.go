package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size:     300,
			GridUnit: 15,
		},
		Timing: TimingConfig{
			TickInterval: 100 * time.Millisecond,
		},
		Food: FoodConfig{
			MaxAttempts: snake.DefaultMaxFoodAttempts,
		},
		Leaderboard: LeaderboardConfig{
			Key:         leaderboard.DefaultKey,
			DefaultName: leaderboard.DefaultName,
		},
		Theme: ThemeDark,
	}
}
