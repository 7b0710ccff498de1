// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Theme names accepted by the renderer.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Timing      TimingConfig      `yaml:"timing"`
	Food        FoodConfig        `yaml:"food"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Theme       string            `yaml:"theme"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Size     int          `yaml:"size"`      // Board edge in abstract units
	GridUnit int          `yaml:"grid_unit"` // Units per tile; must divide Size
	Start    *StartConfig `yaml:"start"`     // Nil means the center tile
}

// StartConfig is the initial head cell.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Random draws before scanning free cells
}

// LeaderboardConfig defines where and how scores are stored.
type LeaderboardConfig struct {
	Key         string `yaml:"key"`
	DefaultName string `yaml:"default_name"`
}

// Grid builds the grid described by the board section.
func (c SnakeConfig) Grid() (snake.Grid, error) {
	return snake.NewGrid(c.Board.Size, c.Board.GridUnit)
}

// StartCell returns the configured start cell, if any.
func (c SnakeConfig) StartCell() (snake.Cell, bool) {
	if c.Board.Start == nil {
		return snake.Cell{}, false
	}
	return snake.Cell{X: c.Board.Start.X, Y: c.Board.Start.Y}, true
}

// GameOptions converts the config into game construction options.
func (c SnakeConfig) GameOptions() []snake.Option {
	var opts []snake.Option
	if start, ok := c.StartCell(); ok {
		opts = append(opts, snake.WithStart(start))
	}
	if c.Food.MaxAttempts > 0 {
		opts = append(opts, snake.WithMaxFoodAttempts(c.Food.MaxAttempts))
	}
	return opts
}

// Validate checks the config for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	var errs []error

	grid, err := c.Grid()
	if err != nil {
		errs = append(errs, fmt.Errorf("board: %w", err))
	} else if start, ok := c.StartCell(); ok && !grid.InBounds(start) {
		errs = append(errs, fmt.Errorf("board: start (%d,%d) outside %dx%d grid",
			start.X, start.Y, grid.TileCount(), grid.TileCount()))
	}

	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing: tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Food.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("food: max_attempts must not be negative, got %d", c.Food.MaxAttempts))
	}

	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		errs = append(errs, fmt.Errorf("theme: unknown theme %q", c.Theme))
	}

	return errors.Join(errs...)
}
