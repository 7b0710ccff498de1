package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultSnakeYAML)
	if err != nil {
		t.Fatalf("Embedded default does not parse: %v", err)
	}
	want := DefaultSnakeConfig()
	if cfg.Board != want.Board || cfg.Timing != want.Timing || cfg.Food != want.Food ||
		cfg.Leaderboard != want.Leaderboard || cfg.Theme != want.Theme {
		t.Errorf("Embedded default %+v differs from %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config invalid: %v", err)
	}
}

func TestDefaultGrid(t *testing.T) {
	grid, err := DefaultSnakeConfig().Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if grid.TileCount() != 20 {
		t.Errorf("Expected 20 tiles, got %d", grid.TileCount())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  size: 100
  grid_unit: 10
  start:
    x: 2
    y: 3
timing:
  tick_interval: 250ms
theme: light
`)

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Board.Size != 100 || cfg.Board.GridUnit != 10 {
		t.Errorf("Unexpected board: %+v", cfg.Board)
	}
	if start, ok := cfg.StartCell(); !ok || start != (snake.Cell{X: 2, Y: 3}) {
		t.Errorf("Unexpected start: %v, %v", start, ok)
	}
	if cfg.Timing.TickInterval != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %s", cfg.Timing.TickInterval)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("Expected light theme, got %s", cfg.Theme)
	}
	// Omitted sections keep defaults
	if cfg.Food.MaxAttempts != snake.DefaultMaxFoodAttempts {
		t.Errorf("Expected default max attempts, got %d", cfg.Food.MaxAttempts)
	}
	if cfg.Leaderboard.DefaultName != "Anonymous" {
		t.Errorf("Expected default name, got %q", cfg.Leaderboard.DefaultName)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config")
	}

	path := writeConfig(t, "board: [not, a, map")
	if _, err := LoadSnake(path); err == nil {
		t.Error("Expected error for malformed explicit config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		want   string
	}{
		{"uneven grid", func(c *SnakeConfig) { c.Board.Size = 301 }, "board"},
		{"zero unit", func(c *SnakeConfig) { c.Board.GridUnit = 0 }, "board"},
		{"start outside", func(c *SnakeConfig) { c.Board.Start = &StartConfig{X: 20, Y: 0} }, "start"},
		{"zero interval", func(c *SnakeConfig) { c.Timing.TickInterval = 0 }, "tick_interval"},
		{"negative attempts", func(c *SnakeConfig) { c.Food.MaxAttempts = -1 }, "max_attempts"},
		{"unknown theme", func(c *SnakeConfig) { c.Theme = "neon" }, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateUnevenGridIsSentinel(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Board.Size = 299
	if err := cfg.Validate(); !errors.Is(err, snake.ErrUnevenGrid) {
		t.Errorf("Expected ErrUnevenGrid, got %v", err)
	}
}

func TestGameOptions(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Board.Size = 50
	cfg.Board.GridUnit = 10
	cfg.Board.Start = &StartConfig{X: 1, Y: 4}

	grid, err := cfg.Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	g := snake.New(grid, cfg.GameOptions()...)
	if head := g.State().Head(); head != (snake.Cell{X: 1, Y: 4}) {
		t.Errorf("Expected head at (1,4), got %v", head)
	}
}
