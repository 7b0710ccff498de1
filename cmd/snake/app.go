package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// app holds everything the commands share: config, storage, leaderboard.
type app struct {
	cfg     config.SnakeConfig
	grid    snake.Grid
	theme   tui.Theme
	store   *storage.Store // nil when the database is unavailable
	board   *leaderboard.Board
	logger  *log.Logger
	logFile *os.File
}

// newApp loads configuration and opens storage. Logs go to --log-file when
// set, otherwise to fallback.
func newApp(fallback io.Writer, prefix string) (*app, error) {
	a := &app{}
	if err := a.setupLogger(fallback, prefix); err != nil {
		return nil, err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		a.Close()
		return nil, err
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if err := cfg.Validate(); err != nil {
		a.Close()
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	// Validate guarantees the grid divides evenly
	grid, err := cfg.Grid()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.grid = grid
	a.theme, _ = tui.ThemeByName(cfg.Theme)

	var persistence leaderboard.Persistence
	store, err := storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open scores database, scores will not persist", "path", flagDBPath, "error", err)
		persistence = leaderboard.NewMemoryStore()
	} else {
		a.store = store
		persistence = store
	}

	a.board = leaderboard.New(persistence,
		leaderboard.WithKey(cfg.Leaderboard.Key),
		leaderboard.WithDefaultName(cfg.Leaderboard.DefaultName),
		leaderboard.WithLogger(a.logger),
	)
	return a, nil
}

func (a *app) setupLogger(fallback io.Writer, prefix string) error {
	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		out = f
	}

	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		a.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// newSession creates a game session on the shared board.
func (a *app) newSession(user string) *session.Session {
	opts := []session.Option{
		session.WithLogger(a.logger.With("player", user)),
		session.WithGameOptions(a.cfg.GameOptions()...),
	}
	if flagSeed != 0 {
		seed := flagSeed
		opts = append(opts, session.WithSeedSource(func() int64 { return seed }))
	}
	if a.store != nil {
		opts = append(opts, session.WithRecorder(a.store))
	}
	return session.New(a.grid, a.board, opts...)
}

// tickInterval returns the configured game speed.
func (a *app) tickInterval() time.Duration {
	return a.cfg.Timing.TickInterval
}

// Close releases storage and the log file.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
