package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
)

const shutdownTimeout = 10 * time.Second

// SSHServerConfig controls the snake SSH server.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath defaults to ~/.snake/host_key; wish generates the key
	// on first start.
	HostKeyPath string

	IdleTimeout  time.Duration
	TickInterval time.Duration // game speed for every connection
	Theme        Theme
}

// DefaultSSHServerConfig returns the listen address and timeouts used by
// `snake serve` when no flags are given.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:      ":23234",
		IdleTimeout:  30 * time.Minute,
		TickInterval: core.DefaultConfig().TickInterval,
		Theme:        DarkTheme(),
	}
}

// SessionFactory builds the game for a new connection. Every session it
// returns should report to the same leaderboard.
type SessionFactory func(user string) *session.Session

// SSHServer hands every SSH connection its own single-player game.
type SSHServer struct {
	config     SSHServerConfig
	server     *ssh.Server
	newSession SessionFactory
	logger     *log.Logger
	active     atomic.Int64
}

// NewSSHServer wires the wish middleware chain. A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, newSession SessionFactory, logger *log.Logger) (*SSHServer, error) {
	if newSession == nil {
		return nil, errors.New("ssh: session factory is required")
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	s := &SSHServer{config: cfg, newSession: newSession, logger: logger}

	// Middleware runs last to first: connections are logged, then
	// non-PTY clients are turned away before a program is started.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.programFor),
			activeterm.Middleware(),
			s.trackConnection,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}
	s.server = server
	return s, nil
}

func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("ssh: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".snake", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}
	return path, nil
}

// programFor starts a fresh game sized to the client's PTY.
func (s *SSHServer) programFor(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	cfg := core.RuntimeConfig{
		ScreenW:      pty.Window.Width,
		ScreenH:      pty.Window.Height,
		TickInterval: s.config.TickInterval,
	}
	model := NewModel(s.newSession(sess.User()), cfg,
		WithTheme(s.config.Theme),
		WithLogger(s.logger.With("user", sess.User())),
	)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

func (s *SSHServer) trackConnection(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		remote := sess.RemoteAddr().String()

		s.logger.Info("connected", "user", sess.User(), "remote", remote, "active", s.active.Add(1))
		next(sess)
		s.logger.Info("disconnected",
			"user", sess.User(),
			"remote", remote,
			"duration", time.Since(start).Round(time.Second),
			"active", s.active.Add(-1),
		)
	}
}

// Active reports how many connections are currently being served.
func (s *SSHServer) Active() int64 {
	return s.active.Load()
}

// Serve accepts connections until ctx is done or the listener fails.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		s.logger.Error("server stopped", "err", err)
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.active.Load())
	return s.Shutdown()
}

// ListenAndServe runs Serve until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Shutdown waits up to ten seconds for open games to end.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
