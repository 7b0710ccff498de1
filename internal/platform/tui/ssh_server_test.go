package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestNewSSHServerRequiresFactory(t *testing.T) {
	if _, err := NewSSHServer(DefaultSSHServerConfig(), nil, nil); err == nil {
		t.Fatal("Expected error without a session factory")
	}
}

func TestNewSSHServerCreatesKeyDir(t *testing.T) {
	grid, err := snake.NewSquareGrid(5)
	if err != nil {
		t.Fatalf("NewSquareGrid() failed: %v", err)
	}
	board := leaderboard.New(leaderboard.NewMemoryStore())
	factory := func(string) *session.Session { return session.New(grid, board) }

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, factory, log.New(os.Stderr))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("Host key directory missing: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.Active() != 0 {
		t.Errorf("Active() = %d before any connection", srv.Active())
	}
}
