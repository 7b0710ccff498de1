package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// DefaultScreenshotDir is where Ctrl+S writes board snapshots.
const DefaultScreenshotDir = "~/.snake/screenshots"

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithTheme sets the color theme.
func WithTheme(t Theme) ModelOption {
	return func(m *Model) {
		m.theme = t
	}
}

// WithLogger sets the logger for front-end events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithScreenshotDir overrides where screenshots are written.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// drag tracks a mouse gesture between press and release.
type drag struct {
	x, y   int
	active bool
}

// Model is the Bubble Tea model for one player's game.
type Model struct {
	session       *session.Session
	ticker        Ticker
	keys          KeyMap
	help          help.Model
	nameInput     textinput.Model
	theme         Theme
	screen        *core.Screen
	config        core.RuntimeConfig
	logger        *log.Logger
	screenshotDir string
	drag          drag
	scores        []leaderboard.Entry
	notice        string
	quitting      bool
}

// NewModel creates a model driving sess. The tick loop starts with Init.
func NewModel(sess *session.Session, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	input := textinput.New()
	input.Placeholder = leaderboard.DefaultName
	input.CharLimit = leaderboard.MaxNameLen
	input.Width = leaderboard.MaxNameLen + 1
	input.Prompt = "Name: "

	w, h := BoardSize(sess.Snapshot().Grid)
	m := Model{
		session:       sess,
		ticker:        NewTicker(cfg.TickInterval),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		nameInput:     input,
		theme:         DarkTheme(),
		screen:        core.NewScreen(w, h),
		config:        cfg,
		logger:        log.New(io.Discard),
		screenshotDir: DefaultScreenshotDir,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	// Started here because Init has a value receiver
	m.ticker.Start()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.ticker.Tick()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		// Layout only; the board size is fixed by configuration
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	if m.nameInput.Focused() {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.AwaitingName() && m.nameInput.Focused() {
		return m.handleNameKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if m.session.Handle(action) {
		return m.restarted()
	}
	return m, nil
}

// handleNameKey feeds the name prompt. Enter submits, Esc keeps the default name.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Confirm):
		m.submitName(m.nameInput.Value())
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.submitName("")
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) submitName(name string) {
	rank, err := m.session.SubmitName(name)
	m.nameInput.Blur()
	m.nameInput.Reset()
	switch {
	case err != nil:
		m.notice = "Could not save score"
	case rank > 0:
		m.notice = fmt.Sprintf("You placed #%d!", rank)
	}
	m.refreshScores()
}

// handleMouse turns a left-button drag into a swipe gesture.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.drag = drag{x: msg.X, y: msg.Y, active: true}
		}
	case tea.MouseActionRelease:
		if m.drag.active {
			// Horizontal distance is measured in tiles, not columns
			dx := (msg.X - m.drag.x) / tileWidth
			dy := msg.Y - m.drag.y
			m.drag = drag{}
			m.session.Swipe(dx, dy)
		}
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticker.Accept(msg) {
		return m, nil
	}

	res := m.session.Tick()
	if res.Err != nil {
		m.logger.Debug("tick ended game", "error", res.Err)
	}
	if !res.Over {
		return m, m.ticker.Tick()
	}

	m.ticker.Stop()
	m.refreshScores()
	if m.session.AwaitingName() {
		return m, m.nameInput.Focus()
	}
	return m, nil
}

// restarted re-arms the tick loop after the session reset.
func (m Model) restarted() (tea.Model, tea.Cmd) {
	m.nameInput.Blur()
	m.nameInput.Reset()
	m.notice = ""
	m.scores = nil
	m.ticker.Restart()
	return m, m.ticker.Tick()
}

// quit files a pending score under the default name before exiting.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.session.AwaitingName() {
		//nolint:errcheck // Best-effort save, failures are logged by the session
		m.session.SubmitName("")
	}
	m.ticker.Stop()
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) refreshScores() {
	m.scores = m.session.Board().Load()
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	DrawBoard(m.screen, m.session.Snapshot())

	dir, err := storage.ExpandHome(m.screenshotDir)
	if err != nil {
		m.notice = "Screenshot failed"
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		m.notice = "Screenshot failed"
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	content := StatusLine(m.session.Snapshot()) + "\n" + m.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "error", err)
		m.notice = "Screenshot failed"
		return
	}
	m.notice = "Saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	DrawBoard(m.screen, snap)

	hudStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Accent)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)

	left := lipgloss.JoinVertical(lipgloss.Left,
		hudStyle.Render(StatusLine(snap)),
		RenderScreen(m.screen, m.theme),
	)

	body := left
	if snap.State.Status == snake.StatusOver {
		var side strings.Builder
		side.WriteString(renderScorePanel(m.scores, snap.LastRank, m.theme))
		side.WriteString("\n")
		switch {
		case snap.AwaitingName:
			side.WriteString("New high score!\n")
			side.WriteString(m.nameInput.View())
			side.WriteString("\n")
			side.WriteString(mutedStyle.Render("enter: save • esc: skip"))
		default:
			side.WriteString(mutedStyle.Render("enter: play again • q: quit"))
		}

		panel := side.String()
		boardW := lipgloss.Width(left)
		if m.config.ScreenW == 0 || m.config.ScreenW >= boardW+lipgloss.Width(panel)+2 {
			body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", panel)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, left, panel)
		}
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(mutedStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(sess *session.Session, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(sess, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swipe gestures
	)

	_, err := p.Run()
	return err
}
