// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal UI loop, input mapping, rendering and SSH serving.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTickerID int64

func nextTickerID() int {
	return int(atomic.AddInt64(&lastTickerID, 1))
}

// TickMsg is sent to trigger a game simulation tick.
// Ticks carry the schedule they belong to so a restarted loop can drop
// messages from the old one.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Ticker is a repeating tick schedule. At most one chain per ticker is live:
// every Start or Stop moves to a new generation and ticks from earlier
// generations are rejected by Accept.
type Ticker struct {
	id       int
	tag      int
	interval time.Duration
	running  bool
}

// NewTicker creates a stopped ticker.
func NewTicker(interval time.Duration) Ticker {
	return Ticker{
		id:       nextTickerID(),
		interval: interval,
	}
}

// ID returns the ticker's unique ID.
func (t Ticker) ID() int {
	return t.id
}

// Interval returns the time between ticks.
func (t Ticker) Interval() time.Duration {
	return t.interval
}

// Running reports whether ticks are being scheduled.
func (t Ticker) Running() bool {
	return t.running
}

// Start begins a new generation. Ticks already in flight are invalidated.
func (t *Ticker) Start() {
	t.tag++
	t.running = true
}

// Stop ends the current generation.
func (t *Ticker) Stop() {
	t.tag++
	t.running = false
}

// Restart cancels the current schedule and starts a fresh one.
func (t *Ticker) Restart() {
	t.Start()
}

// Accept reports whether msg belongs to the live schedule.
func (t Ticker) Accept(msg TickMsg) bool {
	return t.running && msg.ID == t.id && msg.tag == t.tag
}

// Tick schedules the next tick of the current generation.
// Returns nil when the ticker is stopped.
func (t Ticker) Tick() tea.Cmd {
	if !t.running {
		return nil
	}
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{ID: id, Time: now, tag: tag}
	})
}
