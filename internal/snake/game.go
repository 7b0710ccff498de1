// Package snake implements the grid, movement rules, food placement and
// tick state machine of a single-player snake game. It has no knowledge of
// terminals, timers or storage.
package snake

import (
	"errors"
	"math/rand"
)

// Status represents whether a game is still in progress.
type Status int

const (
	StatusRunning Status = iota
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// EndReason explains why a game reached StatusOver.
type EndReason string

const (
	ReasonNone      EndReason = ""
	ReasonWall      EndReason = "wall"
	ReasonSelf      EndReason = "self"
	ReasonBoardFull EndReason = "board_full"
)

// StepResult describes what happened during one tick.
type StepResult struct {
	Moved  bool // Head advanced one cell
	Ate    bool // Head landed on food
	Over   bool // Game is over after this tick
	Reason EndReason
	Err    error // ErrBoardFull when food could not be placed
}

// Option configures a Game.
type Option func(*Game)

// WithStart sets the cell the snake spawns on. Out-of-bounds cells fall
// back to the grid center at Reset.
func WithStart(c Cell) Option {
	return func(g *Game) {
		g.start = c
		g.hasStart = true
	}
}

// WithMaxFoodAttempts caps random draws per food placement.
func WithMaxFoodAttempts(n int) Option {
	return func(g *Game) {
		g.maxAttempts = n
	}
}

// Game owns one State and advances it tick by tick.
type Game struct {
	grid        Grid
	start       Cell
	hasStart    bool
	maxAttempts int
	rng         *rand.Rand
	state       State
}

// New creates a game on the given grid. Call Reset before stepping.
func New(grid Grid, opts ...Option) *Game {
	g := &Game{
		grid:        grid,
		maxAttempts: DefaultMaxFoodAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(0)
	return g
}

// Grid returns the board the game is played on.
func (g *Game) Grid() Grid {
	return g.grid
}

// Reset discards the current state and starts a new game:
// single-cell snake on the start cell, no direction, score 0, one food.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))

	start := g.grid.Center()
	if g.hasStart && g.grid.InBounds(g.start) {
		start = g.start
	}

	g.state = State{
		Snake:  []Cell{start},
		Status: StatusRunning,
	}

	food, err := PlaceFood(g.grid, g.state.Snake, g.rng, g.maxAttempts)
	if err != nil {
		// 1x1 board: nothing left to eat
		g.end(ReasonBoardFull)
		return
	}
	g.state.Food = food
	g.state.HasFood = true
}

// Step advances the game by one tick in direction dir.
// A None direction leaves the snake in place. Steps after game over are no-ops.
func (g *Game) Step(dir Direction) StepResult {
	if g.state.Status == StatusOver {
		return StepResult{Over: true, Reason: g.state.Reason}
	}

	g.state.Tick++

	if dir.IsZero() || !dir.Valid() {
		return StepResult{}
	}

	head := g.state.Head()
	next := head.Add(dir)

	if !g.grid.InBounds(next) {
		g.end(ReasonWall)
		return StepResult{Over: true, Reason: ReasonWall}
	}

	// Checked against the pre-move body: the tail cell counts even though
	// it would vacate this tick.
	for _, seg := range g.state.Snake {
		if seg == next {
			g.end(ReasonSelf)
			return StepResult{Over: true, Reason: ReasonSelf}
		}
	}

	g.state.Direction = dir
	g.state.Snake = append([]Cell{next}, g.state.Snake...)

	if !g.state.HasFood || next != g.state.Food {
		g.state.Snake = g.state.Snake[:len(g.state.Snake)-1]
		return StepResult{Moved: true}
	}

	g.state.Score++
	food, err := PlaceFood(g.grid, g.state.Snake, g.rng, g.maxAttempts)
	if err != nil {
		g.state.HasFood = false
		g.end(ReasonBoardFull)
		return StepResult{Moved: true, Ate: true, Over: true, Reason: ReasonBoardFull, Err: err}
	}
	g.state.Food = food
	return StepResult{Moved: true, Ate: true}
}

// end transitions to StatusOver. The snake is left untouched.
func (g *Game) end(reason EndReason) {
	g.state.Status = StatusOver
	g.state.Reason = reason
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state.Clone()
}

// Status returns the current game status.
func (g *Game) Status() Status {
	return g.state.Status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// ErrInvalidState is returned by Restore for states that break the board rules.
var ErrInvalidState = errors.New("snake: invalid state")

// Restore replaces the current state, e.g. to resume a saved position.
// The state must be on the board, duplicate-free, and keep food off the snake.
func (g *Game) Restore(s State) error {
	if len(s.Snake) == 0 {
		return ErrInvalidState
	}
	seen := make(map[Cell]struct{}, len(s.Snake))
	for _, c := range s.Snake {
		if !g.grid.InBounds(c) {
			return ErrInvalidState
		}
		if _, dup := seen[c]; dup {
			return ErrInvalidState
		}
		seen[c] = struct{}{}
	}
	if s.HasFood {
		if !g.grid.InBounds(s.Food) {
			return ErrInvalidState
		}
		if _, onSnake := seen[s.Food]; onSnake {
			return ErrInvalidState
		}
	}
	if s.Score < 0 || !s.Direction.Valid() {
		return ErrInvalidState
	}
	g.state = s.Clone()
	return nil
}
