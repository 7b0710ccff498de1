// Package session drives one player's game: it feeds buffered input into
// the state machine every tick and files finished games on the leaderboard
// and in the history.
package session

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrNoPendingScore is returned by SubmitName when no score awaits a name.
var ErrNoPendingScore = errors.New("session: no score awaiting a name")

// Recorder stores finished games. *storage.Store implements it.
type Recorder interface {
	SaveGame(rec storage.GameRecord) (string, error)
}

// Snapshot is a read-only view of the session after the last tick.
type Snapshot struct {
	State        snake.State
	Grid         snake.Grid
	Paused       bool
	AwaitingName bool
	// LastRank is the leaderboard position of the finished game, 0 if unplaced.
	LastRank int
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder enables game history.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for entry dates.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeedSource overrides how each new game is seeded.
func WithSeedSource(seed func() int64) Option {
	return func(s *Session) {
		if seed != nil {
			s.seed = seed
		}
	}
}

// WithGameOptions passes options through to the underlying game.
func WithGameOptions(opts ...snake.Option) Option {
	return func(s *Session) {
		s.gameOpts = append(s.gameOpts, opts...)
	}
}

// Session is not safe for concurrent use; the front end calls it from its
// single update loop.
type Session struct {
	game     *snake.Game
	gameOpts []snake.Option
	mapper   *input.Mapper
	board    *leaderboard.Board
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time
	seed     func() int64

	paused       bool
	pendingName  bool
	pendingScore int
	lastRank     int
}

// New creates a session on grid. A nil board gets an in-memory one.
func New(grid snake.Grid, board *leaderboard.Board, opts ...Option) *Session {
	if board == nil {
		board = leaderboard.New(leaderboard.NewMemoryStore())
	}
	s := &Session{
		mapper: input.NewMapper(),
		board:  board,
		logger: log.New(io.Discard),
		now:    time.Now,
		seed:   func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.game = snake.New(grid, s.gameOpts...)
	s.restart()
	return s
}

// Board returns the leaderboard the session reports to.
func (s *Session) Board() *leaderboard.Board {
	return s.board
}

// Reset starts a new game. A finished game still waiting for a name is
// filed under the default name first.
func (s *Session) Reset() {
	if s.pendingName {
		s.insert("", s.pendingScore)
	}
	s.restart()
}

func (s *Session) restart() {
	s.game.Reset(s.seed())
	s.mapper.Reset()
	s.paused = false
	s.pendingName = false
	s.pendingScore = 0
	s.lastRank = 0
}

// Tick advances the game by one step using the buffered direction.
func (s *Session) Tick() snake.StepResult {
	if s.paused || s.game.Status() == snake.StatusOver {
		return snake.StepResult{Over: s.game.Status() == snake.StatusOver}
	}

	res := s.game.Step(s.mapper.Take())
	if res.Over {
		s.finish()
	}
	return res
}

// finish runs once, on the transition to game over.
func (s *Session) finish() {
	st := s.game.State()
	s.logger.Info("game over",
		"score", st.Score,
		"length", st.Length(),
		"reason", st.Reason,
		"ticks", st.Tick,
	)

	if s.recorder != nil {
		_, err := s.recorder.SaveGame(storage.GameRecord{
			Score:    st.Score,
			Length:   st.Length(),
			Ticks:    st.Tick,
			Reason:   string(st.Reason),
			PlayedAt: s.now(),
		})
		if err != nil {
			s.logger.Warn("cannot record game", "error", err)
		}
	}

	if st.Score <= 0 {
		return
	}
	if s.board.Qualifies(st.Score) {
		s.pendingName = true
		s.pendingScore = st.Score
		return
	}
	s.insert("", st.Score)
}

func (s *Session) insert(name string, score int) (int, error) {
	rank, err := s.board.Insert(name, score, s.now().Format(leaderboard.DateLayout))
	if err != nil {
		s.logger.Error("cannot save score", "score", score, "error", err)
		return 0, err
	}
	s.lastRank = rank
	if rank > 0 {
		s.logger.Info("leaderboard entry", "rank", rank, "score", score)
	}
	return rank, nil
}

// Handle applies a player action. It reports whether a new game started.
func (s *Session) Handle(a core.Action) bool {
	over := s.game.Status() == snake.StatusOver

	switch {
	case a.IsDirectional():
		if !over && !s.paused {
			s.mapper.Action(a)
		}
	case a == core.ActionConfirm:
		if over {
			s.Reset()
			return true
		}
	case a == core.ActionRestart:
		s.Reset()
		return true
	case a == core.ActionPause:
		if !over {
			s.paused = !s.paused
		}
	}
	return false
}

// Swipe buffers a gesture while the game is running.
func (s *Session) Swipe(dx, dy int) bool {
	if s.paused || s.game.Status() == snake.StatusOver {
		return false
	}
	return s.mapper.Swipe(dx, dy)
}

// AwaitingName reports whether a finished game waits for the player's name.
func (s *Session) AwaitingName() bool {
	return s.pendingName
}

// SubmitName files the pending score. An empty name means the default.
// Returns the rank achieved, 0 if the entry did not make the board.
func (s *Session) SubmitName(name string) (int, error) {
	if !s.pendingName {
		return 0, ErrNoPendingScore
	}
	s.pendingName = false
	score := s.pendingScore
	s.pendingScore = 0
	return s.insert(name, score)
}

// Paused reports whether ticks are currently ignored.
func (s *Session) Paused() bool {
	return s.paused
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.game.State(),
		Grid:         s.game.Grid(),
		Paused:       s.paused,
		AwaitingName: s.pendingName,
		LastRank:     s.lastRank,
	}
}
