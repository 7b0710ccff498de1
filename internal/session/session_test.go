package session

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/leaderboard"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

type fakeRecorder struct {
	records []storage.GameRecord
	err     error
}

func (f *fakeRecorder) SaveGame(rec storage.GameRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.records = append(f.records, rec)
	return "id", nil
}

func newTestSession(t *testing.T, board *leaderboard.Board, opts ...Option) *Session {
	t.Helper()
	grid, err := snake.NewSquareGrid(10)
	if err != nil {
		t.Fatalf("NewSquareGrid() failed: %v", err)
	}
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithSeedSource(func() int64 { return 7 }),
	}, opts...)
	return New(grid, board, opts...)
}

// placeBeforeWall puts a one-cell snake at (8,5) with food at (9,5), so
// moving right scores one point and the next tick hits the wall.
func placeBeforeWall(t *testing.T, s *Session) {
	t.Helper()
	err := s.game.Restore(snake.State{
		Snake:   []snake.Cell{{X: 8, Y: 5}},
		Food:    snake.Cell{X: 9, Y: 5},
		HasFood: true,
		Status:  snake.StatusRunning,
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
}

// scoreAndCrash plays the placeBeforeWall line to game over with one point.
func scoreAndCrash(t *testing.T, s *Session) {
	t.Helper()
	placeBeforeWall(t, s)
	s.Handle(core.ActionRight)
	if res := s.Tick(); !res.Ate {
		t.Fatalf("Expected to eat, got %+v", res)
	}
	if res := s.Tick(); !res.Over || res.Reason != snake.ReasonWall {
		t.Fatalf("Expected wall collision, got %+v", res)
	}
}

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession(t, nil)
	before := s.Snapshot().State.Head()

	for i := 0; i < 5; i++ {
		if res := s.Tick(); res.Moved || res.Over {
			t.Fatalf("Idle tick moved the snake: %+v", res)
		}
	}
	if head := s.Snapshot().State.Head(); head != before {
		t.Errorf("Head moved without input: %v -> %v", before, head)
	}
}

func TestTickAppliesBufferedDirection(t *testing.T) {
	s := newTestSession(t, nil)
	start := s.Snapshot().State.Head()

	s.Handle(core.ActionDown)
	s.Tick()

	if head := s.Snapshot().State.Head(); head != (snake.Cell{X: start.X, Y: start.Y + 1}) {
		t.Errorf("Expected head below %v, got %v", start, head)
	}
	// Reversal is rejected against the applied direction
	s.Handle(core.ActionUp)
	s.Tick()
	if head := s.Snapshot().State.Head(); head.Y != start.Y+2 {
		t.Errorf("Reversal should be ignored, head at %v", head)
	}
}

func TestQualifyingScoreAwaitsName(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryStore())
	s := newTestSession(t, board)
	scoreAndCrash(t, s)

	if !s.AwaitingName() {
		t.Fatal("Expected name prompt after a qualifying score")
	}
	if len(board.Load()) != 0 {
		t.Error("Score should not be stored before the name is submitted")
	}

	rank, err := s.SubmitName("ada")
	if err != nil {
		t.Fatalf("SubmitName() failed: %v", err)
	}
	if rank != 1 {
		t.Errorf("Expected rank 1, got %d", rank)
	}

	entries := board.Load()
	if len(entries) != 1 || entries[0].Name != "ada" || entries[0].Score != 1 {
		t.Fatalf("Unexpected entries: %+v", entries)
	}
	if entries[0].Date != "2026-10-14" {
		t.Errorf("Expected clock date, got %s", entries[0].Date)
	}
	if s.AwaitingName() {
		t.Error("Prompt should close after submit")
	}
	if s.Snapshot().LastRank != 1 {
		t.Errorf("Expected last rank 1, got %d", s.Snapshot().LastRank)
	}
}

func TestSubmitWithoutPendingScore(t *testing.T) {
	s := newTestSession(t, nil)
	if _, err := s.SubmitName("x"); !errors.Is(err, ErrNoPendingScore) {
		t.Errorf("Expected ErrNoPendingScore, got %v", err)
	}
}

func TestEmptyNameUsesDefault(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryStore())
	s := newTestSession(t, board)
	scoreAndCrash(t, s)

	s.SubmitName("")
	if got := board.Load()[0].Name; got != leaderboard.DefaultName {
		t.Errorf("Expected default name, got %q", got)
	}
}

func TestResetFlushesPendingScore(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryStore())
	s := newTestSession(t, board)
	scoreAndCrash(t, s)

	if !s.Handle(core.ActionConfirm) {
		t.Fatal("Confirm after game over should start a new game")
	}
	entries := board.Load()
	if len(entries) != 1 || entries[0].Name != leaderboard.DefaultName {
		t.Errorf("Expected flushed default entry, got %+v", entries)
	}
	if s.AwaitingName() {
		t.Error("Prompt should be closed after reset")
	}
	if st := s.Snapshot().State; st.Status != snake.StatusRunning || st.Score != 0 || st.Length() != 1 {
		t.Errorf("Expected fresh game, got %+v", st)
	}
}

func TestNonQualifyingScoreInsertedImmediately(t *testing.T) {
	store := leaderboard.NewMemoryStore()
	board := leaderboard.New(store)
	for _, score := range []int{10, 9, 8, 7, 6} {
		board.Insert("p", score, "2026-01-01")
	}
	before, _, _ := store.Read(leaderboard.DefaultKey)

	s := newTestSession(t, board)
	scoreAndCrash(t, s)

	if s.AwaitingName() {
		t.Error("A score below the board should not prompt for a name")
	}
	// Insert ran and the list is unchanged since the score was cut
	after, _, _ := store.Read(leaderboard.DefaultKey)
	if string(before) != string(after) {
		t.Errorf("Stored list changed: %s -> %s", before, after)
	}
	if s.Snapshot().LastRank != 0 {
		t.Errorf("Expected no rank, got %d", s.Snapshot().LastRank)
	}
}

func TestZeroScoreNotStored(t *testing.T) {
	store := leaderboard.NewMemoryStore()
	s := newTestSession(t, leaderboard.New(store))

	s.Handle(core.ActionRight)
	for i := 0; i < 20; i++ {
		if s.Tick().Over {
			break
		}
	}
	if s.Snapshot().State.Status != snake.StatusOver {
		t.Fatal("Expected the snake to reach the wall")
	}
	if st := s.Snapshot().State; st.Score == 0 {
		if s.AwaitingName() {
			t.Error("Zero score should not prompt")
		}
		if _, ok, _ := store.Read(leaderboard.DefaultKey); ok {
			t.Error("Zero score should not be written")
		}
	}
}

func TestRecorderReceivesFinishedGame(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(t, nil, WithRecorder(rec))
	scoreAndCrash(t, s)

	if len(rec.records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(rec.records))
	}
	got := rec.records[0]
	if got.Score != 1 || got.Length != 2 || got.Reason != string(snake.ReasonWall) {
		t.Errorf("Unexpected record: %+v", got)
	}
	if !got.PlayedAt.Equal(fixedNow) {
		t.Errorf("Expected clock time, got %v", got.PlayedAt)
	}

	// Further ticks after game over do not record again
	s.Tick()
	if len(rec.records) != 1 {
		t.Errorf("Game recorded twice")
	}
}

func TestRecorderFailureDoesNotStopGame(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db locked")}
	board := leaderboard.New(leaderboard.NewMemoryStore())
	s := newTestSession(t, board, WithRecorder(rec))
	scoreAndCrash(t, s)

	if !s.AwaitingName() {
		t.Error("Leaderboard flow should continue after a history failure")
	}
}

func TestPauseFreezesGame(t *testing.T) {
	s := newTestSession(t, nil)
	s.Handle(core.ActionRight)
	s.Tick()
	head := s.Snapshot().State.Head()

	s.Handle(core.ActionPause)
	if !s.Paused() {
		t.Fatal("Expected paused")
	}
	s.Handle(core.ActionDown)
	s.Tick()
	s.Tick()
	if got := s.Snapshot().State.Head(); got != head {
		t.Errorf("Snake moved while paused: %v -> %v", head, got)
	}
	if s.Swipe(0, 30) {
		t.Error("Swipe should be ignored while paused")
	}

	s.Handle(core.ActionPause)
	s.Tick()
	if got := s.Snapshot().State.Head(); got.X != head.X+1 {
		t.Errorf("Expected snake to continue right after unpause, got %v", got)
	}
}

func TestConfirmIgnoredWhileRunning(t *testing.T) {
	s := newTestSession(t, nil)
	s.Handle(core.ActionRight)
	s.Tick()

	if s.Handle(core.ActionConfirm) {
		t.Error("Confirm should not reset a running game")
	}
	if s.Snapshot().State.Tick != 1 {
		t.Error("Game state changed on confirm")
	}
}

func TestRestartAlwaysResets(t *testing.T) {
	s := newTestSession(t, nil)
	s.Handle(core.ActionRight)
	s.Tick()
	s.Tick()

	if !s.Handle(core.ActionRestart) {
		t.Fatal("Restart should reset a running game")
	}
	st := s.Snapshot().State
	if st.Tick != 0 || st.Length() != 1 || !st.Direction.IsZero() {
		t.Errorf("Expected fresh state, got %+v", st)
	}
	// The mapper was cleared too
	if res := s.Tick(); res.Moved {
		t.Error("Snake should be idle after restart")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := newTestSession(t, nil)
	s.Reset()
	first := s.Snapshot()
	s.Reset()
	second := s.Snapshot()

	if first.State.Head() != second.State.Head() || first.State.Food != second.State.Food {
		t.Errorf("Reset with the same seed differs: %+v vs %+v", first.State, second.State)
	}
}

func TestDirectionsIgnoredAfterGameOver(t *testing.T) {
	s := newTestSession(t, nil)
	scoreAndCrash(t, s)

	s.Handle(core.ActionUp)
	if s.Swipe(0, -40) {
		t.Error("Swipe accepted after game over")
	}
	if res := s.Tick(); !res.Over || res.Moved {
		t.Errorf("Expected over no-op, got %+v", res)
	}
}

func TestSharedBoardAcrossSessions(t *testing.T) {
	board := leaderboard.New(leaderboard.NewMemoryStore())
	a := newTestSession(t, board)
	b := newTestSession(t, board)

	scoreAndCrash(t, a)
	a.SubmitName("a")
	scoreAndCrash(t, b)
	b.SubmitName("b")

	entries := board.Load()
	if len(entries) != 2 || entries[0].Name != "a" || entries[1].Name != "b" {
		t.Errorf("Unexpected shared board: %+v", entries)
	}
}
