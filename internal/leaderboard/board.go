// Package leaderboard keeps the ranked top-N list of finished games.
// The list is serialized as JSON and stored under a single key in any
// backend that implements Persistence.
package leaderboard

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// Capacity is the number of entries kept.
	Capacity = 5
	// MaxNameLen is the maximum name length in characters.
	MaxNameLen = 10
	// DefaultKey is the persistence key the list is stored under.
	DefaultKey = "snake.leaderboard"
	// DefaultName replaces empty names.
	DefaultName = "Anonymous"
	// DateLayout formats the calendar date of an entry.
	DateLayout = "2006-01-02"
)

// Entry is one leaderboard record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Persistence is the storage a Board reads and writes.
// Read reports ok=false when nothing is stored under key.
type Persistence interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// Option configures a Board.
type Option func(*Board)

// WithKey overrides the persistence key.
func WithKey(key string) Option {
	return func(b *Board) {
		if key != "" {
			b.key = key
		}
	}
}

// WithDefaultName overrides the placeholder used for empty names.
func WithDefaultName(name string) Option {
	return func(b *Board) {
		if name = clampName(name); name != "" {
			b.defaultName = name
		}
	}
}

// WithLogger sets the logger used for malformed data and write failures.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// Board is a size-bounded list sorted by descending score.
// It is safe for concurrent use; Insert is a serialized read-modify-write.
type Board struct {
	mu          sync.Mutex
	store       Persistence
	key         string
	defaultName string
	logger      *log.Logger
}

// New creates a board on top of store.
func New(store Persistence, opts ...Option) *Board {
	b := &Board{
		store:       store,
		key:         DefaultKey,
		defaultName: DefaultName,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Key returns the persistence key.
func (b *Board) Key() string {
	return b.key
}

// DefaultName returns the placeholder name for empty input.
func (b *Board) DefaultName() string {
	return b.defaultName
}

// Load returns the stored entries, best first.
// Missing, unreadable or malformed data yields an empty list.
func (b *Board) Load() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

func (b *Board) load() []Entry {
	data, ok, err := b.store.Read(b.key)
	if err != nil {
		b.logger.Warn("cannot read leaderboard", "key", b.key, "error", err)
		return []Entry{}
	}
	if !ok || len(data) == 0 {
		return []Entry{}
	}

	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		b.logger.Warn("malformed leaderboard, treating as empty", "key", b.key, "error", err)
		return []Entry{}
	}

	entries := make([]Entry, 0, len(raw))
	for _, e := range raw {
		if e.Score <= 0 {
			continue
		}
		e.Name = b.normalizeName(e.Name)
		entries = append(entries, e)
	}
	rank(entries)
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	return entries
}

// Qualifies reports whether score would make it onto the board.
func (b *Board) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	entries := b.Load()
	return len(entries) < Capacity || score > entries[len(entries)-1].Score
}

// Insert adds a result and persists the top entries.
// Non-positive scores are ignored. Returns the 1-based rank of the new
// entry, or 0 if it did not make the cut. A write failure is returned but
// leaves the stored list as it was.
func (b *Board) Insert(name string, score int, date string) (int, error) {
	if score <= 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.load()
	entry := Entry{Name: b.normalizeName(name), Score: score, Date: date}
	entries = append(entries, entry)
	rank(entries)

	position := 0
	// The new entry is the last one with its score after a stable sort.
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i] == entry {
			position = i + 1
			break
		}
	}
	if len(entries) > Capacity {
		entries = entries[:Capacity]
	}
	if position > Capacity {
		position = 0
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	if err := b.store.Write(b.key, data); err != nil {
		b.logger.Error("cannot write leaderboard", "key", b.key, "error", err)
		return 0, fmt.Errorf("leaderboard: cannot write: %w", err)
	}
	return position, nil
}

// Clear removes all entries.
func (b *Board) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.store.Write(b.key, []byte("[]")); err != nil {
		return fmt.Errorf("leaderboard: cannot clear: %w", err)
	}
	return nil
}

// normalizeName trims and clamps a name, substituting the default when empty.
func (b *Board) normalizeName(name string) string {
	if name = clampName(name); name == "" {
		return b.defaultName
	}
	return name
}

func clampName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLen {
		name = string([]rune(name)[:MaxNameLen])
	}
	return name
}

// rank sorts entries by descending score; equal scores keep insertion order.
func rank(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return b.Score - a.Score
	})
}
