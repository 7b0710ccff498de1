// Package input turns directional key presses and swipe gestures into the
// single pending direction consumed by the game once per tick.
package input

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Mapper holds the pending direction between ticks.
//
// Requests are checked against the direction applied on the last tick, not
// against the last request, so two quick presses cannot turn the snake back
// into its own neck.
type Mapper struct {
	pending snake.Direction
	applied snake.Direction
}

// NewMapper creates a mapper with no direction.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Reset clears both pending and applied directions.
func (m *Mapper) Reset() {
	m.pending = snake.None
	m.applied = snake.None
}

// Request sets the pending direction unless it reverses the applied one.
// Returns true if the pending direction changed.
func (m *Mapper) Request(d snake.Direction) bool {
	if d.IsZero() || !d.Valid() {
		return false
	}
	if d.IsOpposite(m.applied) {
		return false
	}
	if d == m.pending {
		return false
	}
	m.pending = d
	return true
}

// Action maps a directional action to a request.
// Non-directional actions are ignored.
func (m *Mapper) Action(a core.Action) bool {
	d, ok := DirectionFor(a)
	if !ok {
		return false
	}
	return m.Request(d)
}

// Swipe classifies a gesture by its dominant axis and requests the result.
// A gesture with no displacement produces no change.
func (m *Mapper) Swipe(dx, dy int) bool {
	d, ok := ClassifySwipe(dx, dy)
	if !ok {
		return false
	}
	return m.Request(d)
}

// Take returns the pending direction for this tick and records it as applied.
func (m *Mapper) Take() snake.Direction {
	m.applied = m.pending
	return m.pending
}

// Pending returns the direction the next tick will apply.
func (m *Mapper) Pending() snake.Direction {
	return m.pending
}

// Applied returns the direction used on the last tick.
func (m *Mapper) Applied() snake.Direction {
	return m.applied
}

// DirectionFor returns the movement direction of a directional action.
func DirectionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.Up, true
	case core.ActionDown:
		return snake.Down, true
	case core.ActionLeft:
		return snake.Left, true
	case core.ActionRight:
		return snake.Right, true
	}
	return snake.None, false
}

// ClassifySwipe maps a displacement to a direction. The axis with the larger
// absolute displacement wins; its sign picks the direction. Exact diagonals
// resolve to the vertical axis.
func ClassifySwipe(dx, dy int) (snake.Direction, bool) {
	ax, ay := core.Abs(dx), core.Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return snake.None, false
	case ax > ay:
		if dx > 0 {
			return snake.Right, true
		}
		return snake.Left, true
	case dy > 0:
		return snake.Down, true
	default:
		return snake.Up, true
	}
}
