package snake

// State is the complete mutable state of one game.
type State struct {
	Snake     []Cell // Head at index 0
	Food      Cell
	HasFood   bool // False only after the board filled up
	Score     int
	Status    Status
	Direction Direction // Direction applied on the last move
	Tick      uint64
	Reason    EndReason
}

// Head returns the first snake cell.
func (s State) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Length returns the number of snake cells.
func (s State) Length() int {
	return len(s.Snake)
}

// Occupies reports whether the snake covers c.
func (s State) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot alias the snake slice.
func (s State) Clone() State {
	out := s
	out.Snake = make([]Cell, len(s.Snake))
	copy(out.Snake, s.Snake)
	return out
}
