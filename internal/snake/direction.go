package snake

// Direction is a unit movement delta on the grid.
// The zero value is None: the snake has not been told to move yet.
type Direction struct {
	DX, DY int
}

// Movement directions. Screen coordinates: Y grows downward.
var (
	None  = Direction{}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// IsZero reports whether d is None.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reversed direction. None stays None.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d is the exact reversal of other.
// None is never opposite to anything.
func (d Direction) IsOpposite(other Direction) bool {
	if d.IsZero() || other.IsZero() {
		return false
	}
	return d == other.Opposite()
}

// Valid reports whether d is None or one of the four unit directions.
func (d Direction) Valid() bool {
	switch d {
	case None, Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
