package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: board full, no free cell for food")

// DefaultMaxFoodAttempts bounds random draws before falling back to a scan.
const DefaultMaxFoodAttempts = 64

// PlaceFood picks a uniformly random cell not covered by body.
// Random draws are capped at maxAttempts; after that the free cells are
// enumerated and one is picked uniformly. ErrBoardFull is returned only
// when the body covers every cell.
func PlaceFood(grid Grid, body []Cell, rng *rand.Rand, maxAttempts int) (Cell, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFoodAttempts
	}

	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		occupied[c] = struct{}{}
	}

	n := grid.TileCount()
	if n == 0 {
		return Cell{}, ErrBoardFull
	}

	for i := 0; i < maxAttempts; i++ {
		c := Cell{X: rng.Intn(n), Y: rng.Intn(n)}
		if _, taken := occupied[c]; !taken {
			return c, nil
		}
	}

	// Dense board: collect all empty cells
	free := make([]Cell, 0, max(0, grid.Area()-len(occupied)))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}
