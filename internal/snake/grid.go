package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned when the board size or grid unit is not positive.
	ErrInvalidGrid = errors.New("snake: board size and grid unit must be positive")
	// ErrUnevenGrid is returned when the board size is not a multiple of the grid unit.
	ErrUnevenGrid = errors.New("snake: board size is not divisible by grid unit")
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Grid is a square board of TileCount x TileCount cells.
type Grid struct {
	tiles int
}

// NewGrid derives the grid from a board edge length and a cell edge length.
// A board that does not divide evenly is rejected instead of truncated.
func NewGrid(boardSize, gridUnit int) (Grid, error) {
	if boardSize <= 0 || gridUnit <= 0 {
		return Grid{}, ErrInvalidGrid
	}
	if boardSize%gridUnit != 0 {
		return Grid{}, fmt.Errorf("%w: %d %% %d = %d", ErrUnevenGrid, boardSize, gridUnit, boardSize%gridUnit)
	}
	return Grid{tiles: boardSize / gridUnit}, nil
}

// NewSquareGrid builds a grid with the given number of tiles per side.
func NewSquareGrid(tiles int) (Grid, error) {
	return NewGrid(tiles, 1)
}

// TileCount returns the number of cells along one edge.
func (g Grid) TileCount() int {
	return g.tiles
}

// Area returns the total number of cells.
func (g Grid) Area() int {
	return g.tiles * g.tiles
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.tiles && c.Y >= 0 && c.Y < g.tiles
}

// Center returns the middle cell. For even sizes this is the lower-right
// of the four central cells.
func (g Grid) Center() Cell {
	return Cell{X: g.tiles / 2, Y: g.tiles / 2}
}
