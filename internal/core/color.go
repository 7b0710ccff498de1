package core

// Color is the semantic role of a screen cell. The platform maps roles to
// concrete terminal colors through a theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBackground
	ColorGrid
	ColorBorder
	ColorSnakeHead
	ColorSnake
	ColorFood
	ColorText
)
