package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/session"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// tileWidth is the number of terminal columns per board tile. Terminal cells
// are roughly twice as tall as wide, so two columns make a square tile.
const tileWidth = 2

// Theme maps semantic colors to lipgloss styles.
type Theme struct {
	Name   string
	Accent lipgloss.Color
	Muted  lipgloss.Color
	styles map[core.Color]lipgloss.Style
}

func newTheme(name string, bg, grid, border, snakeColor, food, text, accent, muted string) Theme {
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	return Theme{
		Name:   name,
		Accent: lipgloss.Color(accent),
		Muted:  lipgloss.Color(muted),
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorBackground: base,
			core.ColorGrid:       base.Foreground(lipgloss.Color(grid)),
			core.ColorBorder:     lipgloss.NewStyle().Foreground(lipgloss.Color(border)),
			core.ColorSnakeHead:  base.Foreground(lipgloss.Color(snakeColor)).Bold(true),
			core.ColorSnake:      base.Foreground(lipgloss.Color(snakeColor)),
			core.ColorFood:       base.Foreground(lipgloss.Color(food)).Bold(true),
			core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
		},
	}
}

// DarkTheme is the default color scheme.
func DarkTheme() Theme {
	return newTheme("dark", "#111111", "#222222", "#444444", "#00ff88", "#ff0055", "#eeeeee", "#00ff88", "#666666")
}

// LightTheme is the light color scheme.
func LightTheme() Theme {
	return newTheme("light", "#f0f2f5", "#dddddd", "#999999", "#0066cc", "#cc0000", "#333333", "#0066cc", "#888888")
}

// ThemeByName returns the named theme. Unknown names fall back to dark.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "dark", "":
		return DarkTheme(), true
	case "light":
		return LightTheme(), true
	}
	return DarkTheme(), false
}

// Style returns the style for a semantic color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// BoardSize returns the screen size needed to draw grid with its border.
func BoardSize(grid snake.Grid) (w, h int) {
	return grid.TileCount()*tileWidth + 2, grid.TileCount() + 2
}

// DrawBoard renders the playfield of snap into s, which must be at least
// BoardSize cells large.
func DrawBoard(s *core.Screen, snap session.Snapshot) {
	s.Clear()
	w, h := BoardSize(snap.Grid)
	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorBorder)

	tiles := snap.Grid.TileCount()
	for y := 0; y < tiles; y++ {
		for x := 0; x < tiles; x++ {
			drawTile(s, snake.Cell{X: x, Y: y}, "· ", core.ColorGrid)
		}
	}

	st := snap.State
	if st.HasFood {
		drawTile(s, st.Food, "● ", core.ColorFood)
	}
	// Body first so the head wins if the snake is drawn over itself
	for i := len(st.Snake) - 1; i >= 1; i-- {
		drawTile(s, st.Snake[i], "██", core.ColorSnake)
	}
	if len(st.Snake) > 0 {
		drawTile(s, st.Snake[0], "██", core.ColorSnakeHead)
	}
}

func drawTile(s *core.Screen, c snake.Cell, glyph string, color core.Color) {
	s.DrawText(1+c.X*tileWidth, 1+c.Y, glyph, color)
}

// StatusLine returns the HUD text for snap.
func StatusLine(snap session.Snapshot) string {
	switch {
	case snap.State.Status == snake.StatusOver:
		return fmt.Sprintf("Game Over! Score: %d", snap.State.Score)
	case snap.Paused:
		return fmt.Sprintf("Paused - Score: %d", snap.State.Score)
	case snap.State.Direction.IsZero():
		return fmt.Sprintf("Score: %d - press an arrow key to start", snap.State.Score)
	default:
		return fmt.Sprintf("Score: %d", snap.State.Score)
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
