package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/leaderboard"
)

// Scoreboard layout constants
const (
	rankColWidth  = 4
	nameColWidth  = leaderboard.MaxNameLen
	scoreColWidth = 6
	dateColWidth  = len(leaderboard.DateLayout)
)

// newScoreTable builds the leaderboard table. highlight is the 1-based rank
// to mark, 0 for none.
func newScoreTable(entries []leaderboard.Entry, highlight int, theme Theme) table.Model {
	columns := []table.Column{
		{Title: "#", Width: rankColWidth},
		{Title: "Name", Width: nameColWidth},
		{Title: "Score", Width: scoreColWidth},
		{Title: "Date", Width: dateColWidth},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Date,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(leaderboard.Capacity+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Muted).
		BorderBottom(true).
		Bold(true)
	if highlight > 0 && highlight <= len(entries) {
		s.Selected = s.Selected.
			Foreground(theme.Accent).
			Bold(true)
		t.SetCursor(highlight - 1)
	} else {
		s.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(s)

	return t
}

// renderScorePanel renders the leaderboard box shown after a game.
func renderScorePanel(entries []leaderboard.Entry, highlight int, theme Theme) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Accent)
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n")

	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true)
		b.WriteString(emptyStyle.Render("No scores recorded yet."))
	} else {
		b.WriteString(newScoreTable(entries, highlight, theme).View())
	}

	return panelStyle.Render(b.String())
}

// FormatScores renders entries as a plain table for non-interactive output.
func FormatScores(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return "No scores recorded yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s %-*s %*s  %s\n", rankColWidth, "#", nameColWidth, "NAME", scoreColWidth, "SCORE", "DATE")
	for i, e := range entries {
		fmt.Fprintf(&b, "%-*d %-*s %*d  %s\n", rankColWidth, i+1, nameColWidth, e.Name, scoreColWidth, e.Score, e.Date)
	}
	return strings.TrimRight(b.String(), "\n")
}
