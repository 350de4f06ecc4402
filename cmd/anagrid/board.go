package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/domino14/anagrid/internal/grid"
	"github.com/domino14/anagrid/internal/puzzle"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4"))
	tileStyle   = lipgloss.NewStyle().Bold(true)
	// Crossing letters never move, so they are the player's starting hints.
	fixedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
)

func crossings(words []*grid.Word) map[grid.Point]bool {
	seen := make(map[grid.Point]int)
	for _, w := range words {
		for _, c := range w.Cells() {
			seen[c]++
		}
	}
	fixed := make(map[grid.Point]bool)
	for c, n := range seen {
		if n > 1 {
			fixed[c] = true
		}
	}
	return fixed
}

// renderBoard draws the board one tile per column with a space between
// columns so it stays square in a terminal.
func renderBoard(g *puzzle.Game, solved bool) string {
	cells := g.Tiles
	if solved {
		cells = g.Solution()
	}
	fixed := crossings(g.Words)

	var sb strings.Builder
	for y := range g.Size.Height {
		for x := range g.Size.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			p := grid.Point{X: x, Y: y}
			r, ok := cells[p]
			switch {
			case !ok:
				sb.WriteString(emptyStyle.Render("·"))
			case fixed[p]:
				sb.WriteString(fixedStyle.Render(string(r)))
			default:
				sb.WriteString(tileStyle.Render(string(r)))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
