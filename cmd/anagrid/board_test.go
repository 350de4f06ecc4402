package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matryer/is"
	"github.com/muesli/termenv"

	"github.com/domino14/anagrid/internal/grid"
	"github.com/domino14/anagrid/internal/puzzle"
)

func TestRenderBoard(t *testing.T) {
	is := is.New(t)
	lipgloss.SetColorProfile(termenv.Ascii)

	words := []*grid.Word{
		grid.NewWord("TRAIN", grid.Point{}, grid.Horizontal),
		grid.NewWord("SATE", grid.Point{X: 2, Y: -1}, grid.Vertical),
	}
	size := grid.Normalize(words)
	g := &puzzle.Game{Words: words, Size: size, Tiles: puzzle.Scramble(words, 1)}

	is.Equal(crossings(words), map[grid.Point]bool{{X: 2, Y: 1}: true})

	solved := renderBoard(g, true)
	is.Equal(solved, strings.Join([]string{
		"· · S · ·",
		"T R A I N",
		"· · T · ·",
		"· · E · ·",
	}, "\n")+"\n")

	scrambled := strings.Split(renderBoard(g, false), "\n")
	is.Equal(string([]rune(scrambled[1])[4]), "A") // crossing stays put
}
