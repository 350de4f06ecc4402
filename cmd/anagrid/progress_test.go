package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/domino14/anagrid/internal/puzzle"
)

func TestProgressCancel(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := newProgressModel("Chain, 6 letters", nil, cancel)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	is.True(cmd == nil) // keep running until the generator reports back
	is.True(ctx.Err() != nil)
	m = next.(progressModel)
	is.True(m.cancelling)
	is.Equal(m.View(), m.spinner.View()+" cancelling...\n")

	next, cmd = m.Update(generatedMsg{err: errors.New("generation cancelled")})
	is.True(cmd != nil)
	m = next.(progressModel)
	is.True(m.done)
	is.True(m.err != nil)
	is.Equal(m.View(), "")
}

func TestProgressDone(t *testing.T) {
	is := is.New(t)
	m := newProgressModel("Wave, 5 letters", nil, func() {})
	g := &puzzle.Game{Number: "1en50019"}
	next, _ := m.Update(generatedMsg{game: g})
	m = next.(progressModel)
	is.Equal(m.game, g)
	is.NoErr(m.err)
}
