package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domino14/anagrid/internal/puzzle"
	"github.com/domino14/anagrid/internal/wordbank"
)

type generatedMsg struct {
	game *puzzle.Game
	err  error
}

// progressModel shows a spinner while the generator runs. Quitting the
// view cancels generation and waits for the generator to report back.
type progressModel struct {
	spinner    spinner.Model
	label      string
	started    time.Time
	generate   tea.Cmd
	cancel     context.CancelFunc
	cancelling bool

	game *puzzle.Game
	err  error
	done bool
}

func newProgressModel(label string, generate tea.Cmd, cancel context.CancelFunc) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return progressModel{
		spinner:  s,
		label:    label,
		started:  time.Now(),
		generate: generate,
		cancel:   cancel,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.generate)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancelling = true
			m.cancel()
		}
		return m, nil

	case generatedMsg:
		m.game = msg.game
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	if m.cancelling {
		return fmt.Sprintf("%s cancelling...\n", m.spinner.View())
	}
	return fmt.Sprintf("%s generating %s (%s) - press q to cancel\n", m.spinner.View(), m.label,
		time.Since(m.started).Round(time.Second))
}

func generateWithProgress(ctx context.Context, bank *wordbank.WordBank, params puzzle.Params,
	opts puzzle.Options) (*puzzle.Game, error) {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	generate := func() tea.Msg {
		g, err := puzzle.Generate(ctx, bank, params, opts)
		return generatedMsg{game: g, err: err}
	}
	label := fmt.Sprintf("%s, %d letters", params.Variant, params.Length)

	final, err := tea.NewProgram(newProgressModel(label, generate, cancel)).Run()
	if err != nil {
		return nil, err
	}
	m := final.(progressModel)
	return m.game, m.err
}
