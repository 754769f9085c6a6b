package tui

import (
	"github.com/charmbracelet/bubbles/spinner"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/async-mocks/internal/monitor"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.mon.Cancel()

			return m, tea.Quit
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case BeatMsg:
		m.state = "beating"
		m.history = append(m.history, monitor.Beat(msg))

		if len(m.history) > beatHistoryLimit {
			m.history = m.history[len(m.history)-beatHistoryLimit:]
		}

		return m, waitForBeat(m.beats)

	case DoneMsg:
		m.state = "complete"

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}
