// Package tui renders live heartbeat monitor status in the terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/async-mocks/internal/config"
	"github.com/joe/async-mocks/internal/monitor"
)

// beatHistoryLimit is the number of recent beats shown in the list.
const beatHistoryLimit = 5

// BeatMsg is sent for every heartbeat the monitor emits.
type BeatMsg monitor.Beat

// DoneMsg is sent when the monitor's beat stream ends.
type DoneMsg struct{}

// Model represents the TUI state
type Model struct {
	config *config.Config
	mon    *monitor.Monitor
	beats  <-chan monitor.Beat

	spinner spinner.Model
	history []monitor.Beat
	width   int
	state   string // "warming", "beating", "complete"

	quitting bool
}

// NewModel builds the TUI model around a monitor and its beat stream. The
// stream closes when the monitor finishes.
func NewModel(cfg *config.Config, mon *monitor.Monitor, beats <-chan monitor.Beat) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Pulse
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		config:  cfg,
		mon:     mon,
		beats:   beats,
		spinner: sp,
		state:   "warming",
	}
}

// Init starts the spinner and the beat listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForBeat(m.beats))
}

// waitForBeat returns a command that delivers the next beat, or DoneMsg once
// the stream closes.
func waitForBeat(beats <-chan monitor.Beat) tea.Cmd {
	return func() tea.Msg {
		beat, ok := <-beats
		if !ok {
			return DoneMsg{}
		}

		return BeatMsg(beat)
	}
}
