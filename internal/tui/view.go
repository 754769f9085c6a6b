package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("pulse"))
	b.WriteString("\n")

	status := m.mon.GetStatus()

	switch m.state {
	case "warming":
		b.WriteString(fmt.Sprintf("%s warming up (%s)\n",
			m.spinner.View(), valueStyle.Render(m.config.Warmup.String())))
	case "beating":
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			m.spinner.View(),
			labelStyle.Render("beats:"),
			valueStyle.Render(m.beatProgress(status.Beats))))
	case "complete":
		b.WriteString(successStyle.Render(
			fmt.Sprintf("✓ emitted %d heartbeat(s)", status.Beats)))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		var lines []string
		for _, beat := range m.history {
			lines = append(lines, fmt.Sprintf("beat %-4d %s",
				beat.Seq, dimStyle.Render(beat.At.Format("15:04:05.000"))))
		}

		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) beatProgress(beats int64) string {
	if m.config.Count > 0 {
		return fmt.Sprintf("%d/%d", beats, m.config.Count)
	}

	return fmt.Sprintf("%d", beats)
}
