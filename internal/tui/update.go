package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.warning = ""

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.selected) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}

		case key.Matches(msg, m.keys.All):
			m.selectAll(true)

		case key.Matches(msg, m.keys.None):
			m.selectAll(false)

		case key.Matches(msg, m.keys.Recommended):
			m.selectRecommended()

		case key.Matches(msg, m.keys.Confirm):
			if len(m.Selection().Patterns) == 0 {
				m.warning = "Select at least one file type to scan."
				return m, nil
			}
			m.confirmed = true
			return m, tea.Quit
		}
	}

	return m, nil
}
