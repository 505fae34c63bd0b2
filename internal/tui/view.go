package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#569CD6")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4EC9B0"))

	uncheckedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	recommendedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("208"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F44747")).
			Bold(true)
)

// View renders the selector.
func (m Model) View() string {
	if m.confirmed || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Select file types to check") + "\n\n")

	for i, e := range m.entries {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}

		box := uncheckedStyle.Render("[ ]")
		if m.selected[i] {
			box = checkedStyle.Render("[x]")
		}

		label := fmt.Sprintf("%-16s", e.Pattern)
		if i == m.cursor {
			label = cursorStyle.Render(label)
		}

		line := fmt.Sprintf("  %s%s %s %s", pointer, box, label, descStyle.Render(e.Description))
		if e.Recommended {
			line += " " + recommendedStyle.Render("(recommended)")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString("  " + warningStyle.Render(m.warning) + "\n\n")
	}
	b.WriteString("  " + m.help.View(m.keys) + "\n")

	return b.String()
}
