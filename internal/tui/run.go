package tui

import (
	"fmt"

	"github.com/IvanShishkin/collider/internal/patterns"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the selector and blocks until the user confirms or cancels.
func Run(catalog *patterns.Catalog, opts ...tea.ProgramOption) (Selection, error) {
	p := tea.NewProgram(New(catalog), opts...)
	final, err := p.Run()
	if err != nil {
		return Selection{}, fmt.Errorf("selector failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Confirmed() {
		return Selection{}, ErrCancelled
	}
	return m.Selection(), nil
}
