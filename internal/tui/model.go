// Package tui implements the interactive file type selector shown before a scan.
package tui

import (
	"errors"

	"github.com/IvanShishkin/collider/internal/patterns"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user leaves the selector without confirming
var ErrCancelled = errors.New("selection cancelled")

// Selection is the confirmed scan configuration
type Selection struct {
	Patterns          []string
	LightMapExclusion bool
}

// Model holds the selector state.
type Model struct {
	entries  []patterns.Entry
	selected []bool
	cursor   int

	confirmed bool
	cancelled bool
	warning   string

	keys keyMap
	help help.Model
}

// New returns a selector pre-selected from the catalog's recommendations.
func New(catalog *patterns.Catalog) Model {
	m := Model{
		entries: catalog.Entries(),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.selected = make([]bool, len(m.entries))
	m.selectRecommended()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Confirmed reports whether the user accepted the selection
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user left without confirming
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Selection returns the current choice. The light-map toggle is not a pattern;
// leaving it unchecked turns light-map exclusion on.
func (m Model) Selection() Selection {
	sel := Selection{}
	toggleSeen := false
	toggleOn := false
	for i, e := range m.entries {
		if e.IsLightMapToggle() {
			toggleSeen = true
			toggleOn = m.selected[i]
			continue
		}
		if m.selected[i] {
			sel.Patterns = append(sel.Patterns, e.Pattern)
		}
	}
	sel.LightMapExclusion = toggleSeen && !toggleOn
	return sel
}

func (m *Model) selectRecommended() {
	for i, e := range m.entries {
		m.selected[i] = e.Recommended
	}
}

func (m *Model) selectAll(v bool) {
	for i := range m.selected {
		m.selected[i] = v
	}
}
