package tui

import (
	"testing"

	"github.com/IvanShishkin/collider/internal/patterns"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestNew_RecommendedSelection(t *testing.T) {
	m := New(patterns.DefaultCatalog())

	sel := m.Selection()
	assert.Equal(t, []string{"*.ymap", "*.ybn", "*.ymt", "*.ytd"}, sel.Patterns)
	assert.False(t, sel.LightMapExclusion)
	assert.False(t, m.Confirmed())
	assert.False(t, m.Cancelled())
}

func TestUpdate_ToggleLightMaps(t *testing.T) {
	m := New(patterns.DefaultCatalog())

	// Second entry is the light-map toggle
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace})

	sel := m.Selection()
	assert.True(t, sel.LightMapExclusion)
	assert.Contains(t, sel.Patterns, "*.ymap")
}

func TestUpdate_Navigation(t *testing.T) {
	m := New(patterns.DefaultCatalog())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, runes("j"), runes("j"), runes("k"))
	assert.Equal(t, 1, m.cursor)

	for i := 0; i < 20; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, patterns.DefaultCatalog().Len()-1, m.cursor)
}

func TestUpdate_BulkSelection(t *testing.T) {
	catalog := patterns.DefaultCatalog()

	tests := []struct {
		name         string
		keys         []tea.Msg
		wantPatterns []string
		wantExclude  bool
	}{
		{
			name:         "All",
			keys:         []tea.Msg{runes("a")},
			wantPatterns: catalog.Patterns(),
			wantExclude:  false,
		},
		{
			name:         "None",
			keys:         []tea.Msg{runes("n")},
			wantPatterns: nil,
			wantExclude:  true,
		},
		{
			name:         "Recommended after none",
			keys:         []tea.Msg{runes("n"), runes("r")},
			wantPatterns: []string{"*.ymap", "*.ybn", "*.ymt", "*.ytd"},
			wantExclude:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, New(catalog), tt.keys...)
			sel := m.Selection()
			assert.Equal(t, tt.wantPatterns, sel.Patterns)
			assert.Equal(t, tt.wantExclude, sel.LightMapExclusion)
		})
	}
}

func TestUpdate_ConfirmRequiresPattern(t *testing.T) {
	m, cmd := press(t, New(patterns.DefaultCatalog()), runes("n"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.Confirmed())
	assert.NotEmpty(t, m.warning)
	assert.Contains(t, m.View(), "Select at least one file type")

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Confirmed())
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"*.ymap"}, m.Selection().Patterns)
}

func TestUpdate_Cancel(t *testing.T) {
	for _, msg := range []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}, runes("q")} {
		m, cmd := press(t, New(patterns.DefaultCatalog()), msg)
		assert.True(t, m.Cancelled())
		assert.False(t, m.Confirmed())
		require.NotNil(t, cmd)
		assert.Empty(t, m.View())
	}
}

func TestView_ListsEntries(t *testing.T) {
	m := New(patterns.DefaultCatalog())
	out := m.View()

	for _, e := range patterns.DefaultCatalog().Entries() {
		assert.Contains(t, out, e.Pattern)
		assert.Contains(t, out, e.Description)
	}
	assert.Contains(t, out, "recommended")
}

func TestSelection_CatalogWithoutToggle(t *testing.T) {
	catalog := patterns.NewCatalog([]patterns.Entry{
		{Pattern: "*.ydr", Recommended: true},
		{Pattern: "*.ytyp"},
	})
	sel := New(catalog).Selection()

	assert.Equal(t, []string{"*.ydr"}, sel.Patterns)
	assert.False(t, sel.LightMapExclusion)
}
