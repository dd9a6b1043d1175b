package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submit(t *testing.T, m model, input string) (model, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(input)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel(newTestSession(t))
	assert.Equal(t, statePlaying, m.state)
	assert.True(t, m.showWelcome)
	assert.Contains(t, m.intro, "You can see:\n- Repair Kit")
	assert.Contains(t, m.renderLog(), "RETRO ADVENTURE TERMINAL")
}

func TestUpdate_SubmitCommand(t *testing.T) {
	m := NewModel(newTestSession(t))
	m, _ = submit(t, m, "take repair kit")

	assert.Equal(t, "", m.textInput.Value())
	assert.Equal(t, []string{"repairKit"}, m.session.State().Inventory)
	require.Len(t, m.session.History(), 1)
	assert.Contains(t, m.renderLog(), "You pick up the Repair Kit.")
	assert.Contains(t, m.View(), "Repair Kit")
}

func TestUpdate_EmptyInputIgnored(t *testing.T) {
	m := NewModel(newTestSession(t))
	m, _ = submit(t, m, "   ")
	assert.Empty(t, m.session.History())
}

func TestUpdate_Clear(t *testing.T) {
	m := NewModel(newTestSession(t))
	m, _ = submit(t, m, "look")
	m, _ = submit(t, m, "clear")

	assert.Empty(t, m.session.History())
	assert.False(t, m.showWelcome)
	assert.Empty(t, m.intro)
	assert.Empty(t, m.renderLog())
}

func TestUpdate_ThemeCycles(t *testing.T) {
	m := NewModel(newTestSession(t))
	m, _ = submit(t, m, "theme")
	assert.Equal(t, 1, m.theme)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(model)
	assert.Equal(t, 2, m.theme)

	for i := 0; i < len(themes)-2; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
		m = next.(model)
	}
	assert.Equal(t, 0, m.theme)
}

func TestUpdate_Quit(t *testing.T) {
	m := NewModel(newTestSession(t))
	_, cmd := submit(t, m, "/quit")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_WindowSize(t *testing.T) {
	m := NewModel(newTestSession(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	assert.Equal(t, 90, m.viewport.Width)
	assert.Equal(t, 34, m.viewport.Height)
	assert.Equal(t, 86, m.textInput.Width)
}

func TestView_SidePanel(t *testing.T) {
	m := NewModel(newTestSession(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = next.(model)

	view := m.View()
	assert.Contains(t, view, "LOCATION")
	assert.Contains(t, view, "INVENTORY")
	assert.Contains(t, view, "(empty)")
	assert.Contains(t, view, "Progress: 0/3")
}
