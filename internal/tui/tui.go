package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/tatianab/stranded/internal/engine"
	"github.com/tatianab/stranded/internal/models"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateError
)

const welcomeMessage = "RETRO ADVENTURE TERMINAL\nADVENTURE v1.0.0\nType 'help' to see available commands."

type model struct {
	state       sessionState
	session     *engine.Session
	textInput   textinput.Model
	viewport    viewport.Model
	err         error
	intro       string
	showWelcome bool
	theme       int
	width       int
	height      int
}

func NewModel(session *engine.Session) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	intro, err := session.Intro()
	m := model{
		state:       statePlaying,
		session:     session,
		textInput:   ti,
		viewport:    viewport.New(80, 20),
		intro:       intro,
		showWelcome: true,
	}
	if err != nil {
		m.state = stateError
		m.err = err
	}
	m.viewport.SetContent(m.renderLog())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlT:
			m.theme = (m.theme + 1) % len(themes)
			m.viewport.SetContent(m.renderLog())
			return m, nil

		case tea.KeyEnter:
			if m.state != statePlaying {
				return m, nil
			}
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}
			m.textInput.Reset()

			if input == "/quit" {
				return m, tea.Quit
			}

			result, err := m.session.Submit(input)
			if err != nil {
				m.err = err
				m.state = stateError
				return m, nil
			}
			switch result.Command {
			case "clear":
				m.session.ClearHistory()
				m.showWelcome = false
				m.intro = ""
			case "theme":
				m.theme = (m.theme + 1) % len(themes)
			}
			m.viewport.SetContent(m.renderLog())
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = max(msg.Height-6, 1)
		m.textInput.Width = max(m.viewport.Width-4, 10)
		m.viewport.SetContent(m.renderLog())
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	var s string
	st := newStyles(themes[m.theme])

	switch m.state {
	case statePlaying:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(st),
		)

		help := st.help.Render(fmt.Sprintf("Theme: %s (ctrl+t)  •  /quit or esc to leave", themes[m.theme].name))

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState(st styles) string {
	state := m.session.State()
	world := m.session.World()

	location := st.heading.Render("LOCATION") + "\n" + models.FormatName(state.Location) + "\n\n"

	status := st.heading.Render("STATUS") + "\n"
	status += fmt.Sprintf("Health: %d%%\nProgress: %d/%d\nVisited: %d/%d\n\n",
		state.Health, state.Progress, world.ComponentsRequired, len(state.Visited), len(world.Locations()))

	inventory := st.heading.Render("INVENTORY") + "\n"
	if len(state.Inventory) == 0 {
		inventory += "(empty)"
	} else {
		for _, id := range state.Inventory {
			inventory += "- " + models.FormatName(id) + "\n"
		}
	}

	content := location + status + inventory

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return st.panel.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	st := newStyles(themes[m.theme])
	width := m.viewport.Width

	var b strings.Builder
	if m.showWelcome {
		b.WriteString(st.title.Render(welcomeMessage) + "\n\n")
	}
	if m.intro != "" {
		b.WriteString(st.game.Width(width).Render(m.intro) + "\n\n")
	}
	for _, entry := range m.session.History() {
		b.WriteString(st.user.Width(width).Render("> "+entry.Command) + "\n\n")
		out := st.game
		if entry.IsError {
			out = st.err
		}
		b.WriteString(out.Width(width).Render(entry.Result) + "\n\n")
	}
	return b.String()
}

// Run starts the terminal UI for session and blocks until the player quits.
func Run(session *engine.Session) error {
	p := tea.NewProgram(NewModel(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start plays the built-in world without configuration or logging.
func Start() error {
	world, err := models.DefaultWorld()
	if err != nil {
		return err
	}
	return Run(engine.NewSession(world, zap.NewNop()))
}
