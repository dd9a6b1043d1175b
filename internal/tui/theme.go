package tui

import "github.com/charmbracelet/lipgloss"

// theme is one of the retro terminal color schemes.
type theme struct {
	name      string
	primary   string
	text      string
	highlight string
}

var themes = []theme{
	{name: "green", primary: "#00ff00", text: "#33ff33", highlight: "#005500"},
	{name: "red", primary: "#ff0000", text: "#ff3333", highlight: "#550000"},
	{name: "blue", primary: "#0000ff", text: "#3333ff", highlight: "#000055"},
	{name: "amber", primary: "#ffbf00", text: "#ffbf00", highlight: "#553300"},
	{name: "white", primary: "#ffffff", text: "#eeeeee", highlight: "#555555"},
}

const errorColor = "#ff0000"

type styles struct {
	user    lipgloss.Style
	game    lipgloss.Style
	err     lipgloss.Style
	help    lipgloss.Style
	heading lipgloss.Style
	title   lipgloss.Style
	panel   lipgloss.Style
}

func newStyles(t theme) styles {
	return styles{
		user: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.primary)).
			Background(lipgloss.Color(t.highlight)).
			Bold(true).
			PaddingLeft(1),

		game: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.text)),

		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor)),

		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true),

		heading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.primary)).
			Bold(true).
			Underline(true),

		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.primary)).
			Bold(true),

		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.primary)).
			PaddingLeft(2).
			Foreground(lipgloss.Color(t.text)),
	}
}
