package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	CBg      = lipgloss.Color("#120F1F") // deep violet
	CPanel   = lipgloss.Color("#1C1733")
	CBorder  = lipgloss.Color("#653BA3")
	CMuted   = lipgloss.Color("#8F87A8")
	CText    = lipgloss.Color("#E9E4F8")
	CAccent  = lipgloss.Color("#BEA0EB") // lavender
	CAccent2 = lipgloss.Color("#7EE787") // green-ish
	CWarn    = lipgloss.Color("#FFA657") // orange
	CError   = lipgloss.Color("#FF5C5C")
)

// Gradient endpoints for the title
const (
	FadeFrom = "#7D5AFC"
	FadeTo   = "#FF87D7"
)

// Shared styles
var (
	AppStyle = lipgloss.NewStyle().
			Background(CBg).
			Foreground(CText)

	TitleStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(1, 2)

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	FocusedBoxStyle = BoxStyle.
			BorderForeground(CAccent)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(lipgloss.Color("#653BA3")).
			Padding(0, 2)

	NavStyle = lipgloss.NewStyle().
			Background(CPanel).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(CBorder).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(CMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CError).
			Bold(true)

	HotkeyKeyStyle = lipgloss.NewStyle().
			Foreground(CAccent2).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(CAccent).
			Bold(true)
)

// Key renders a key with accent styling
func Key(s string) string {
	return HotkeyKeyStyle.Render(s)
}
