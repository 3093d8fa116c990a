package menu

import (
	"strings"

	"jumper-tui/helpers"
	"jumper-tui/styles"
	"jumper-tui/views"

	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.CAccent).
	Padding(1, 2)

// Nav returns the navigation bar while the menu is open
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " open",
		styles.Key("Esc") + " close",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the menu box. Areas are relative to the box's top-left
// corner, border included.
func Render(items []string, selectedIdx int) (string, []views.ClickableArea) {
	var s views.Stack
	s.Add(styles.TitleStyle.Render("Menu"))
	s.Add("")

	width := 0
	for _, item := range items {
		width = helpers.Max(width, lipgloss.Width(item)+2)
	}
	for i, item := range items {
		style := lipgloss.NewStyle().Foreground(styles.CText).Width(width)
		marker := "  "
		if i == selectedIdx {
			style = style.Foreground(styles.CAccent).Bold(true)
			marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("▶ ")
		}
		s.AddClickable(marker+style.Render(item), views.ActionMenuItem, i)
	}

	// border + padding
	return boxStyle.Render(s.String()), views.Offset(s.Areas(), 3, 2)
}
