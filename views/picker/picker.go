package picker

import (
	"fmt"
	"strings"

	"jumper-tui/catalog"
	"jumper-tui/helpers"
	"jumper-tui/styles"
	"jumper-tui/views"

	"github.com/charmbracelet/lipgloss"
)

// QuickPickCount is the number of tokens shown in the quick-pick grid
const QuickPickCount = 8

const quickPickPerRow = 4

// Params is everything the token picker needs to render
type Params struct {
	Width, Height int
	Title         string
	Search        string // rendered search input
	Status        catalog.Status
	Err           string
	Tokens        catalog.Catalog // already filtered
	Cursor        int
	Spinner       string
	Notice        string
}

// Nav returns the navigation bar for the picker view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("Enter") + " select",
		styles.Key("Ctrl+r") + " retry",
		styles.Key("Ctrl+y") + " copy address",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the picker and the regions a click can select
func Render(p Params) (string, []views.ClickableArea) {
	var s views.Stack

	back := styles.MutedStyle.Render("← ")
	s.Register(s.Add(back+styles.TitleStyle.Render(p.Title)), views.ClickableArea{
		Width: lipgloss.Width(back), Height: 1, Action: views.ActionBack,
	})
	s.Add("")
	s.Add(styles.FocusedBoxStyle.Width(helpers.Max(10, p.Width-2)).Render(p.Search))
	s.Add("")

	switch {
	case p.Status == catalog.StatusLoading:
		s.Add(p.Spinner + " " + styles.MutedStyle.Render("Loading tokens..."))
		return s.String(), s.Areas()

	case p.Status == catalog.StatusFailed:
		s.Add(styles.ErrorStyle.Render(p.Err))
		s.Add("")
		s.AddClickable(styles.ButtonStyle.Render("Try Again"), views.ActionRetry, 0)
		return s.String(), s.Areas()

	case len(p.Tokens) == 0:
		s.Add(styles.MutedStyle.Render("No tokens found"))
		return s.String(), s.Areas()
	}

	top := s.Add(quickPick(p.Tokens))
	s.Register(top, quickPickAreas(p.Tokens)...)
	s.Add("")

	// rows left for the list after the header, the quick-pick grid and the notice line
	rows := helpers.Max(3, p.Height-s.Height()-2)
	start, end := window(len(p.Tokens), p.Cursor, rows)
	for i := start; i < end; i++ {
		s.AddClickable(row(p.Tokens[i], i == p.Cursor, p.Width), views.ActionToken, i)
	}

	status := fmt.Sprintf("%d tokens", len(p.Tokens))
	if p.Notice != "" {
		status += "   " + lipgloss.NewStyle().Foreground(styles.CAccent2).Render(p.Notice)
	}
	s.Add("")
	s.Add(styles.MutedStyle.Render(status))

	return s.String(), s.Areas()
}

func chip(t catalog.Token) string {
	return lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel).
		Padding(0, 1).
		Width(10).
		Render(helpers.Truncate(t.Symbol, 8))
}

func quickPick(tokens catalog.Catalog) string {
	var rows []string
	var line []string
	for i := 0; i < len(tokens) && i < QuickPickCount; i++ {
		line = append(line, chip(tokens[i]))
		if len(line) == quickPickPerRow {
			rows = append(rows, strings.Join(line, " "))
			line = nil
		}
	}
	if len(line) > 0 {
		rows = append(rows, strings.Join(line, " "))
	}
	return strings.Join(rows, "\n")
}

func quickPickAreas(tokens catalog.Catalog) []views.ClickableArea {
	var areas []views.ClickableArea
	for i := 0; i < len(tokens) && i < QuickPickCount; i++ {
		w := lipgloss.Width(chip(tokens[i]))
		areas = append(areas, views.ClickableArea{
			X:      (i % quickPickPerRow) * (w + 1),
			Y:      i / quickPickPerRow,
			Width:  w,
			Height: 1,
			Action: views.ActionToken,
			Index:  i,
		})
	}
	return areas
}

func row(t catalog.Token, selected bool, width int) string {
	marker := "  "
	symbol := lipgloss.NewStyle().Foreground(styles.CText).Bold(true).Width(10)
	name := styles.MutedStyle
	if selected {
		marker = lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render("▶ ")
		symbol = symbol.Foreground(styles.CAccent)
		name = name.Foreground(styles.CText)
	}
	price := styles.MutedStyle.Render(helpers.FormatPrice(t.PriceUSD, t.HasPrice()))
	nameWidth := helpers.Max(4, width-lipgloss.Width(price)-16)
	return marker + symbol.Render(helpers.Truncate(t.Symbol, 9)) + " " +
		name.Width(nameWidth).Render(helpers.Truncate(t.Name, nameWidth)) + " " + price
}

// window returns the [start, end) slice of n rows that keeps cursor visible
func window(n, cursor, rows int) (int, int) {
	if n <= rows {
		return 0, n
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}
