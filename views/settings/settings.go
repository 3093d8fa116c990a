package settings

import (
	"strings"

	"jumper-tui/config"
	"jumper-tui/helpers"
	"jumper-tui/styles"
	"jumper-tui/views"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Row indexes on the settings screen
const (
	RowRoutePriority = iota
	RowGasPrice
	RowSlippage
	RowBridges
	RowExchanges
)

// Row is one line of the settings screen
type Row struct {
	Label    string
	Value    string
	Detail   string
	Editable bool
}

// Rows builds the settings rows from the saved preferences. gas is the live
// gas price readout, empty when no RPC is connected.
func Rows(s config.Settings, gas string) []Row {
	return []Row{
		{Label: "Route Priority", Value: s.RoutePriority, Editable: true},
		{Label: "Gas Price", Value: s.GasPrice, Detail: gas, Editable: true},
		{Label: "Max. slippage", Value: s.Slippage, Editable: true},
		{Label: "Bridges", Value: config.BridgesEnabled},
		{Label: "Exchanges", Value: config.ExchangesEnabled},
	}
}

// Options returns the choices for an editable row
func Options(row int) []string {
	switch row {
	case RowRoutePriority:
		return config.RoutePriorities
	case RowGasPrice:
		return config.GasPrices
	case RowSlippage:
		return config.Slippages
	}
	return nil
}

// Nav returns the navigation bar for settings view
func Nav(width int, editing bool) string {
	var left string
	if editing {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " choose",
			styles.Key("Enter") + " save",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " change",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " back",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the settings list
func Render(rows []Row, selectedIdx int, width int) (string, []views.ClickableArea) {
	var s views.Stack

	back := styles.MutedStyle.Render("← ")
	s.Register(s.Add(back+styles.TitleStyle.Render("Settings")), views.ClickableArea{
		Width: lipgloss.Width(back), Height: 1, Action: views.ActionBack,
	})
	s.Add("")

	labelWidth := 18
	for i, r := range rows {
		marker := "  "
		labelStyle := lipgloss.NewStyle().Foreground(styles.CText).Width(labelWidth)
		valueStyle := lipgloss.NewStyle().Foreground(styles.CAccent)
		if !r.Editable {
			valueStyle = styles.MutedStyle
		}
		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("▶ ")
			labelStyle = labelStyle.Foreground(styles.CAccent).Bold(true)
		}

		line := marker + labelStyle.Render(r.Label) + valueStyle.Render(r.Value)
		if r.Detail != "" {
			line += styles.MutedStyle.Render("  (" + r.Detail + ")")
		}
		s.AddClickable(lipgloss.NewStyle().Width(helpers.Max(lipgloss.Width(line), width)).Render(line), views.ActionSettingsRow, i)
	}

	return s.String(), s.Areas()
}

// TempSelection stores the value chosen in the settings select
var TempSelection string

// CreateForm creates the select form for an editable row
func CreateForm(row Row, options []string) *huh.Form {
	TempSelection = row.Value

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o).Selected(o == row.Value))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(opts...).
				Title(row.Label).
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}
