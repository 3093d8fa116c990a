package swap

import (
	"strings"

	"jumper-tui/catalog"
	"jumper-tui/helpers"
	"jumper-tui/styles"
	"jumper-tui/swapform"
	"jumper-tui/views"

	"github.com/charmbracelet/lipgloss"
)

// Field identifies the focused input on the main view
type Field int

const (
	FieldNone Field = iota
	FieldAmount
	FieldWallet
)

// Params is everything the main swap view needs to render
type Params struct {
	Width         int
	Title         string
	Mode          swapform.Mode
	From, To      catalog.Token
	HasFrom       bool
	HasTo         bool
	Adjacent      bool
	Amount        string // rendered amount input
	USD           string
	WalletVisible bool
	Wallet        string // rendered wallet input
	Focus         Field
	Account       string
}

// Nav returns the navigation bar for the main view
func Nav(width int, editing bool) string {
	var left string
	if editing {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Esc") + " done",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("f/t") + " tokens",
			styles.Key("a") + " amount",
			styles.Key("x") + " mode",
			styles.Key("w") + " wallet",
			styles.Key("s") + " settings",
			styles.Key("c") + " connect",
			styles.Key("m") + " menu",
			styles.Key("l") + " log",
			styles.Key("q") + " quit",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the swap form and its clickable regions
func Render(p Params) (string, []views.ClickableArea) {
	var s views.Stack
	width := helpers.Max(24, p.Width)

	title := styles.TitleStyle.Render(p.Title)
	tabs, tabAreas := modeTabs(p.Mode)
	gap := helpers.Max(1, width-lipgloss.Width(title)-lipgloss.Width(tabs))
	top := s.Add(title + strings.Repeat(" ", gap) + tabs)
	s.Register(top, views.Offset(tabAreas, lipgloss.Width(title)+gap, 0)...)
	s.Add("")

	if p.Adjacent {
		arrow := lipgloss.NewStyle().Foreground(styles.CAccent).Render(" → ")
		boxWidth := (width - lipgloss.Width(arrow)) / 2
		from := tokenBox("From", p.From, p.HasFrom, boxWidth)
		to := tokenBox("To", p.To, p.HasTo, boxWidth)
		top = s.Add(lipgloss.JoinHorizontal(lipgloss.Center, from, arrow, to))
		s.Register(top,
			views.ClickableArea{Width: lipgloss.Width(from), Height: lipgloss.Height(from), Action: views.ActionOpenFrom},
			views.ClickableArea{X: lipgloss.Width(from) + lipgloss.Width(arrow), Width: lipgloss.Width(to), Height: lipgloss.Height(to), Action: views.ActionOpenTo},
		)
	} else {
		s.AddClickable(tokenBox("From", p.From, p.HasFrom, width), views.ActionOpenFrom, 0)
		s.Add(lipgloss.NewStyle().Foreground(styles.CAccent).Render("  ↓"))
		s.AddClickable(tokenBox("To", p.To, p.HasTo, width), views.ActionOpenTo, 0)
	}
	s.Add("")

	s.AddClickable(inputBox("Send", p.Amount, p.Focus == FieldAmount, width), views.ActionFocusAmount, 0)
	s.Add(styles.MutedStyle.Render("  ≈ " + p.USD))

	if p.WalletVisible {
		s.Add("")
		s.AddClickable(inputBox("Send to wallet", p.Wallet, p.Focus == FieldWallet, width), views.ActionFocusWallet, 0)
	}
	s.Add("")

	connect := "Connect wallet"
	if p.Account != "" {
		connect = "● " + helpers.ShortenAddr(p.Account)
	}
	connectBtn := styles.ButtonStyle.Render(connect)
	toggle := "+ wallet"
	if p.WalletVisible {
		toggle = "− wallet"
	}
	toggleBtn := lipgloss.NewStyle().Foreground(styles.CText).Background(styles.CPanel).Padding(0, 2).Render(toggle)
	top = s.Add(connectBtn + "  " + toggleBtn)
	s.Register(top,
		views.ClickableArea{Width: lipgloss.Width(connectBtn), Height: 1, Action: views.ActionConnect},
		views.ClickableArea{X: lipgloss.Width(connectBtn) + 2, Width: lipgloss.Width(toggleBtn), Height: 1, Action: views.ActionToggleWallet},
	)

	settings := styles.MutedStyle.Render("⚙ Settings")
	s.Add("")
	s.AddClickable(settings, views.ActionSettings, 0)

	return s.String(), s.Areas()
}

func modeTabs(mode swapform.Mode) (string, []views.ClickableArea) {
	var out string
	var areas []views.ClickableArea
	for i, m := range []swapform.Mode{swapform.ModeExchange, swapform.ModeGas} {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(styles.CMuted)
		if m == mode {
			style = style.Foreground(styles.CText).Background(styles.CBorder).Bold(true)
		}
		tab := style.Render(m.String())
		if i > 0 {
			out += " "
		}
		areas = append(areas, views.ClickableArea{
			X: lipgloss.Width(out), Width: lipgloss.Width(tab), Height: 1,
			Action: views.ActionSetMode, Index: int(m),
		})
		out += tab
	}
	return out, areas
}

func tokenBox(label string, t catalog.Token, ok bool, width int) string {
	inner := helpers.Max(8, width-4)
	lines := []string{styles.MutedStyle.Render(label)}
	if ok {
		lines = append(lines,
			styles.SelectedStyle.Render(helpers.Truncate(t.Symbol, inner))+" "+
				lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.Truncate(t.Name, helpers.Max(0, inner-len([]rune(t.Symbol))-1))),
			styles.MutedStyle.Render(helpers.ShortenAddr(helpers.ChecksumAddress(t.Address))),
		)
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CText).Render("Select token"), "")
	}
	return styles.BoxStyle.Width(helpers.Max(10, width-2)).Render(strings.Join(lines, "\n"))
}

func inputBox(label, input string, focused bool, width int) string {
	style := styles.BoxStyle
	if focused {
		style = styles.FocusedBoxStyle
	}
	return style.Width(helpers.Max(10, width-2)).Render(styles.MutedStyle.Render(label) + "\n" + input)
}
