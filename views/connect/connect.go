package connect

import (
	"strings"

	"jumper-tui/helpers"
	"jumper-tui/styles"
	"jumper-tui/views"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.CAccent).
	Padding(1, 2)

// Params is everything the connect modal needs to render
type Params struct {
	Width       int
	ManifestURL string
	Link        string
	Err         string
	Account     string
	Notice      string
	ShowQR      bool
}

// Nav returns the navigation bar while the modal is open
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("y") + " copy link",
		styles.Key("d") + " disconnect",
		styles.Key("Esc") + " close",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// QR renders content as a half-block QR code
func QR(content string) string {
	var b strings.Builder
	qrterminal.GenerateWithConfig(content, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &b,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	return strings.TrimRight(b.String(), "\n")
}

// Render renders the modal box. Areas are relative to the box's top-left
// corner, border included.
func Render(p Params) (string, []views.ClickableArea) {
	var s views.Stack
	inner := helpers.Max(20, p.Width-6)

	s.Add(styles.TitleStyle.Render("Connect wallet"))
	s.Add("")
	if p.Account != "" {
		s.Add(lipgloss.NewStyle().Foreground(styles.CAccent2).Render("● Connected: " + helpers.ShortenAddr(p.Account)))
	} else {
		s.Add(styles.MutedStyle.Render("Scan with a TON wallet or open the link."))
	}
	s.Add("")
	s.Add(styles.MutedStyle.Render("Manifest"))
	s.Add(helpers.Truncate(p.ManifestURL, inner))
	s.Add("")

	if p.Err != "" {
		s.Add(styles.ErrorStyle.Render(p.Err))
	} else {
		s.Add(styles.MutedStyle.Render("Link"))
		s.AddClickable(lipgloss.NewStyle().Foreground(styles.CAccent).Render(helpers.Truncate(p.Link, inner)), views.ActionCopyLink, 0)
		if p.ShowQR && p.Link != "" {
			s.Add("")
			s.Add(QR(p.Link))
		}
	}
	s.Add("")

	copyBtn := styles.ButtonStyle.Render("Copy link")
	disconnectBtn := lipgloss.NewStyle().Foreground(styles.CText).Background(styles.CPanel).Padding(0, 2).Render("Disconnect")
	top := s.Add(copyBtn + "  " + disconnectBtn)
	s.Register(top,
		views.ClickableArea{Width: lipgloss.Width(copyBtn), Height: 1, Action: views.ActionCopyLink},
		views.ClickableArea{X: lipgloss.Width(copyBtn) + 2, Width: lipgloss.Width(disconnectBtn), Height: 1, Action: views.ActionDisconnect},
	)

	if p.Notice != "" {
		s.Add("")
		s.Add(lipgloss.NewStyle().Foreground(styles.CAccent2).Render(p.Notice))
	}

	// border + padding
	return boxStyle.Render(s.String()), views.Offset(s.Areas(), 3, 2)
}
