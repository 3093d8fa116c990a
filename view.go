package main

import (
	"strings"

	"jumper-tui/catalog"
	"jumper-tui/helpers"
	"jumper-tui/overlay"
	"jumper-tui/styles"
	"jumper-tui/swapform"
	"jumper-tui/views"
	"jumper-tui/views/connect"
	logview "jumper-tui/views/log"
	"jumper-tui/views/menu"
	"jumper-tui/views/picker"
	"jumper-tui/views/settings"
	"jumper-tui/views/swap"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

// globalHeader renders the header panel and returns the screen rect of the
// menu button
func (m *model) globalHeader() (string, overlay.Rect) {
	availableWidth := helpers.Max(0, m.w-4) // border + padding

	title := lipgloss.NewStyle().Bold(true).Render(helpers.FadeString("jumper", styles.FadeFrom, styles.FadeTo))
	left := title + " " + badgeStyle.Render(m.form.Mode().String())

	// RPC status with a dot
	var statusIcon, statusText string
	statusColor := cError
	switch {
	case m.rpcURL == "":
		statusIcon, statusText = "○", "No RPC"
		statusColor = cMuted
	case m.rpcConnecting:
		statusIcon, statusText = "○", "Connecting..."
	case !m.rpcConnected:
		statusIcon, statusText = "○", "Connection Failed"
	default:
		statusIcon, statusText = "●", "Mainnet"
		statusColor = cAccent2
		if m.gas != "" {
			statusText += " · " + m.gas
		}
	}
	rpcDisplay := lipgloss.NewStyle().Foreground(statusColor).Bold(true).Render(statusIcon + " " + statusText)

	menuBtn := lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("☰ Menu")

	right := rpcDisplay + "  " + menuBtn
	if lipgloss.Width(left)+lipgloss.Width(right)+1 > availableWidth {
		// Not enough space, drop the RPC status
		right = menuBtn
	}
	gap := helpers.Max(1, availableWidth-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + strings.Repeat(" ", gap) + right

	btn := overlay.Rect{
		X:      2 + lipgloss.Width(line) - lipgloss.Width(menuBtn),
		Y:      1,
		Width:  lipgloss.Width(menuBtn),
		Height: 1,
	}
	return headerStyle.Width(helpers.Max(0, m.w-2)).Render(line), btn
}

// renderPage renders the active form view. Areas are relative to the
// content's top-left corner.
func (m *model) renderPage(height int) (string, []views.ClickableArea, string) {
	width := helpers.Max(20, m.w-6)

	var content, nav string
	var areas []views.ClickableArea

	switch v := m.form.View(); {
	case v.Picking():
		errText := catalog.FetchFailedMessage
		if err := m.store.Err(); err != nil && err.Message != "" {
			errText = err.Message
		}
		content, areas = picker.Render(picker.Params{
			Width:   width,
			Height:  height,
			Title:   m.form.Title(),
			Search:  m.search.View(),
			Status:  m.store.Status(),
			Err:     errText,
			Tokens:  m.filtered(),
			Cursor:  m.cursor,
			Spinner: m.spin.View(),
			Notice:  m.notice,
		})
		return content, areas, picker.Nav(m.w - 2)

	case v == swapform.ViewSettings:
		if m.settingsForm != nil {
			content = styles.TitleStyle.Render("Settings") + "\n\n" + m.settingsForm.View()
			nav = settings.Nav(m.w-2, true)
		} else {
			content, areas = settings.Render(settings.Rows(m.cfg.Settings, m.gas), m.settingsIdx, width)
			nav = settings.Nav(m.w-2, false)
		}

	default:
		from, hasFrom := m.form.From()
		to, hasTo := m.form.To()
		account := ""
		if m.conn != nil {
			account = m.conn.Account()
		}
		content, areas = swap.Render(swap.Params{
			Width:         width,
			Title:         m.form.Title(),
			Mode:          m.form.Mode(),
			From:          from,
			To:            to,
			HasFrom:       hasFrom,
			HasTo:         hasTo,
			Adjacent:      m.form.Adjacent(),
			Amount:        m.amount.View(),
			USD:           helpers.USDValue(m.form.Amount(), from.PriceUSD, hasFrom && from.HasPrice()),
			WalletVisible: m.form.WalletFieldVisible(),
			Wallet:        m.wallet.View(),
			Focus:         m.focus,
			Account:       account,
		})
		nav = swap.Nav(m.w-2, m.focus != swap.FieldNone)
	}

	if m.notice != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(cAccent2).Render(m.notice)
	}
	return content, areas, nav
}

// renderConnectModal renders the connect modal centred on the screen and
// registers its areas and bounds
func (m *model) renderConnectModal() string {
	p := connect.Params{
		Width:  helpers.Min(helpers.Max(30, m.w-4), 84),
		Link:   m.connectLink,
		Err:    m.connectErr,
		Notice: m.notice,
	}
	if m.conn != nil {
		p.ManifestURL = m.conn.ManifestURL()
		p.Account = m.conn.Account()
	}

	nav := connect.Nav(m.w - 2)
	height := helpers.Max(0, m.h-lipgloss.Height(nav))

	box, areas := connect.Render(p)
	if m.connectLink != "" && lipgloss.Height(box)+lipgloss.Height(connect.QR(m.connectLink))+1 <= height {
		p.ShowQR = true
		box, areas = connect.Render(p)
	}

	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	x := helpers.Max(0, (m.w-bw)/2)
	y := helpers.Max(0, (height-bh)/2)
	m.clickableAreas = views.Offset(areas, x, y)
	m.modal.SetBounds(overlay.Rect{X: x, Y: y, Width: bw, Height: bh})

	placed := lipgloss.Place(m.w, height, lipgloss.Center, lipgloss.Center, box)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, placed, nav))
}

func (m *model) View() string {
	// Clear clickable areas for fresh render
	m.clickableAreas = nil
	if m.quitting {
		return ""
	}

	if m.modal.IsOpen() {
		return m.renderConnectModal()
	}

	header, menuBtn := m.globalHeader()
	headerH := lipgloss.Height(header)
	m.clickableAreas = append(m.clickableAreas, views.ClickableArea{
		X: menuBtn.X, Y: menuBtn.Y, Width: menuBtn.Width, Height: menuBtn.Height,
		Action: views.ActionMenu,
	})

	logH := 0
	if m.logEnabled {
		logH = logview.PanelHeight(m.h) + 4
	}

	var body, nav string
	if m.menu.IsOpen() {
		box, areas := menu.Render(m.menuItems(), m.menuIdx)
		x := helpers.Max(0, m.w-lipgloss.Width(box)-1)
		body = lipgloss.NewStyle().MarginLeft(x).Render(box)
		m.clickableAreas = append(m.clickableAreas, views.Offset(areas, x, headerH)...)
		// the trigger counts as inside so it can toggle the menu closed
		m.menu.SetBounds(
			overlay.Rect{X: x, Y: headerH, Width: lipgloss.Width(box), Height: lipgloss.Height(box)},
			menuBtn,
		)
		nav = menu.Nav(m.w - 2)
	} else {
		// panel borders and padding, nav bar
		pageHeight := m.h - headerH - 4 - 3 - logH
		content, areas, pageNav := m.renderPage(pageHeight)
		body = panelStyle.Width(helpers.Max(0, m.w-2)).Render(content)
		// panel border + padding
		m.clickableAreas = append(m.clickableAreas, views.Offset(areas, 3, headerH+2)...)
		nav = pageNav
	}

	sections := []string{header, body, nav}
	if m.logEnabled {
		m.logViewport.Height = logview.PanelHeight(m.h)
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
