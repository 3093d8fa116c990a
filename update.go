package main

import (
	"fmt"

	"jumper-tui/connector"
	"jumper-tui/helpers"
	"jumper-tui/swapform"
	"jumper-tui/views"
	"jumper-tui/views/settings"
	"jumper-tui/views/swap"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- UPDATE --------------------

// Update implements tea.Model. While the settings select is open it sees
// every message first and owns the keyboard and mouse.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.settingsForm != nil {
		cmd, handled := m.updateSettingsForm(msg)
		if handled {
			return m, cmd
		}
		_, next := m.update(msg)
		return m, tea.Batch(cmd, next)
	}
	return m.update(msg)
}

func (m *model) updateSettingsForm(msg tea.Msg) (tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			m.teardown()
			return tea.Quit, true
		case "esc":
			m.settingsForm = nil
			return nil, true
		}
	}

	form, cmd := m.settingsForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.settingsForm = f
	}

	switch m.settingsForm.State {
	case huh.StateCompleted:
		m.applySetting(settings.TempSelection)
		m.settingsForm = nil
	case huh.StateAborted:
		m.settingsForm = nil
	}

	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return cmd, true
	}
	return cmd, false
}

func (m *model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent2),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case tokensLoadedMsg:
		if !m.store.Complete(msg.seq, msg.tokens, msg.err) {
			m.addLog("debug", fmt.Sprintf("Dropped stale token load #%d", msg.seq))
			return m, nil
		}
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Token fetch failed: `%s`", msg.err.Error()))
		} else if m.store.EmptyResult() {
			m.addLog("warning", "Token endpoint returned no tokens")
		} else {
			m.addLog("success", fmt.Sprintf("Loaded %d tokens", len(msg.tokens)))
		}
		m.clampCursor()
		return m, nil

	case rpcConnectedMsg:
		m.rpcConnecting = false
		if msg.err != nil {
			m.ethClient = nil
			m.rpcConnected = false
			m.addLog("error", fmt.Sprintf("RPC connection failed: `%s`", msg.err.Error()))
			return m, nil
		}
		m.ethClient = msg.client
		m.rpcConnected = true
		m.addLog("success", fmt.Sprintf("RPC connected to `%s`", msg.client.URL))
		return m, fetchGasPrice(m.ethClient)

	case gasPriceMsg:
		if msg.err != nil {
			m.gas = ""
			m.addLog("error", msg.err.Error())
			return m, nil
		}
		m.gas = msg.quote.Gwei()
		m.addLog("info", "Gas price: "+m.gas)
		return m, nil

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Clipboard unavailable: %s", msg.err.Error()))
			return m, m.setNotice("Clipboard unavailable")
		}
		m.addLog("info", "Copied "+msg.what+" to clipboard")
		return m, m.setNotice("✓ Copied " + msg.what)

	case clearNoticeMsg:
		if msg.at.Equal(m.noticeTime) {
			m.notice = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		inputWidth := helpers.Max(10, msg.Width-16)
		m.search.Width = inputWidth
		m.amount.Width = inputWidth
		m.wallet.Width = inputWidth

		if m.logEnabled {
			m.logViewport.Width = helpers.Max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// cursor blink and other input internals
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	m.amount, cmd = m.amount.Update(msg)
	cmds = append(cmds, cmd)
	m.wallet, cmd = m.wallet.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// -------------------- KEYS --------------------

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	if m.modal.IsOpen() {
		switch key {
		case "y", "Y":
			return m, m.copyLink()
		case "d", "D":
			return m, m.disconnect()
		case "esc", "c":
			m.modal.Close()
		case "q":
			return m.quit()
		}
		return m, nil
	}

	if m.menu.IsOpen() {
		items := m.menuItems()
		switch key {
		case "up", "k":
			if m.menuIdx > 0 {
				m.menuIdx--
			}
		case "down", "j":
			if m.menuIdx < len(items)-1 {
				m.menuIdx++
			}
		case "enter":
			return m.activateMenuItem(m.menuIdx)
		case "esc", "m":
			m.menu.Close()
		case "q":
			return m.quit()
		}
		return m, nil
	}

	// global keys
	if !m.textInputActive() {
		switch key {
		case "q":
			return m.quit()
		case "l", "L":
			return m, m.toggleLog()
		case "pageup", "pagedown":
			if m.logEnabled && m.logReady {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(msg)
				return m, cmd
			}
		}
	}

	switch m.form.View() {
	case swapform.ViewFrom, swapform.ViewTo:
		return m.handlePickerKey(msg)
	case swapform.ViewSettings:
		return m.handleSettingsKey(msg)
	default:
		return m.handleMainKey(msg)
	}
}

func (m *model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.focus != swap.FieldNone {
		switch key {
		case "esc", "enter":
			m.blur()
			return m, nil
		case "tab":
			return m, m.cycleFocus()
		}
		var cmd tea.Cmd
		if m.focus == swap.FieldAmount {
			m.amount, cmd = m.amount.Update(msg)
			m.form.SetAmount(m.amount.Value())
		} else {
			m.wallet, cmd = m.wallet.Update(msg)
		}
		return m, cmd
	}

	switch key {
	case "f", "F":
		return m, m.openPicker(swapform.ViewFrom)
	case "t", "T":
		return m, m.openPicker(swapform.ViewTo)
	case "s", "S":
		return m, m.openSettings()
	case "x", "X":
		if m.form.ToggleMode() {
			m.addLog("info", "Mode: "+m.form.Mode().String())
		}
	case "w", "W":
		m.toggleWalletField()
	case "a", "A", "enter":
		return m, m.focusField(swap.FieldAmount)
	case "tab":
		return m, m.cycleFocus()
	case "c", "C":
		m.openConnect()
	case "m", "M":
		m.menu.Toggle()
	}
	return m, nil
}

func (m *model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form.Back()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, m.selectToken(m.cursor)
	case "ctrl+r":
		return m, m.retry()
	case "ctrl+y":
		list := m.filtered()
		if m.cursor >= 0 && m.cursor < len(list) {
			t := list[m.cursor]
			return m, copyToClipboard(t.Symbol+" address", t.Address)
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
	}
	return m, cmd
}

func (m *model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := settings.Rows(m.cfg.Settings, m.gas)
	switch msg.String() {
	case "esc", "backspace":
		m.form.Back()
	case "up", "k":
		if m.settingsIdx > 0 {
			m.settingsIdx--
		}
	case "down", "j":
		if m.settingsIdx < len(rows)-1 {
			m.settingsIdx++
		}
	case "enter", " ":
		m.editSetting(m.settingsIdx)
	}
	return m, nil
}

// -------------------- MOUSE --------------------

// handleMouse offers the event to open overlays first, then hit-tests the
// areas registered by the last render
func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.doc.Dispatch(msg)

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if m.form.View().Picking() {
			if msg.Button == tea.MouseButtonWheelUp && m.cursor > 0 {
				m.cursor--
			} else if msg.Button == tea.MouseButtonWheelDown && m.cursor < len(m.filtered())-1 {
				m.cursor++
			}
			return m, nil
		}
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}

	case tea.MouseButtonLeft:
		area, ok := views.Hit(m.clickableAreas, msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.addLog("debug", fmt.Sprintf("Click at (%d,%d) action=%d index=%d", msg.X, msg.Y, area.Action, area.Index))
		return m.click(area)
	}
	return m, nil
}

func (m *model) click(area views.ClickableArea) (tea.Model, tea.Cmd) {
	switch area.Action {
	case views.ActionFocusAmount:
		return m, m.focusField(swap.FieldAmount)
	case views.ActionFocusWallet:
		return m, m.focusField(swap.FieldWallet)
	}

	m.blur()
	switch area.Action {
	case views.ActionOpenFrom:
		return m, m.openPicker(swapform.ViewFrom)
	case views.ActionOpenTo:
		return m, m.openPicker(swapform.ViewTo)
	case views.ActionSettings:
		return m, m.openSettings()
	case views.ActionSetMode:
		if m.form.SetMode(swapform.Mode(area.Index)) {
			m.addLog("info", "Mode: "+m.form.Mode().String())
		}
	case views.ActionToggleWallet:
		m.toggleWalletField()
	case views.ActionConnect:
		m.openConnect()
	case views.ActionMenu:
		m.menu.Toggle()
	case views.ActionBack:
		m.form.Back()
	case views.ActionToken:
		return m, m.selectToken(area.Index)
	case views.ActionRetry:
		return m, m.retry()
	case views.ActionSettingsRow:
		m.settingsIdx = area.Index
		m.editSetting(area.Index)
	case views.ActionMenuItem:
		return m.activateMenuItem(area.Index)
	case views.ActionCopyLink:
		return m, m.copyLink()
	case views.ActionDisconnect:
		return m, m.disconnect()
	}
	return m, nil
}

// -------------------- ACTIONS --------------------

func (m *model) openPicker(v swapform.View) tea.Cmd {
	var ok bool
	if v == swapform.ViewFrom {
		ok = m.form.OpenFrom()
	} else {
		ok = m.form.OpenTo()
	}
	if !ok {
		return nil
	}
	m.blur()
	m.cursor = 0
	m.clampCursor()
	return m.search.Focus()
}

func (m *model) openSettings() tea.Cmd {
	if !m.form.OpenSettings() {
		return nil
	}
	m.blur()
	m.settingsIdx = 0
	if m.rpcConnected {
		return fetchGasPrice(m.ethClient)
	}
	return nil
}

func (m *model) selectToken(idx int) tea.Cmd {
	list := m.filtered()
	if idx < 0 || idx >= len(list) {
		return nil
	}
	side := m.form.View().String()
	t := list[idx]
	if m.form.SelectToken(t) {
		m.addLog("success", fmt.Sprintf("Selected %s as %s token", t.Symbol, side))
	}
	return nil
}

func (m *model) retry() tea.Cmd {
	if m.store.Closed() {
		return nil
	}
	m.addLog("info", "Retrying token fetch")
	return m.reloadTokens()
}

func (m *model) clampCursor() {
	n := len(m.filtered())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) blur() {
	m.focus = swap.FieldNone
	m.amount.Blur()
	m.wallet.Blur()
}

func (m *model) focusField(f swap.Field) tea.Cmd {
	if m.form.View() != swapform.ViewMain {
		return nil
	}
	if f == swap.FieldWallet && !m.form.WalletFieldVisible() {
		return nil
	}
	m.blur()
	m.focus = f
	if f == swap.FieldWallet {
		return m.wallet.Focus()
	}
	return m.amount.Focus()
}

func (m *model) cycleFocus() tea.Cmd {
	switch {
	case m.focus == swap.FieldAmount && m.form.WalletFieldVisible():
		return m.focusField(swap.FieldWallet)
	default:
		return m.focusField(swap.FieldAmount)
	}
}

func (m *model) toggleWalletField() {
	m.form.ToggleWalletField()
	if !m.form.WalletFieldVisible() && m.focus == swap.FieldWallet {
		m.blur()
	}
}

func (m *model) editSetting(row int) {
	rows := settings.Rows(m.cfg.Settings, m.gas)
	if row < 0 || row >= len(rows) || !rows[row].Editable {
		return
	}
	m.settingsRow = row
	m.settingsForm = settings.CreateForm(rows[row], settings.Options(row))
}

func (m *model) applySetting(value string) {
	switch m.settingsRow {
	case settings.RowRoutePriority:
		m.cfg.Settings.RoutePriority = value
	case settings.RowGasPrice:
		m.cfg.Settings.GasPrice = value
	case settings.RowSlippage:
		m.cfg.Settings.Slippage = value
	default:
		return
	}
	m.saveConfig()
	m.addLog("success", "Saved setting: "+value)
}

// menuItems lists partner routes followed by the fixed entries
func (m *model) menuItems() []string {
	items := make([]string, 0, len(m.cfg.Partners)+2)
	for _, p := range m.cfg.Partners {
		items = append(items, p.Name+"  "+p.Path)
	}
	return append(items, "Toggle log", "Quit")
}

func (m *model) activateMenuItem(idx int) (tea.Model, tea.Cmd) {
	n := len(m.cfg.Partners)
	switch {
	case idx >= 0 && idx < n:
		p := m.cfg.Partners[idx]
		m.menu.Close()
		dest, _ := m.cfg.PartnerURL(p.Path)
		return m, copyToClipboard(p.Name+" link", dest)
	case idx == n:
		m.menu.Close()
		return m, m.toggleLog()
	case idx == n+1:
		return m.quit()
	}
	return m, nil
}

func (m *model) openConnect() {
	m.refreshLink()
	m.modal.Open()
}

func (m *model) refreshLink() {
	m.connectLink = ""
	m.connectErr = ""
	if m.conn == nil {
		m.connectErr = "No wallet connector configured"
		return
	}
	link, err := m.conn.ConnectLink(connector.ReturnBack)
	if err != nil {
		m.connectErr = err.Error()
		m.addLog("error", "Connect link: "+err.Error())
		return
	}
	m.connectLink = link
}

func (m *model) copyLink() tea.Cmd {
	if m.connectLink == "" {
		return nil
	}
	return copyToClipboard("connect link", m.connectLink)
}

func (m *model) disconnect() tea.Cmd {
	if m.conn == nil {
		return nil
	}
	if err := m.conn.Disconnect(); err != nil {
		m.connectErr = err.Error()
		m.addLog("error", "Disconnect: "+err.Error())
		return nil
	}
	m.refreshLink()
	m.addLog("info", "Wallet session reset")
	return m.setNotice("Session reset")
}

// toggleLog shows or hides the log panel and persists the choice
func (m *model) toggleLog() tea.Cmd {
	m.logEnabled = !m.logEnabled
	if m.logEnabled {
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		m.saveConfig()
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}
	// Clear logs and de-initialize when disabling
	if m.logBuffer != nil {
		m.logBuffer.Reset()
	}
	m.logger = nil
	m.logReady = false
	m.saveConfig()
	return nil
}
