package main

import (
	"context"
	"time"

	"jumper-tui/catalog"
	"jumper-tui/config"
	"jumper-tui/rpc"
	"jumper-tui/swapform"
	"jumper-tui/views/swap"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// loadTokens fetches the token catalog; seq comes from Store.Begin
func loadTokens(client *catalog.Client, seq uint64) tea.Cmd {
	return func() tea.Msg {
		tokens, err := client.Load(context.Background())
		return tokensLoadedMsg{seq: seq, tokens: tokens, err: err}
	}
}

// connectRPC establishes an RPC connection to the Ethereum node
func connectRPC(url string) tea.Cmd {
	return func() tea.Msg {
		result := rpc.Connect(url)
		return rpcConnectedMsg{client: result.Client, err: result.Error}
	}
}

// fetchGasPrice asks the connected node for a gas price
func fetchGasPrice(client *rpc.Client) tea.Cmd {
	return func() tea.Msg {
		quote, err := rpc.SuggestGasPrice(client)
		return gasPriceMsg{quote: quote, err: err}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

// clearNotice waits 2 seconds then clears the notice set at at
func clearNotice(at time.Time) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{at: at}
	})
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}
	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// setNotice shows a short-lived message and schedules its removal
func (m *model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeTime = time.Now()
	return clearNotice(m.noticeTime)
}

// filtered is the catalog as narrowed by the picker's search text
func (m *model) filtered() catalog.Catalog {
	return m.store.Filtered(m.search.Value())
}

// textInputActive returns true if typed characters belong to an input
func (m *model) textInputActive() bool {
	if m.settingsForm != nil {
		return true
	}
	if m.form.View().Picking() {
		return true
	}
	return m.form.View() == swapform.ViewMain && m.focus != swap.FieldNone
}

// saveConfig persists preferences, logging instead of failing
func (m *model) saveConfig() {
	if m.configPath == "" {
		return
	}
	m.cfg.Logger = m.logEnabled
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("error", err.Error())
	}
}
