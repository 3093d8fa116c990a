package main

import (
	"strings"
	"time"

	"jumper-tui/catalog"
	"jumper-tui/config"
	"jumper-tui/connector"
	"jumper-tui/overlay"
	"jumper-tui/rpc"
	"jumper-tui/styles"
	"jumper-tui/swapform"
	"jumper-tui/views"
	"jumper-tui/views/swap"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	cfg        config.Config
	configPath string

	// token catalog
	tokens *catalog.Client
	store  *catalog.Store

	// swap form
	form   *swapform.Form
	amount textinput.Model
	wallet textinput.Model
	focus  swap.Field

	// token picker
	search textinput.Model
	cursor int

	// settings screen
	settingsIdx  int
	settingsRow  int
	settingsForm *huh.Form

	// overlays
	doc     *overlay.Document
	menu    *overlay.Overlay
	menuIdx int
	modal   *overlay.Overlay

	// wallet connector
	conn        *connector.Connector
	connectLink string
	connectErr  string

	// gas price readout
	rpcURL        string
	ethClient     *rpc.Client
	rpcConnected  bool
	rpcConnecting bool
	gas           string

	spin spinner.Model

	// transient feedback (clipboard etc.)
	notice     string
	noticeTime time.Time

	// clickable areas for mouse support, rebuilt on every render
	clickableAreas []views.ClickableArea

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model

	quitting bool
}

// -------------------- INIT --------------------

func newInput(placeholder, prompt string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = prompt
	in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
	in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
	in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
	in.CharLimit = limit
	in.Width = 40
	return in
}

// newModel creates the model from a loaded configuration. The connector
// handle is owned by the caller and closed by the model on quit.
func newModel(cfg config.Config, configPath string, conn *connector.Connector) *model {
	search := newInput("Search by token or address", "🔍 ", 64)
	search.Focus()

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent)

	// Initialize log viewport
	vp := viewport.New(0, 10) // resized on the first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent)

	doc := overlay.NewDocument()

	m := &model{
		cfg:        cfg,
		configPath: configPath,
		tokens: catalog.NewClient(catalog.Options{
			Endpoint:     cfg.TokensEndpoint,
			APIKey:       cfg.APIKey,
			ImageBaseURL: cfg.ImageBaseURL,
		}),
		store:       catalog.NewStore(),
		form:        swapform.New(),
		amount:      newInput("0", "", 0),
		wallet:      newInput("0x…", "", 66),
		search:      search,
		doc:         doc,
		menu:        overlay.New(doc, "menu"),
		modal:       overlay.New(doc, "connect"),
		conn:        conn,
		rpcURL:      cfg.EffectiveRPCURL(),
		spin:        sp,
		logEnabled:  cfg.Logger,
		logBuffer:   &strings.Builder{},
		logViewport: vp,
		logSpinner:  logSpin,
	}
	m.menu.OnClose(func() {
		m.menuIdx = 0
		m.addLog("debug", m.menu.Name()+" closed")
	})
	m.modal.OnClose(func() {
		m.connectErr = ""
		m.addLog("debug", m.modal.Name()+" closed")
	})
	return m
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, m.reloadTokens(), textinput.Blink}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	// connect if rpc is set
	if m.rpcURL != "" {
		m.rpcConnecting = true
		cmds = append(cmds, connectRPC(m.rpcURL))
	}
	return tea.Batch(cmds...)
}

// reloadTokens starts a catalog load and returns the command that runs it
func (m *model) reloadTokens() tea.Cmd {
	seq := m.store.Begin()
	return loadTokens(m.tokens, seq)
}

// teardown releases everything tied to the program's lifetime
func (m *model) teardown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.store.Close()
	m.menu.Close()
	m.modal.Close()
	if m.conn != nil {
		m.conn.Close()
	}
	if m.ethClient != nil && m.ethClient.Client != nil {
		m.ethClient.Close()
	}
}

func (m *model) quit() (tea.Model, tea.Cmd) {
	m.teardown()
	return m, tea.Quit
}
