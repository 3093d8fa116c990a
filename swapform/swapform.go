// Package swapform holds the state of the swap form: mode, active view,
// selected tokens, amount text and wallet field visibility.
//
// Every mutation is an explicit user action. Methods that correspond to a
// transition report whether it fired; actions that are not valid in the
// current view leave the form untouched.
package swapform

import "jumper-tui/catalog"

// Mode switches the main view between a token exchange and a gas refuel
type Mode int

const (
	ModeExchange Mode = iota
	ModeGas
)

func (m Mode) String() string {
	if m == ModeGas {
		return "Gas"
	}
	return "Exchange"
}

// View is the active screen of the form
type View int

const (
	ViewMain View = iota
	ViewFrom
	ViewTo
	ViewSettings
)

func (v View) String() string {
	switch v {
	case ViewFrom:
		return "from"
	case ViewTo:
		return "to"
	case ViewSettings:
		return "settings"
	default:
		return "main"
	}
}

// Picking reports whether v is one of the token picker views
func (v View) Picking() bool { return v == ViewFrom || v == ViewTo }

// Form is the in-progress swap configuration
type Form struct {
	mode          Mode
	view          View
	from, to      catalog.Token
	hasFrom       bool
	hasTo         bool
	amount        string
	walletVisible bool
}

// New returns a form in its initial state
func New() *Form {
	return &Form{mode: ModeExchange, view: ViewMain}
}

func (f *Form) Mode() Mode { return f.mode }
func (f *Form) View() View { return f.view }
func (f *Form) Amount() string { return f.amount }
func (f *Form) WalletFieldVisible() bool { return f.walletVisible }
func (f *Form) From() (catalog.Token, bool) { return f.from, f.hasFrom }
func (f *Form) To() (catalog.Token, bool) { return f.to, f.hasTo }

func (f *Form) open(v View) bool {
	if f.view != ViewMain {
		return false
	}
	f.view = v
	return true
}

func (f *Form) OpenFrom() bool { return f.open(ViewFrom) }
func (f *Form) OpenTo() bool { return f.open(ViewTo) }
func (f *Form) OpenSettings() bool { return f.open(ViewSettings) }

// Back returns to the main view without touching the selection
func (f *Form) Back() bool {
	if f.view == ViewMain {
		return false
	}
	f.view = ViewMain
	return true
}

// SelectToken copies t into the side being picked and returns to main.
// Picking the same token for both sides is allowed.
func (f *Form) SelectToken(t catalog.Token) bool {
	switch f.view {
	case ViewFrom:
		f.from, f.hasFrom = t, true
	case ViewTo:
		f.to, f.hasTo = t, true
	default:
		return false
	}
	f.view = ViewMain
	return true
}

// ToggleMode flips between exchange and gas on the main view
func (f *Form) ToggleMode() bool {
	if f.mode == ModeExchange {
		return f.SetMode(ModeGas)
	}
	return f.SetMode(ModeExchange)
}

// SetMode selects a mode on the main view
func (f *Form) SetMode(m Mode) bool {
	if f.view != ViewMain {
		return false
	}
	f.mode = m
	return true
}

// ToggleWalletField shows or hides the destination wallet input
func (f *Form) ToggleWalletField() {
	f.walletVisible = !f.walletVisible
}

// SetAmount stores the amount text verbatim. No parsing happens here.
func (f *Form) SetAmount(text string) bool {
	if f.view != ViewMain {
		return false
	}
	f.amount = text
	return true
}

// Adjacent reports whether the from and to boxes sit side by side with a
// connector between them. It is derived on every call and never stored.
func (f *Form) Adjacent() bool {
	return f.hasFrom && f.hasTo && f.mode == ModeExchange
}

// Title is the heading of the active view
func (f *Form) Title() string {
	switch f.view {
	case ViewSettings:
		return "Settings"
	case ViewFrom, ViewTo:
		return f.mode.String() + " " + f.view.String()
	default:
		return f.mode.String()
	}
}
