package main

import (
	"time"

	"jumper-tui/catalog"
	"jumper-tui/rpc"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// tokensLoadedMsg carries a finished catalog load; seq orders completions
type tokensLoadedMsg struct {
	seq    uint64
	tokens catalog.Catalog
	err    error
}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// rpcConnectedMsg contains result of RPC connection attempt
type rpcConnectedMsg struct {
	client *rpc.Client
	err    error
}

// gasPriceMsg contains the node's gas price suggestion
type gasPriceMsg struct {
	quote rpc.GasQuote
	err   error
}

// clipboardCopiedMsg reports a clipboard write; what names the copied thing
type clipboardCopiedMsg struct {
	what string
	err  error
}

// clearNoticeMsg clears the notice set at the given time
type clearNoticeMsg struct {
	at time.Time
}
