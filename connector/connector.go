package connector

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/crypto/nacl/box"
)

var (
	// ErrClosed is returned by a connector after Close
	ErrClosed = errors.New("connector closed")
	// ErrInvalidStrategy is returned for a return strategy other than back or none
	ErrInvalidStrategy = errors.New("invalid return strategy")
)

// ReturnStrategy tells the wallet app where to go after a deep-link action
type ReturnStrategy string

const (
	ReturnBack ReturnStrategy = "back"
	ReturnNone ReturnStrategy = "none"
)

// Config holds the fixed connector configuration
type Config struct {
	ManifestURL  string
	UniversalURL string
}

// Connector is the wallet-connection handle. It is created once at startup
// and passed to whoever needs it. No bridge session is run, so Account is
// always empty and Connected always reports false.
type Connector struct {
	cfg      Config
	clientID string
	account  string
	closed   bool
}

// New creates a connector with a fresh session
func New(cfg Config) (*Connector, error) {
	if cfg.ManifestURL == "" {
		return nil, fmt.Errorf("manifest url is required")
	}
	if _, err := url.ParseRequestURI(cfg.ManifestURL); err != nil {
		return nil, fmt.Errorf("invalid manifest url: %w", err)
	}
	c := &Connector{cfg: cfg}
	if err := c.newSession(); err != nil {
		return nil, err
	}
	return c, nil
}

// newSession generates the session key pair; the public key is the client id
func (c *Connector) newSession() error {
	pub, _, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generate session key: %w", err)
	}
	c.clientID = hex.EncodeToString(pub[:])
	return nil
}

func (c *Connector) ManifestURL() string { return c.cfg.ManifestURL }
func (c *Connector) ClientID() string { return c.clientID }
func (c *Connector) Connected() bool { return c.account != "" }
func (c *Connector) Account() string { return c.account }

type connectItem struct {
	Name string `json:"name"`
}

type connectRequest struct {
	ManifestURL string        `json:"manifestUrl"`
	Items       []connectItem `json:"items"`
}

// ConnectLink builds the universal link a wallet app opens to connect
func (c *Connector) ConnectLink(ret ReturnStrategy) (string, error) {
	if c.closed {
		return "", ErrClosed
	}
	if c.cfg.UniversalURL == "" {
		return "", fmt.Errorf("universal url is not configured")
	}

	req, err := json.Marshal(connectRequest{
		ManifestURL: c.cfg.ManifestURL,
		Items:       []connectItem{{Name: "ton_addr"}},
	})
	if err != nil {
		return "", err
	}

	u, err := url.Parse(c.cfg.UniversalURL)
	if err != nil {
		return "", fmt.Errorf("invalid universal url: %w", err)
	}
	q := u.Query()
	q.Set("v", "2")
	q.Set("id", c.clientID)
	q.Set("r", string(req))
	u.RawQuery = q.Encode()

	return AddReturnStrategy(u.String(), ret)
}

// Disconnect drops the account and starts a new session
func (c *Connector) Disconnect() error {
	if c.closed {
		return ErrClosed
	}
	c.account = ""
	return c.newSession()
}

// Close releases the handle
func (c *Connector) Close() {
	c.account = ""
	c.clientID = ""
	c.closed = true
}

// AddReturnStrategy appends the ret query parameter to rawURL
func AddReturnStrategy(rawURL string, ret ReturnStrategy) (string, error) {
	if ret != ReturnBack && ret != ReturnNone {
		return "", fmt.Errorf("%w: %q", ErrInvalidStrategy, ret)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parse %q: not an absolute url", rawURL)
	}
	q := u.Query()
	q.Add("ret", string(ret))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
