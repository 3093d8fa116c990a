package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FetchFailedMessage is shown to the user whenever a load fails
const FetchFailedMessage = "Failed to fetch tokens. Please try again later."

// LoadError describes a failed catalog load
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error { return e.Err }

func loadError(format string, args ...any) *LoadError {
	return &LoadError{Message: FetchFailedMessage, Err: fmt.Errorf(format, args...)}
}

// Options configures a Client
type Options struct {
	Endpoint     string
	APIKey       string
	ImageBaseURL string
	HTTPClient   *http.Client
	Timeout      time.Duration
}

// Client fetches the token list from the remote endpoint
type Client struct {
	endpoint  string
	apiKey    string
	imageBase string
	http      *http.Client
	timeout   time.Duration
}

// NewClient creates a token list client
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		endpoint:  opts.Endpoint,
		apiKey:    opts.APIKey,
		imageBase: strings.TrimRight(opts.ImageBaseURL, "/"),
		http:      hc,
		timeout:   timeout,
	}
}

// wire format of the endpoint response
type tokensResponse struct {
	Tokens []rawToken `json:"tokens"`
}

type rawToken struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Symbol  string   `json:"symbol"`
	Image   string   `json:"image"`
	Price   rawPrice `json:"price"`
}

// rawPrice is either `false` or an object carrying a rate
type rawPrice struct {
	Rate decimal.Decimal
}

func (p *rawPrice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		p.Rate = decimal.Zero
		return nil
	}
	var obj struct {
		Rate decimal.NullDecimal `json:"rate"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Rate.Valid {
		p.Rate = obj.Rate.Decimal
	}
	return nil
}

// requestURL appends the api key to the endpoint, keeping any existing query
func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	if c.apiKey != "" {
		q := u.Query()
		q.Set("apiKey", c.apiKey)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) imageURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return c.imageBase + image
}

// Load fetches the token list once. All failures are returned as *LoadError.
func (c *Client) Load(ctx context.Context) (Catalog, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL, err := c.requestURL()
	if err != nil {
		return nil, loadError("bad endpoint %q: %w", c.endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, loadError("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, loadError("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, loadError("endpoint returned status %d", resp.StatusCode)
	}

	var body tokensResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, loadError("decode response: %w", err)
	}

	out := make(Catalog, 0, len(body.Tokens))
	for _, t := range body.Tokens {
		out = append(out, Token{
			Name:     t.Name,
			Address:  t.Address,
			Symbol:   t.Symbol,
			ImageURL: c.imageURL(t.Image),
			PriceUSD: t.Price.Rate,
		})
	}
	return out, nil
}
