package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{
		Endpoint:     srv.URL + "/getTopTokens",
		APIKey:       "test-key",
		ImageBaseURL: "https://ethplorer.io/",
	})
}

func TestLoad_MapsTokens(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getTopTokens", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tokens":[
			{"name":"Tether USD","address":"0xdac17f958d2ee523a2206206994597c13d831ec7","symbol":"USDT","image":"/images/USDT.png","price":{"rate":1.0002}},
			{"name":"Mystery","address":"0x01","symbol":"MYS","image":"","price":false},
			{"name":"Remote","address":"0x02","symbol":"RMT","image":"https://cdn.example/rmt.png"}
		]}`))
	})

	got, err := c.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Tether USD", got[0].Name)
	assert.Equal(t, "USDT", got[0].Symbol)
	assert.True(t, got[0].PriceUSD.Equal(decimal.RequireFromString("1.0002")))
	assert.Equal(t, "https://ethplorer.io/images/USDT.png", got[0].ImageURL)
	assert.True(t, got[0].HasPrice())

	assert.Equal(t, "", got[1].ImageURL)
	assert.False(t, got[1].HasPrice())

	assert.Equal(t, "https://cdn.example/rmt.png", got[2].ImageURL)
}

func TestLoad_MissingTokensIsEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"missing": `{}`,
		"null":    `{"tokens":null}`,
		"empty":   `{"tokens":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			got, err := c.Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tokens":[`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			got, err := c.Load(context.Background())
			assert.Nil(t, got)

			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, FetchFailedMessage, le.Message)
			assert.NotNil(t, le.Unwrap())
		})
	}
}

func TestLoad_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c := NewClient(Options{Endpoint: endpoint})
	_, err := c.Load(context.Background())

	var le *LoadError
	assert.ErrorAs(t, err, &le)
}

func TestRequestURL_KeepsExistingQuery(t *testing.T) {
	c := NewClient(Options{Endpoint: "https://api.example/top?limit=50", APIKey: "k"})
	u, err := c.requestURL()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example/top?apiKey=k&limit=50", u)
}
