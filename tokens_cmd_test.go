package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"jumper-tui/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(okHandler))
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "jumper.json")
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(`{"tokens_endpoint":%q}`, srv.URL)), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"tokens", "--config", path}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTokensCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "usd", "--json", "--limit", "0")
	require.NoError(t, err)

	var got []tokenJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "USDT", got[0].Symbol)
	assert.Equal(t, "https://ethplorer.io/images/usdt.png", got[0].ImageURL)
	assert.Equal(t, "1.0002", got[0].PriceUSD)
	assert.Equal(t, "USDC", got[1].Symbol)
}

func TestTokensCommand_Table(t *testing.T) {
	out, err := runCLI(t, "--json=false", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "USDT")
	assert.NotContains(t, out, "LINK")
	assert.Contains(t, out, "1 of 3 tokens")
}

func TestLimit(t *testing.T) {
	c := catalog.Catalog{{Symbol: "A"}, {Symbol: "B"}, {Symbol: "C"}}
	assert.Len(t, limit(c, 0), 3)
	assert.Len(t, limit(c, 2), 2)
	assert.Len(t, limit(c, 5), 3)
}
