package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	cfg, err := Load(path)
	require.NoError(t, err)

	d := DefaultConfig()
	assert.Equal(t, d.TokensEndpoint, cfg.TokensEndpoint)
	assert.Equal(t, d.ImageBaseURL, cfg.ImageBaseURL)
	assert.Equal(t, d.ManifestURL, cfg.ManifestURL)
	assert.Equal(t, d.Settings, cfg.Settings)
	assert.Equal(t, d.Partners, cfg.Partners)
	assert.False(t, cfg.Logger)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JUMPER_API_KEY", "EK-test")
	t.Setenv("JUMPER_TOKENS_ENDPOINT", "http://localhost:9999/top")
	t.Setenv("ETH_RPC_URL", "http://localhost:8545")
	t.Setenv("PROJECT_ID", "proj-1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "EK-test", cfg.APIKey)
	assert.Equal(t, "http://localhost:9999/top", cfg.TokensEndpoint)
	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	assert.Equal(t, "proj-1", cfg.ProjectID)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.json")
	cfg := DefaultConfig()
	cfg.Logger = true
	cfg.Settings.GasPrice = "Fast"
	cfg.Settings.Slippage = "1%"
	cfg.Partners = []Partner{{Name: "Stargate", Path: "/stargate", Destination: "https://www.stargatefinance.org/stargate"}}

	require.NoError(t, Save(path, cfg))
	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.True(t, got.Logger)
	assert.Equal(t, "Fast", got.Settings.GasPrice)
	assert.Equal(t, "1%", got.Settings.Slippage)
	assert.Equal(t, "Best Return", got.Settings.RoutePriority)
	assert.Equal(t, cfg.Partners, got.Partners)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownSettingFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"settings":{"gas_price":"Ludicrous","slippage":"3%"}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Normal", cfg.Settings.GasPrice)
	assert.Equal(t, "3%", cfg.Settings.Slippage)
}

func TestEffectiveRPCURL(t *testing.T) {
	assert.Equal(t, "", Config{}.EffectiveRPCURL())
	assert.Equal(t, "https://mainnet.infura.io/v3/abc", Config{InfuraAPIKey: "abc"}.EffectiveRPCURL())
	assert.Equal(t, "http://node:8545", Config{RPCURL: "http://node:8545", InfuraAPIKey: "abc"}.EffectiveRPCURL())
}

func TestPartnerURL(t *testing.T) {
	cfg := DefaultConfig()
	dest, ok := cfg.PartnerURL("/symbiosis")
	assert.True(t, ok)
	assert.Equal(t, "https://symbiosisfinances.com", dest)

	_, ok = cfg.PartnerURL("/jumper")
	assert.False(t, ok)
}
