package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	TokensEndpoint string    `mapstructure:"tokens_endpoint" json:"tokens_endpoint"`
	APIKey         string    `mapstructure:"api_key" json:"api_key,omitempty"`
	ImageBaseURL   string    `mapstructure:"image_base_url" json:"image_base_url"`
	ManifestURL    string    `mapstructure:"manifest_url" json:"manifest_url"`
	UniversalURL   string    `mapstructure:"universal_url" json:"universal_url"`
	RPCURL         string    `mapstructure:"rpc_url" json:"rpc_url,omitempty"`
	InfuraAPIKey   string    `mapstructure:"infura_api_key" json:"-"`
	ProjectID      string    `mapstructure:"project_id" json:"-"`
	Partners       []Partner `mapstructure:"partners" json:"partners"`
	Settings       Settings  `mapstructure:"settings" json:"settings"`
	Logger         bool      `mapstructure:"logger" json:"logger"`
}

// Partner is a route forwarded to an external partner site
type Partner struct {
	Name        string `mapstructure:"name" json:"name"`
	Path        string `mapstructure:"path" json:"path"`
	Destination string `mapstructure:"destination" json:"destination"`
}

// Settings are the swap preferences shown on the settings screen
type Settings struct {
	RoutePriority string `mapstructure:"route_priority" json:"route_priority"`
	GasPrice      string `mapstructure:"gas_price" json:"gas_price"`
	Slippage      string `mapstructure:"slippage" json:"slippage"`
}

// Choices offered on the settings screen
var (
	RoutePriorities = []string{"Best Return", "Fastest"}
	GasPrices       = []string{"Slow", "Normal", "Fast"}
	Slippages       = []string{"0.3%", "0.5%", "1%", "3%"}
)

// Bridge and exchange counts shown as read-only rows
const (
	BridgesEnabled   = "20/20"
	ExchangesEnabled = "32/32"
)

// DefaultPath returns ~/.jumper-config.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".jumper-config.json")
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		TokensEndpoint: "https://api.ethplorer.io/getTopTokens",
		APIKey:         "freekey",
		ImageBaseURL:   "https://ethplorer.io",
		ManifestURL:    "https://symbiosisfinances.com/tonconnect-manifest.json",
		UniversalURL:   "https://app.tonkeeper.com/ton-connect",
		Partners: []Partner{
			{Name: "Stargate", Path: "/stargate", Destination: "https://www.stargatefinance.org/stargate"},
			{Name: "Symbiosis", Path: "/symbiosis", Destination: "https://symbiosisfinances.com"},
		},
		Settings: Settings{
			RoutePriority: "Best Return",
			GasPrice:      "Normal",
			Slippage:      "0.5%",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("tokens_endpoint", d.TokensEndpoint)
	v.SetDefault("api_key", d.APIKey)
	v.SetDefault("image_base_url", d.ImageBaseURL)
	v.SetDefault("manifest_url", d.ManifestURL)
	v.SetDefault("universal_url", d.UniversalURL)
	v.SetDefault("partners", d.Partners)
	v.SetDefault("settings.route_priority", d.Settings.RoutePriority)
	v.SetDefault("settings.gas_price", d.Settings.GasPrice)
	v.SetDefault("settings.slippage", d.Settings.Slippage)
	v.SetDefault("logger", false)
}

// Load reads the config file at path (if any), a .env file in the working
// directory (if any) and the environment. JUMPER_* variables override the
// file; ETH_RPC_URL, INFURA_API_KEY and PROJECT_ID are read unprefixed.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("JUMPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("rpc_url", "JUMPER_RPC_URL", "ETH_RPC_URL")
	_ = v.BindEnv("infura_api_key", "JUMPER_INFURA_API_KEY", "INFURA_API_KEY")
	_ = v.BindEnv("project_id", "JUMPER_PROJECT_ID", "PROJECT_ID")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Settings = cfg.Settings.normalized()
	return cfg, nil
}

// Save writes the persisted part of the config to path
func Save(path string, cfg Config) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set("tokens_endpoint", cfg.TokensEndpoint)
	v.Set("image_base_url", cfg.ImageBaseURL)
	v.Set("manifest_url", cfg.ManifestURL)
	v.Set("universal_url", cfg.UniversalURL)
	v.Set("partners", cfg.Partners)
	v.Set("settings", map[string]string{
		"route_priority": cfg.Settings.RoutePriority,
		"gas_price":      cfg.Settings.GasPrice,
		"slippage":       cfg.Settings.Slippage,
	})
	v.Set("logger", cfg.Logger)
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// EffectiveRPCURL returns the configured RPC URL, falling back to an Infura
// mainnet endpoint when only an Infura key is set
func (c Config) EffectiveRPCURL() string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	if c.InfuraAPIKey != "" {
		return "https://mainnet.infura.io/v3/" + c.InfuraAPIKey
	}
	return ""
}

// PartnerURL resolves a route path to its partner destination
func (c Config) PartnerURL(path string) (string, bool) {
	for _, p := range c.Partners {
		if p.Path == path {
			return p.Destination, true
		}
	}
	return "", false
}

// normalized replaces unknown values with defaults
func (s Settings) normalized() Settings {
	d := DefaultConfig().Settings
	if !contains(RoutePriorities, s.RoutePriority) {
		s.RoutePriority = d.RoutePriority
	}
	if !contains(GasPrices, s.GasPrice) {
		s.GasPrice = d.GasPrice
	}
	if !contains(Slippages, s.Slippage) {
		s.Slippage = d.Slippage
	}
	return s
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
