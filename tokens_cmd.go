package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"jumper-tui/catalog"
	"jumper-tui/config"
	"jumper-tui/helpers"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	tokensJSON  bool
	tokensLimit int
)

const loadTimeout = 30 * time.Second

var tokensCmd = &cobra.Command{
	Use:     "tokens [query]",
	Aliases: []string{"list-tokens", "ls"},
	Short:   "List tokens from the token catalog",
	Long: `Fetch the token catalog and print it, optionally filtered by a
case-insensitive match on name, symbol or address.

Examples:
  jumper tokens
  jumper tokens usd --limit 10
  jumper tokens 0xdac17f --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensJSON, "json", "j", false, "Output in JSON format")
	tokensCmd.Flags().IntVarP(&tokensLimit, "limit", "n", 0, "Show at most N tokens (0 = all)")
}

// tokenJSON is the machine-readable form of a token
type tokenJSON struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	ImageURL string `json:"imageUrl"`
	PriceUSD string `json:"priceUsd,omitempty"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tokens"})

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("load config", "err", err)
		return err
	}

	client := catalog.NewClient(catalog.Options{
		Endpoint:     cfg.TokensEndpoint,
		APIKey:       cfg.APIKey,
		ImageBaseURL: cfg.ImageBaseURL,
	})

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	if !tokensJSON {
		s.Suffix = " Fetching tokens..."
		s.Start()
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()
	tokens, err := client.Load(ctx)
	if !tokensJSON {
		s.Stop()
	}
	if err != nil {
		logger.Error("fetch tokens", "err", err)
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	list := limit(catalog.Filter(tokens, query), tokensLimit)

	if tokensJSON {
		return printTokensJSON(cmd, list)
	}
	printTokens(cmd, list, len(tokens))
	return nil
}

func limit(c catalog.Catalog, n int) catalog.Catalog {
	if n > 0 && len(c) > n {
		return c[:n]
	}
	return c
}

func printTokensJSON(cmd *cobra.Command, list catalog.Catalog) error {
	out := make([]tokenJSON, 0, len(list))
	for _, t := range list {
		j := tokenJSON{Name: t.Name, Symbol: t.Symbol, Address: t.Address, ImageURL: t.ImageURL}
		if t.HasPrice() {
			j.PriceUSD = t.PriceUSD.String()
		}
		out = append(out, j)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printTokens(cmd *cobra.Command, list catalog.Catalog, total int) {
	w := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(w, "\nNo tokens found")
		return
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	color.New(color.FgMagenta, color.Bold).Fprintf(w, "  %-10s %-30s %-12s %s\n", "SYMBOL", "NAME", "PRICE", "ADDRESS")
	fmt.Fprintln(w, strings.Repeat("=", 80))

	symbol := color.New(color.FgGreen, color.Bold)
	muted := color.New(color.FgHiBlack)
	for _, t := range list {
		symbol.Fprintf(w, "  %-10s ", helpers.Truncate(t.Symbol, 10))
		fmt.Fprintf(w, "%-30s %-12s ", helpers.Truncate(t.Name, 30), helpers.FormatPrice(t.PriceUSD, t.HasPrice()))
		muted.Fprintln(w, helpers.ChecksumAddress(t.Address))
	}
	fmt.Fprintf(w, "\n%d of %d tokens\n", len(list), total)
}
