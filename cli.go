package main

import (
	"fmt"

	"jumper-tui/config"
	"jumper-tui/connector"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// -------------------- CLI --------------------

var (
	configPath string
	logFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Swap and bridge tokens from the terminal",
	Long: `jumper is a terminal swap page: pick a token to send and a token to
receive, enter an amount and connect a TON wallet.

Examples:
  jumper
  jumper --log
  jumper tokens usdt --limit 5`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file (JSON)")
	rootCmd.Flags().BoolVar(&logFlag, "log", false, "Open with the log panel visible")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logFlag {
		cfg.Logger = true
	}

	conn, err := connector.New(connector.Config{
		ManifestURL:  cfg.ManifestURL,
		UniversalURL: cfg.UniversalURL,
	})
	if err != nil {
		return fmt.Errorf("wallet connector: %w", err)
	}

	m := newModel(cfg, configPath, conn)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	m.teardown()
	return err
}
