package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AstroX11/word-vaildator-api/internal/app"
	"github.com/AstroX11/word-vaildator-api/internal/config"
)

// configPath is the --config flag value; empty means CONFIG_PATH or ./config.yaml.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "wordvalidator",
	Short: "Word Validator API",
	Long: `wordvalidator checks whether a word exists, first in a local word list
and then against external dictionary APIs (freedict, datamuse, merriam).

Without a subcommand it runs the HTTP server.`,
	Version:       app.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.SetVersionTemplate("wordvalidator {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
}

// loadConfig reads configuration and builds the process logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}
