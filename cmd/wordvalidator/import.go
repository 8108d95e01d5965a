package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AstroX11/word-vaildator-api/internal/app"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a word-list file into the PostgreSQL words table",
	Long: `Apply database migrations, then normalize every line of <file> and
store the resulting words. Words already present are skipped.
Requires DATABASE_DSN (or database.dsn in the config file).`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.DSN == "" {
		return errors.New("import: DATABASE_DSN is required")
	}

	n, err := app.Import(cmd.Context(), cfg, logger, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new words from %s.\n", n, args[0])
	return nil
}
