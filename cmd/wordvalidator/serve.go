package main

import (
	"github.com/spf13/cobra"

	"github.com/AstroX11/word-vaildator-api/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server exposing GET / and GET /word?word=<text>,
plus /live, /ready, /health and the Prometheus metrics endpoint.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	return app.Run(cmd.Context(), cfg, logger)
}
