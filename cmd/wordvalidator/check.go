package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/AstroX11/word-vaildator-api/internal/app"
)

var checkCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "Validate one word and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkOutput struct {
	Word     string `json:"word"`
	Found    bool   `json:"found"`
	Source   string `json:"source"`
	Provider string `json:"provider,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Service().Validate(cmd.Context(), args[0], true)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(checkOutput{
		Word:     result.Word.String(),
		Found:    result.Found,
		Source:   result.Source.String(),
		Provider: result.Provider,
	})
}
