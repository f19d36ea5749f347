package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/picatz/gemini"
	"github.com/spf13/cobra"
)

var modelsCommand = &cobra.Command{
	Use:   "models",
	Short: "List the models available for chat",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		client, err := newClient(cmd, logger)
		if errors.Is(err, errNotConfigured) {
			return nil
		}
		if err != nil {
			return err
		}

		return printModels(cmd, client, logger)
	},
}

func init() {
	rootCmd.AddCommand(modelsCommand)
}

// printModels prints the chat-capable models. If the catalog can't be
// fetched the fallback list is printed and the failure is logged.
func printModels(cmd *cobra.Command, l gemini.ModelLister, logger *slog.Logger) error {
	models, err := gemini.AvailableModels(cmd.Context(), l)
	if err != nil {
		logger.Warn("failed to list models, showing defaults", "kind", gemini.KindOf(err), "error", err)
	}

	w := cmd.OutOrStdout()

	fmt.Fprintln(w, styleBold.Render("Available Gemini models:"))
	for _, model := range models {
		fmt.Fprintln(w, "  - "+model)
	}

	return nil
}
