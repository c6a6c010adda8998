package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/suggest"
)

var suggestJobTitle string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Draft summary suggestions for a job title",
	Long: `Ask the configured model for one drafted summary per experience
level (Senior, Mid Level, Fresher) for the given job title. Requires
GEMINI_API_KEY.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestJobTitle, "job-title", "", "Job title to draft summaries for (required)")
	_ = suggestCmd.MarkFlagRequired("job-title")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required for suggestions")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	sg, err := suggest.New(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create suggester: %w", err)
	}
	defer sg.Close()

	suggestions, err := sg.SuggestSummaries(ctx, suggestJobTitle)
	if err != nil {
		return fmt.Errorf("failed to draft suggestions: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSuggestions(suggestions)
	return nil
}
