package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	renderInput  string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file to preview HTML or PDF",
	Long: `Render a resume document to the preview HTML, or to PDF when the
output path ends in .pdf. The input file holds one resume document in
the stored JSON shape.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVar(&renderOutput, "out", "resume.html", "Output path (.html or .pdf)")
	_ = renderCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateResumeDocument(data); err != nil {
		return fmt.Errorf("invalid resume document: %w", err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse resume document: %w", err)
	}
	doc.Normalize()

	html, err := preview.RenderHTML(doc)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	if strings.HasSuffix(renderOutput, ".pdf") {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		pdf, err := export.NewRenderer().RenderPDF(ctx, html)
		if err != nil {
			return fmt.Errorf("failed to render PDF: %w", err)
		}
		if err := os.WriteFile(renderOutput, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := os.WriteFile(renderOutput, []byte(html), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	fmt.Printf("Wrote %s\n", renderOutput)
	return nil
}
