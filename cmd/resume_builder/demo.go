package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/gateway"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	demoOutput  string
	demoVerbose bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted editing session against in-memory storage",
	Long: `Create a resume in in-memory storage, edit it section by section
through an editing session and write the resulting preview HTML. Useful
for exercising the editing flow without a database.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoOutput, "out", "demo.html", "Output path for the preview HTML")
	demoCmd.Flags().BoolVarP(&demoVerbose, "verbose", "v", false, "Print the resume state after each save")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gw := gateway.NewMemory()
	doc := types.NewResumeDocument("Frontend Engineer Resume", "demo@example.com")
	rec, err := gw.CreateResume(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	s, err := session.Open(ctx, gw, rec.ResumeID, editor.LogNotifier{})
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer s.Close()

	steps := s.Sequencer()

	personal := steps.Active().Editor.(*editor.PersonalEditor)
	for field, value := range map[string]string{
		"candidateName": "James Carter",
		"jobTitle":      "Frontend Engineer",
		"address":       "525 N Tryon Street, NC 28117",
		"phone":         "(123) 456-7890",
		"email":         "demo@example.com",
	} {
		if err := personal.SetField(field, value); err != nil {
			return err
		}
	}
	if err := personal.Save(ctx); err != nil {
		return fmt.Errorf("failed to save personal details: %w", err)
	}

	steps.Next()
	summary := steps.Active().Editor.(*editor.SummaryEditor)
	summary.SetText("Frontend engineer with five years of experience building resilient web applications.")
	if err := summary.Save(ctx); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	if demoVerbose {
		stored, err := gw.FetchResumeByPublicID(ctx, rec.ResumeID)
		if err != nil {
			return err
		}
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintResume(stored)
		printer.PrintEducation(stored.Education)
	}

	html := s.Preview().HTML()
	if err := os.WriteFile(demoOutput, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %s (resumeId %s)\n", demoOutput, rec.ResumeID)
	return nil
}
