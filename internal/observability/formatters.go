// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a stored resume.
func (p *Printer) PrintResume(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", rec.ResumeTitle))
	sb.WriteString(fmt.Sprintf("ResumeId: %s\n", rec.ResumeID))
	if rec.CandidateName != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", rec.CandidateName))
	}
	if rec.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", rec.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Theme:    %s\n", rec.ThemeColor))
	sb.WriteString("\n")

	sb.WriteString("Sections:\n")
	sb.WriteString(fmt.Sprintf("  • education:  %d entries\n", len(rec.Education)))
	sb.WriteString(fmt.Sprintf("  • experience: %d entries\n", len(rec.Experience)))
	sb.WriteString(fmt.Sprintf("  • projects:   %d entries\n", len(rec.Projects)))
	if rec.Summary != "" {
		sb.WriteString("  • summary:    present\n")
	}
	if rec.Skills != "" {
		sb.WriteString("  • skills:     present\n")
	}

	if rec.PublishedAt != nil {
		sb.WriteString(fmt.Sprintf("\nPublished: %s", rec.PublishedAt.Format("2006-01-02 15:04:05")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEducation outputs the resume's education entries.
func (p *Printer) PrintEducation(entries []types.EducationEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		e := entries[i]
		title := e.Degree
		if e.Major != "" {
			title += " in " + e.Major
		}
		if e.UniversityName != "" {
			title += ", " + e.UniversityName
		}
		sb.WriteString(fmt.Sprintf("• %s\n", strings.TrimPrefix(title, ", ")))
		if r := types.FormatDateRange(e.StartDate, e.EndDate); r != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", r))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(entries)-maxItemsToShow))
	}

	p.printBox("EDUCATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs drafted summary suggestions per experience level.
func (p *Printer) PrintSuggestions(suggestions []suggest.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range suggestions {
		text := s.Summary
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.ExperienceLevel))
		sb.WriteString(fmt.Sprintf("    %s\n", text))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUMMARY SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSaveResult outputs the outcome of one section save.
func (p *Printer) PrintSaveResult(section string, rec *types.ResumeRecord) {
	if rec == nil {
		return
	}
	content := fmt.Sprintf("Section:  %s\nUpdated:  %s", section,
		rec.UpdatedAt.Format("2006-01-02 15:04:05"))
	p.printBox("SAVED", content)
}
