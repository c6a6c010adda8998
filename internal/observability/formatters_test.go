package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	now := time.Now()
	rec := &types.ResumeRecord{
		ResumeDocument: types.ResumeDocument{
			ResumeID:      "abc-123",
			ResumeTitle:   "Frontend Engineer Resume",
			CandidateName: "James Carter",
			JobTitle:      "Frontend Engineer",
			Summary:       "Engineer who ships.",
			ThemeColor:    types.DefaultThemeColor,
			Education:     []types.EducationEntry{{Degree: "Master"}},
		},
		PublishedAt: &now,
	}
	p.PrintResume(rec)

	out := buf.String()
	assert.Contains(t, out, "RESUME")
	assert.Contains(t, out, "Frontend Engineer Resume")
	assert.Contains(t, out, "abc-123")
	assert.Contains(t, out, "education:  1 entries")
	assert.Contains(t, out, "summary:    present")
}

func TestPrintResumeNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintEducation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	start := types.NewDate(2022, time.January, 1)
	end := types.NewDate(2024, time.June, 1)
	p.PrintEducation([]types.EducationEntry{{
		Degree:         "Master",
		Major:          "Computer Science",
		UniversityName: "Western Illinois University",
		StartDate:      &start,
		EndDate:        &end,
	}})

	out := buf.String()
	assert.Contains(t, out, "Master in Computer Science, Western Illinois")
	assert.Contains(t, out, "Jan 2022")
}

func TestPrintSuggestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions([]suggest.Suggestion{
		{ExperienceLevel: "Senior", Summary: "Seasoned engineer."},
		{ExperienceLevel: "Fresher", Summary: "Eager graduate."},
	})

	out := buf.String()
	assert.Contains(t, out, "SUMMARY SUGGESTIONS")
	assert.Contains(t, out, "#1  Senior")
	assert.Contains(t, out, "#2  Fresher")
}

func TestPrintSuggestionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSuggestions(nil)
	assert.Empty(t, buf.String())
}
