// Package preview renders the read-only resume preview: six pure
// projections of the in-memory document, themed by the selected color,
// with empty sections omitted entirely.
package preview

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed preview.tmpl
var previewTemplate string

var tmpl = template.Must(template.New("preview").Parse(previewTemplate))

// personalView is the personal-details section after normalization.
type personalView struct {
	CandidateName string
	JobTitle      string
	Address       string
	Phone         string
	Email         string
	LinkedinURL   string
	GithubURL     string
}

type entryView struct {
	Title       string
	DateRange   string
	Description string
}

// documentView is the fully resolved data handed to the template. Every
// section decides for itself whether it renders at all: a nil/empty value
// here means the section is omitted.
type documentView struct {
	Theme      types.ThemeColor
	Personal   *personalView
	Summary    string
	Education  []entryView
	Experience []entryView
	Projects   []entryView
	Skills     string
}

// RenderHTML renders the preview for a document. The output is a pure
// function of the document and theme color: no dependency on edit order,
// only final state.
func RenderHTML(doc types.ResumeDocument) (string, error) {
	view := buildView(doc)
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.String(), nil
}

func buildView(doc types.ResumeDocument) documentView {
	return documentView{
		Theme:      doc.ThemeColor.Normalize(),
		Personal:   buildPersonal(doc),
		Summary:    strings.TrimSpace(doc.Summary),
		Education:  buildEducation(doc.Education),
		Experience: buildExperience(doc.Experience),
		Projects:   buildProjects(doc.Projects),
		Skills:     strings.TrimSpace(doc.Skills),
	}
}

// buildPersonal returns nil when every personal field is blank, so the
// preview renders nothing at all for the section.
func buildPersonal(doc types.ResumeDocument) *personalView {
	fields := []string{doc.CandidateName, doc.JobTitle, doc.Address, doc.Phone, doc.Email, doc.Linkedin, doc.Github}
	empty := true
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			empty = false
			break
		}
	}
	if empty {
		return nil
	}
	return &personalView{
		CandidateName: doc.CandidateName,
		JobTitle:      doc.JobTitle,
		Address:       doc.Address,
		Phone:         doc.Phone,
		Email:         doc.Email,
		LinkedinURL:   profileURL(doc.Linkedin),
		GithubURL:     profileURL(doc.Github),
	}
}

// profileURL normalizes a bare social-profile handle into a full link by
// prefixing a protocol when the stored value doesn't already include one.
func profileURL(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http") {
		return v
	}
	return "https://" + v
}

func buildEducation(entries []types.EducationEntry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, edu := range entries {
		title := edu.Degree
		if edu.Major != "" {
			title += " in " + edu.Major
		}
		if edu.UniversityName != "" {
			title += ", " + edu.UniversityName
		}
		out = append(out, entryView{
			Title:       strings.TrimLeft(title, " ,"),
			DateRange:   types.FormatDateRange(edu.StartDate, edu.EndDate),
			Description: edu.Description,
		})
	}
	return out
}

func buildExperience(entries []types.ExperienceEntry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, exp := range entries {
		title := exp.Title
		if exp.CompanyName != "" {
			title += ", " + exp.CompanyName
		}
		if loc := joinNonEmpty(", ", exp.City, exp.State); loc != "" {
			title += " (" + loc + ")"
		}
		out = append(out, entryView{
			Title:       strings.TrimLeft(title, " ,"),
			DateRange:   types.FormatDateRange(exp.StartDate, exp.EndDate),
			Description: exp.WorkSummery,
		})
	}
	return out
}

func buildProjects(entries []types.ProjectEntry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, p := range entries {
		name := p.ProjectName
		if name == "" {
			name = "Untitled Project"
		}
		out = append(out, entryView{
			Title:       name,
			DateRange:   formatCompletionDate(p.CompletionDate),
			Description: p.Description,
		})
	}
	return out
}

// formatCompletionDate formats a stored completion date for display,
// falling back to the raw value when it isn't a calendar date.
func formatCompletionDate(v string) string {
	if v == "" {
		return ""
	}
	if d, err := types.ParseDate(v); err == nil {
		return d.MonthYear()
	}
	return v
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
