package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func render(t *testing.T, doc types.ResumeDocument) *goquery.Document {
	t.Helper()
	html, err := RenderHTML(doc)
	require.NoError(t, err)
	return parse(t, html)
}

func TestEmptyDocumentOmitsEverySection(t *testing.T) {
	page := render(t, types.ResumeDocument{})

	assert.Zero(t, page.Find(".personal").Length())
	for _, section := range []string{"summary", "education", "experience", "projects", "skills"} {
		assert.Zero(t, page.Find(`[data-section="`+section+`"]`).Length(), section)
	}
}

func TestPersonalSection(t *testing.T) {
	doc := types.ResumeDocument{
		CandidateName: "James Carter",
		JobTitle:      "Frontend Engineer",
		Address:       "525 N Tryon Street, NC 28117",
		Phone:         "(123) 456-7890",
		Email:         "james@example.com",
		Linkedin:      "linkedin.com/in/james",
		Github:        "https://github.com/james",
	}
	page := render(t, doc)

	assert.Equal(t, "James Carter", page.Find(".personal h2").Text())
	assert.Equal(t, "Frontend Engineer", page.Find(".personal .job-title").Text())

	// Bare handles get a protocol; full URLs pass through unchanged.
	linkedin, _ := page.Find(`a:contains("LinkedIn")`).Attr("href")
	assert.Equal(t, "https://linkedin.com/in/james", linkedin)
	github, _ := page.Find(`a:contains("GitHub")`).Attr("href")
	assert.Equal(t, "https://github.com/james", github)
}

func TestEducationEntryComposition(t *testing.T) {
	start := types.NewDate(2022, time.January, 1)
	end := types.NewDate(2024, time.June, 1)
	doc := types.ResumeDocument{
		Education: []types.EducationEntry{{
			UniversityName: "Western Illinois University",
			Degree:         "Master",
			Major:          "Computer Science",
			StartDate:      &start,
			EndDate:        &end,
			Description:    "Graduate coursework in distributed systems.",
		}},
	}
	page := render(t, doc)

	section := page.Find(`[data-section="education"]`)
	require.Equal(t, 1, section.Length())
	assert.Equal(t, "Master in Computer Science, Western Illinois University",
		section.Find(".section-title").Text())
	assert.Equal(t, "Jan 2022 – Jun 2024", section.Find(".section-date").Text())
}

func TestEducationDegreeOnlyOmitsDateElement(t *testing.T) {
	doc := types.ResumeDocument{
		Education: []types.EducationEntry{{Degree: "Master"}},
	}
	page := render(t, doc)

	section := page.Find(`[data-section="education"]`)
	assert.Equal(t, "Master", section.Find(".section-title").Text())
	assert.Zero(t, section.Find(".section-date").Length())
}

func TestExperienceTitleComposition(t *testing.T) {
	doc := types.ResumeDocument{
		Experience: []types.ExperienceEntry{{
			Title:       "Frontend Engineer",
			CompanyName: "Amazon",
			City:        "Seattle",
			State:       "WA",
		}},
	}
	page := render(t, doc)

	title := page.Find(`[data-section="experience"] .section-title`).Text()
	assert.Equal(t, "Frontend Engineer, Amazon (Seattle, WA)", title)
}

func TestProjectFallbackTitleAndRawDate(t *testing.T) {
	doc := types.ResumeDocument{
		Projects: []types.ProjectEntry{
			{ProjectName: "", CompletionDate: "June 2024", Description: "A site"},
			{ProjectName: "Tracker", CompletionDate: "2024-06-01", Description: "An app"},
		},
	}
	page := render(t, doc)

	section := page.Find(`[data-section="projects"]`)
	titles := section.Find(".section-title").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"Untitled Project", "Tracker"}, titles)

	dates := section.Find(".section-date").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	// A non-calendar completion date renders raw; a calendar one is
	// formatted for display.
	assert.Equal(t, []string{"June 2024", "Jun 2024"}, dates)
}

func TestThemeColorAppliedWithoutSave(t *testing.T) {
	doc := types.ResumeDocument{Summary: "Engineer.", ThemeColor: "#ef4444"}
	page := render(t, doc)

	style, _ := page.Find(".resume-section-header").Attr("style")
	assert.Contains(t, style, "#ef4444")
	underline, _ := page.Find(".resume-section-underline").Attr("style")
	assert.Contains(t, underline, "#ef4444")
}

func TestRenderIsPureFunctionOfFinalState(t *testing.T) {
	a := types.ResumeDocument{Summary: "Same", Skills: "Go"}

	// Build the same final state in a different order.
	b := types.ResumeDocument{}
	b.Skills = "Go"
	b.Summary = "Same"

	htmlA, err := RenderHTML(a)
	require.NoError(t, err)
	htmlB, err := RenderHTML(b)
	require.NoError(t, err)
	assert.Equal(t, htmlA, htmlB)
}

func TestWhitespaceOnlySectionOmitted(t *testing.T) {
	doc := types.ResumeDocument{Summary: "   \n\t "}
	page := render(t, doc)
	assert.Zero(t, page.Find(`[data-section="summary"]`).Length())
}
