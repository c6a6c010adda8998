package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestPatchAssignmentsSingleField(t *testing.T) {
	summary := "Engineer who ships."
	set, args, err := patchAssignments(types.ResumePatch{Summary: &summary})

	require.NoError(t, err)
	assert.Equal(t, "summary = $1", set)
	assert.Equal(t, []any{"Engineer who ships."}, args)
}

func TestPatchAssignmentsPlaceholderNumbering(t *testing.T) {
	name := "James Carter"
	title := "Frontend Engineer"
	skills := "Go"
	set, args, err := patchAssignments(types.ResumePatch{
		CandidateName: &name,
		JobTitle:      &title,
		Skills:        &skills,
	})

	require.NoError(t, err)
	assert.Equal(t, "candidate_name = $1, job_title = $2, skills = $3", set)
	assert.Equal(t, []any{"James Carter", "Frontend Engineer", "Go"}, args)
}

func TestPatchAssignmentsOmitsAbsentFields(t *testing.T) {
	email := "james@example.com"
	set, _, err := patchAssignments(types.ResumePatch{Email: &email})

	require.NoError(t, err)
	assert.NotContains(t, set, "summary")
	assert.NotContains(t, set, "education")
	assert.NotContains(t, set, "theme_color")
}

func TestPatchAssignmentsListsMarshalToJSON(t *testing.T) {
	entries := []types.EducationEntry{{UniversityName: "Western Illinois University", Degree: "Master"}}
	set, args, err := patchAssignments(types.ResumePatch{Education: &entries})

	require.NoError(t, err)
	assert.Equal(t, "education = $1", set)
	require.Len(t, args, 1)
	data, ok := args[0].([]byte)
	require.True(t, ok)
	assert.Contains(t, string(data), `"universityName":"Western Illinois University"`)
}

func TestPatchAssignmentsEmptyListClearsSection(t *testing.T) {
	entries := []types.ExperienceEntry{}
	set, args, err := patchAssignments(types.ResumePatch{Experience: &entries})

	require.NoError(t, err)
	assert.Equal(t, "experience = $1", set)
	require.Len(t, args, 1)
	assert.Equal(t, "[]", string(args[0].([]byte)))
}

func TestPatchAssignmentsThemeColorNormalized(t *testing.T) {
	theme := types.ThemeColor("")
	set, args, err := patchAssignments(types.ResumePatch{ThemeColor: &theme})

	require.NoError(t, err)
	assert.Equal(t, "theme_color = $1", set)
	assert.Equal(t, []any{string(types.DefaultThemeColor)}, args)
}

func TestPatchAssignmentsColumnOrderIsStable(t *testing.T) {
	summary := "s"
	theme := types.ThemeColor("#ef4444")
	projects := []types.ProjectEntry{}
	set, args, err := patchAssignments(types.ResumePatch{
		Summary:    &summary,
		Projects:   &projects,
		ThemeColor: &theme,
	})

	require.NoError(t, err)
	// Strings first, then jsonb lists, then the theme color.
	assert.Equal(t, "summary = $1, projects = $2, theme_color = $3", set)
	assert.Len(t, args, 3)
}

func TestMarshalListsEmptyDocument(t *testing.T) {
	education, experience, projects, err := marshalLists(types.NewResumeDocument("T", "a@b.c"))

	require.NoError(t, err)
	assert.Equal(t, "[]", string(education))
	assert.Equal(t, "[]", string(experience))
	assert.Equal(t, "[]", string(projects))
}
