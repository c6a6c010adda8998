package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Full Stack Developer")
	assert.Contains(t, prompt, "Job Title: Full Stack Developer")
	assert.Contains(t, prompt, "experience_level")
}

func TestParseSuggestions(t *testing.T) {
	raw := `[
		{"experience_level": "Fresher", "summary": "Recent graduate eager to build web applications."},
		{"experience_level": "Mid Level", "summary": "Developer with four years of production experience."},
		{"experience_level": "Senior", "summary": "Engineer leading delivery of large web platforms."}
	]`

	suggestions, err := ParseSuggestions(raw)
	require.NoError(t, err)
	require.Len(t, suggestions, 3)
	assert.Equal(t, "Fresher", suggestions[0].ExperienceLevel)
	assert.Contains(t, suggestions[2].Summary, "platforms")
}

func TestParseSuggestionsStripsCodeFence(t *testing.T) {
	raw := "```json\n[{\"experience_level\": \"Senior\", \"summary\": \"Seasoned engineer.\"}]\n```"

	suggestions, err := ParseSuggestions(raw)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Seasoned engineer.", suggestions[0].Summary)
}

func TestParseSuggestionsRejectsGarbage(t *testing.T) {
	_, err := ParseSuggestions("not json at all")
	assert.Error(t, err)

	_, err = ParseSuggestions("[]")
	assert.Error(t, err)
}
