package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeDocument_Valid(t *testing.T) {
	doc := types.NewResumeDocument("Frontend Engineer Resume", "dev@example.com")
	doc.CandidateName = "James Carter"
	doc.Summary = "Frontend engineer with five years of experience."

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeDocument(data))
}

func TestValidateResumeDocument_MissingResumeID(t *testing.T) {
	err := ValidateResumeDocument([]byte(`{"resumeTitle": "Untitled"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumeDocument_ThemeColorShapes(t *testing.T) {
	for _, tc := range []string{`"#ef4444"`, `null`, `{"color": "#10b981"}`} {
		payload := []byte(`{"resumeId":"abc-123","resumeTitle":"T","themeColor":` + tc + `}`)
		assert.NoError(t, ValidateResumeDocument(payload), tc)
	}
	assert.Error(t, ValidateResumeDocument([]byte(`{"resumeId":"abc-123","resumeTitle":"T","themeColor":42}`)))
}

func TestValidateResumeDocument_ProjectFieldsRequired(t *testing.T) {
	payload := []byte(`{
		"resumeId": "abc-123",
		"resumeTitle": "T",
		"projects": [{"projectName": "Portfolio", "description": "A site"}]
	}`)

	err := ValidateResumeDocument(payload)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "completionDate")
}

func TestValidateResumeDocument_UnknownFieldRejected(t *testing.T) {
	payload := []byte(`{"resumeId": "abc-123", "resumeTitle": "T", "nickname": "x"}`)
	assert.Error(t, ValidateResumeDocument(payload))
}

func TestValidateResumeDocument_BadDateFormat(t *testing.T) {
	payload := []byte(`{
		"resumeId": "abc-123",
		"resumeTitle": "T",
		"education": [{"universityName": "MIT", "startDate": "Jan 2022"}]
	}`)
	assert.Error(t, ValidateResumeDocument(payload))
}
