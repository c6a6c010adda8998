// Package suggest drafts resume summary text with Gemini. Suggestions
// are offered per experience level so the writer can pick the closest
// fit and edit from there.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-builder/internal/prompts"
)

const defaultModel = "gemini-1.5-flash"

// Suggestion is one drafted summary for an experience level.
type Suggestion struct {
	ExperienceLevel string `json:"experience_level"`
	Summary         string `json:"summary"`
}

// Suggester generates summary suggestions using Gemini.
type Suggester struct {
	client *genai.Client
	model  string
}

// New creates a Suggester with the given API key.
func New(ctx context.Context, apiKey string) (*Suggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Suggester{client: client, model: defaultModel}, nil
}

// SuggestSummaries drafts one summary per experience level for the job
// title.
func (s *Suggester) SuggestSummaries(ctx context.Context, jobTitle string) ([]Suggestion, error) {
	model := s.client.GenerativeModel(s.model)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(jobTitle)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}
	return ParseSuggestions(text)
}

// Close releases resources held by the client.
func (s *Suggester) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// BuildPrompt builds the suggestion prompt for a job title.
func BuildPrompt(jobTitle string) string {
	template := prompts.MustGet("suggest.json", "summary-suggestions")
	return prompts.Format(template, map[string]string{"JobTitle": jobTitle})
}

// ParseSuggestions parses the model output into suggestions. Markdown
// code fences are stripped first since models add them even when asked
// for bare JSON.
func ParseSuggestions(text string) ([]Suggestion, error) {
	cleaned := cleanJSONBlock(text)

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("no suggestions in response")
	}
	return suggestions, nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
