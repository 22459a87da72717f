// Package inference provides the optional pluggable text-understanding
// collaborator. Its suggestions are advisory only: the engine merges them
// with dictionary matches and never trusts them exclusively.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Collaborator proposes skills and keywords for a text span. Implementations
// may be unavailable; callers must fall back to dictionary extraction.
type Collaborator interface {
	// SuggestSkills returns a proposed set of skill terms for the text span.
	SuggestSkills(ctx context.Context, text string) ([]string, error)
	// Close releases any resources held by the collaborator
	Close() error
}

// GeminiCollaborator implements Collaborator using Google Gemini
type GeminiCollaborator struct {
	client *genai.Client
	model  string
}

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite"

const suggestPrompt = `You are a technical recruiter's assistant. List the concrete skills
(technologies, tools, certifications, soft skills) mentioned or clearly implied in the text
below. Respond ONLY with a JSON array of strings, no other text.

Text:
%s`

// NewGeminiCollaborator creates a Gemini-backed collaborator.
func NewGeminiCollaborator(ctx context.Context, apiKey, model string) (*GeminiCollaborator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCollaborator{client: client, model: model}, nil
}

// SuggestSkills asks the model for a skill list over the text span.
func (c *GeminiCollaborator) SuggestSkills(ctx context.Context, text string) ([]string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(suggestPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	return parseSkillArray(cleanJSONBlock(raw))
}

// Close releases resources held by the collaborator
func (c *GeminiCollaborator) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
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

// cleanJSONBlock removes markdown code block wrappers from JSON
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// parseSkillArray parses the model's JSON array, dropping empty entries.
func parseSkillArray(raw string) ([]string, error) {
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return nil, fmt.Errorf("failed to parse skill array: %w", err)
	}
	out := skills[:0]
	for _, s := range skills {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}
