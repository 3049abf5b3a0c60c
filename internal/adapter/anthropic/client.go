// Package anthropic adapts the Anthropic Messages API to the model
// operations the workers need: summarizing a card against retrieved
// context and drafting a cover spec. Responses are free-form text; the
// JSON payload is extracted and validated before it is decoded.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hexbolt/taskboard-backend/internal/config"
	"github.com/hexbolt/taskboard-backend/internal/domain"
)

// Client wraps the Anthropic SDK with the module's model settings.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// New creates a model client from the AI configuration.
func New(cfg config.AIConfig) *Client {
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
	}
}

// GenerateAnswer asks the model to summarize a card using the retrieved
// chunks as context. The returned answer is raw model output: its
// citations are claims, not facts, and must be grounded before use.
func (c *Client) GenerateAnswer(ctx context.Context, cardTitle string, chunks []domain.RetrievedChunk) (*domain.ModelAnswer, error) {
	contextJSON, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal chunks: %w", err)
	}

	prompt := buildAnswerPrompt(cardTitle, string(contextJSON))

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var answer domain.ModelAnswer
	if err := json.Unmarshal([]byte(raw), &answer); err != nil {
		return nil, fmt.Errorf("decode model answer: %w", err)
	}
	if answer.Text == "" {
		return nil, fmt.Errorf("model answer has no text")
	}

	return &answer, nil
}

// GenerateCoverSpec asks the model for a small visual spec (palette,
// emoji, caption) describing the card.
func (c *Client) GenerateCoverSpec(ctx context.Context, cardTitle string, cardDescription string) (*domain.CoverSpec, error) {
	prompt := buildCoverPrompt(cardTitle, cardDescription)

	raw, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var spec domain.CoverSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, fmt.Errorf("decode cover spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("model cover spec: %w", err)
	}

	return &spec, nil
}

// complete sends one user message and returns the JSON object embedded
// in the response text.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("empty model response")
	}
	responseText := msg.Content[0].Text

	jsonStr, err := extractJSON(responseText)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(jsonStr)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}

	return jsonStr, nil
}

func buildAnswerPrompt(cardTitle, contextJSON string) string {
	return fmt.Sprintf(`You are a project assistant summarizing a kanban card.

Card title: %q

Context chunks retrieved from the board (cite these and ONLY these):
%s

Write a short summary (2-3 sentences) of how this card relates to the
rest of the board, based strictly on the context chunks.

Output ONLY a valid JSON object matching this exact schema:
{
  "answer": "<the summary text>",
  "citations": [
    {"chunkId": "<chunkId of a context chunk you actually used>"}
  ]
}

Rules:
- Cite only chunkId values that appear in the context chunks above
- Cite every chunk whose content shaped the summary
- Output ONLY the JSON, no markdown, no explanations`, cardTitle, contextJSON)
}

func buildCoverPrompt(cardTitle, cardDescription string) string {
	return fmt.Sprintf(`You are designing a small visual cover for a kanban card.

Card title: %q
Card description: %q

Output ONLY a valid JSON object matching this exact schema:
{
  "palette": ["<hex color>", "<hex color>", "<hex color>"],
  "emoji": "<one emoji matching the card's topic>",
  "caption": "<at most five words>"
}

Rules:
- Palette holds 2-4 hex colors like "#1f6feb" that work together
- The caption must fit on a small card cover
- Output ONLY the JSON, no markdown, no explanations`, cardTitle, cardDescription)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
