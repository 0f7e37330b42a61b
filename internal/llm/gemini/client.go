package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-insight/internal/llm"
)

const defaultModel = "gemini-2.0-flash"

// Client implements llm.Client using the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Gemini client. The underlying client holds an HTTP
// connection pool and is safe for concurrent use.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// Complete sends one system+user round trip and returns the raw model text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	temperature := float32(0.2)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), config)
	if err != nil {
		if llm.IsRateLimit(err) {
			return "", fmt.Errorf("gemini: %w: %v", llm.ErrRateLimited, err)
		}
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: nil response")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: empty response content")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
