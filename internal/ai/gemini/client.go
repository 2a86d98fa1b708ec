// Package gemini implements the model client boundary against the Google
// Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client calls the Gemini generate-content endpoint with fixed,
// near-deterministic generation parameters.
type Client struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// New creates a Gemini client. The API key must be non-empty.
func New(ctx context.Context, apiKey, model string, temperature float64, maxOutputTokens int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client:          client,
		model:           model,
		temperature:     float32(temperature),
		maxOutputTokens: int32(maxOutputTokens),
	}, nil
}

// Generate implements resume.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.temperature),
		MaxOutputTokens: c.maxOutputTokens,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return result.Text(), nil
}
