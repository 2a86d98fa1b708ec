// Package openai implements the model client boundary against the OpenAI
// chat completions API, as an alternative to the default Gemini backend.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client calls the chat completions endpoint with fixed generation
// parameters.
type Client struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

// New creates an OpenAI client. The API key must be non-empty.
func New(apiKey, model string, temperature float64, maxTokens int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client:      &client,
		model:       model,
		temperature: temperature,
		maxTokens:   int64(maxTokens),
	}, nil
}

// Generate implements resume.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(c.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("openai: no choices in response")
	}
	return completion.Choices[0].Message.Content, nil
}
