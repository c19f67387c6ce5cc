package client

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

var errEmptyGeneration = errors.New("model returned no text")

// GeminiClient is one model handle over a shared genai client.
type GeminiClient struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func NewGeminiClientFromClient(c *genai.Client, model string, temperature float32) *GeminiClient {
	return &GeminiClient{
		client: c,
		model:  model,
		config: &genai.GenerateContentConfig{Temperature: &temperature},
	}
}

func (g *GeminiClient) Model() string { return g.model }

// Generate returns the generated text. Errors are provider-shaped; the
// gateway normalises them.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", errEmptyGeneration
	}
	text := result.Text()
	if text == "" {
		return "", errEmptyGeneration
	}
	return text, nil
}
