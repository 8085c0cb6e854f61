package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAITextGenerator implements TextGenerator against any
// OpenAI-compatible chat completion endpoint.
type OpenAITextGenerator struct {
	client *openai.Client
	model  string
}

// OpenAIConfig holds configuration for the OpenAI text generator.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewOpenAITextGenerator creates a text generator from configuration.
func NewOpenAITextGenerator(cfg OpenAIConfig) *OpenAITextGenerator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAITextGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Generate produces a chat completion for the prompt.
func (g *OpenAITextGenerator) Generate(ctx context.Context, prompt string) (TextResult, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return TextResult{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return TextResult{}, ErrNoContent
	}

	return TextResult{
		Content:   resp.Choices[0].Message.Content,
		ModelName: g.model,
	}, nil
}
