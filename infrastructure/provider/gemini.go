package provider

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/adgenhq/adgen/domain/asset"
)

// GeminiClient wraps a genai client shared by the Gemini text and image
// generators.
type GeminiClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// GeminiConfig holds configuration for the Gemini generators.
type GeminiConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// NewGeminiClient creates a shared Gemini client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	textModel := cfg.TextModel
	if textModel == "" {
		textModel = "gemini-2.0-flash"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = "gemini-2.0-flash-exp-image-generation"
	}

	return &GeminiClient{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// Close releases the underlying client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// TextGenerator returns a TextGenerator backed by this client.
func (c *GeminiClient) TextGenerator() *GeminiTextGenerator {
	return &GeminiTextGenerator{client: c}
}

// ImageGenerator returns an ImageGenerator backed by this client.
func (c *GeminiClient) ImageGenerator() *GeminiImageGenerator {
	return &GeminiImageGenerator{client: c}
}

// GeminiTextGenerator implements TextGenerator using Gemini.
type GeminiTextGenerator struct {
	client *GeminiClient
}

// Generate produces marketing copy for the prompt.
func (g *GeminiTextGenerator) Generate(ctx context.Context, prompt string) (TextResult, error) {
	model := g.client.client.GenerativeModel(g.client.textModel)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return TextResult{}, fmt.Errorf("gemini generate text: %w", err)
	}

	content := firstText(resp)
	if content == "" {
		return TextResult{}, ErrNoContent
	}

	return TextResult{
		Content:   content,
		ModelName: g.client.textModel,
	}, nil
}

// GeminiImageGenerator implements ImageGenerator using Gemini.
type GeminiImageGenerator struct {
	client *GeminiClient
}

// Generate produces a creative image for the prompt. Reference images
// are passed ahead of the prompt to steer composition. The requested
// aspect ratio is appended to the prompt since the API does not take it
// as a structured parameter.
func (g *GeminiImageGenerator) Generate(
	ctx context.Context,
	prompt string,
	ratio asset.AspectRatio,
	refImages [][]byte,
) (ImageResult, error) {
	model := g.client.client.GenerativeModel(g.client.imageModel)

	parts := make([]genai.Part, 0, len(refImages)+1)
	for _, img := range refImages {
		parts = append(parts, genai.ImageData("png", img))
	}
	parts = append(parts, genai.Text(
		fmt.Sprintf("%s\n\nThe image must have a %s aspect ratio.", prompt, ratio),
	))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return ImageResult{}, fmt.Errorf("gemini generate image: %w", err)
	}

	data := firstImage(resp)
	if len(data) == 0 {
		return ImageResult{}, ErrNoContent
	}

	width, height := decodeDimensions(data)

	return ImageResult{
		Content:   data,
		Width:     width,
		Height:    height,
		ModelName: g.client.imageModel,
	}, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok && text != "" {
				return string(text)
			}
		}
	}
	return ""
}

func firstImage(resp *genai.GenerateContentResponse) []byte {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
				return blob.Data
			}
		}
	}
	return nil
}

func decodeDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
