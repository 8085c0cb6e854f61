package provider

import (
	"context"
	"time"

	"github.com/adgenhq/adgen/internal/config"
)

// Generators bundles the selected text and image backends. Selection
// happens once at startup; the chosen generators are injected wherever
// generation runs and never re-resolved per call.
type Generators struct {
	Text   TextGenerator
	Image  ImageGenerator
	gemini *GeminiClient
}

// NewGenerators selects backends from configuration. A Gemini API key
// wins for both text and image; an OpenAI-compatible endpoint covers
// text only; anything unconfigured falls back to the dummy/placeholder
// implementations.
func NewGenerators(ctx context.Context, cfg config.AppConfig) (*Generators, error) {
	g := &Generators{
		Text:  NewDummyTextGenerator(),
		Image: NewPlaceholderImageGenerator(),
	}

	if gemini := cfg.Gemini(); gemini.Configured() {
		client, err := NewGeminiClient(ctx, GeminiConfig{
			APIKey:     gemini.APIKey,
			TextModel:  gemini.TextModel,
			ImageModel: gemini.ImageModel,
		})
		if err != nil {
			return nil, err
		}
		g.gemini = client
		g.Text = client.TextGenerator()
		g.Image = client.ImageGenerator()
		return g, nil
	}

	if endpoint := cfg.TextEndpoint(); endpoint.Configured() {
		g.Text = NewOpenAITextGenerator(OpenAIConfig{
			APIKey:  endpoint.APIKey,
			BaseURL: endpoint.BaseURL,
			Model:   endpoint.Model,
			Timeout: time.Duration(endpoint.Timeout * float64(time.Second)),
		})
	}

	return g, nil
}

// Close releases any held clients.
func (g *Generators) Close() error {
	if g.gemini != nil {
		return g.gemini.Close()
	}
	return nil
}
