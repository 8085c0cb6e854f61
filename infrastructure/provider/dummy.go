package provider

import "context"

// DummyModelName identifies copy produced without a real backend.
const DummyModelName = "dummy"

// DummyTextGenerator implements TextGenerator without calling any
// external service. Used when no text backend is configured and in tests.
type DummyTextGenerator struct {
	// Content overrides the returned text when non-empty.
	Content string
}

// NewDummyTextGenerator creates a DummyTextGenerator.
func NewDummyTextGenerator() *DummyTextGenerator {
	return &DummyTextGenerator{}
}

// Generate returns fixed content.
func (g *DummyTextGenerator) Generate(_ context.Context, _ string) (TextResult, error) {
	content := g.Content
	if content == "" {
		content = "Test output"
	}
	return TextResult{Content: content, ModelName: DummyModelName}, nil
}
