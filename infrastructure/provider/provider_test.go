package provider

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/internal/config"
)

func TestPlaceholderImageSizes(t *testing.T) {
	tests := []struct {
		name   string
		ratio  asset.AspectRatio
		width  int
		height int
	}{
		{name: "square", ratio: asset.RatioSquare, width: 1024, height: 1024},
		{name: "portrait", ratio: asset.RatioPortrait, width: 768, height: 1365},
		{name: "landscape", ratio: asset.RatioLandscape, width: 1365, height: 768},
		{name: "unknown falls back to square", ratio: "4:3", width: 1024, height: 1024},
	}

	gen := NewPlaceholderImageGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gen.Generate(context.Background(), "a shoe on a beach", tt.ratio, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.width, result.Width)
			assert.Equal(t, tt.height, result.Height)
			assert.Equal(t, PlaceholderModelName, result.ModelName)

			img, err := png.Decode(bytes.NewReader(result.Content))
			require.NoError(t, err)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestPlaceholderTruncatesLongPrompts(t *testing.T) {
	long := bytes.Repeat([]byte("x"), 500)

	result, err := NewPlaceholderImageGenerator().Generate(context.Background(), string(long), asset.RatioSquare, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Content)
}

func TestDummyTextGenerator(t *testing.T) {
	result, err := NewDummyTextGenerator().Generate(context.Background(), "translate this")
	require.NoError(t, err)
	assert.Equal(t, "Test output", result.Content)
	assert.Equal(t, DummyModelName, result.ModelName)

	custom := &DummyTextGenerator{Content: "Courez plus vite"}
	result, err = custom.Generate(context.Background(), "translate this")
	require.NoError(t, err)
	assert.Equal(t, "Courez plus vite", result.Content)
}

func TestNewGeneratorsDefaults(t *testing.T) {
	gens, err := NewGenerators(context.Background(), config.NewAppConfig())
	require.NoError(t, err)
	defer gens.Close()

	assert.IsType(t, &DummyTextGenerator{}, gens.Text)
	assert.IsType(t, &PlaceholderImageGenerator{}, gens.Image)
}

func TestNewGeneratorsTextEndpoint(t *testing.T) {
	cfg := config.NewAppConfig().Apply(config.WithTextEndpoint(config.EndpointConfig{
		BaseURL: "http://localhost:8080/v1",
		Model:   "llama3",
		Timeout: 30,
	}))

	gens, err := NewGenerators(context.Background(), cfg)
	require.NoError(t, err)
	defer gens.Close()

	assert.IsType(t, &OpenAITextGenerator{}, gens.Text)
	assert.IsType(t, &PlaceholderImageGenerator{}, gens.Image)
}
