package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
)

func TestLocalizationLanguage(t *testing.T) {
	tests := []struct {
		region   string
		language string
		ok       bool
	}{
		{region: "US", language: "", ok: false},
		{region: "FR", language: "french", ok: true},
		{region: "ES", language: "spanish", ok: true},
		{region: "IT", language: "italian", ok: true},
		{region: "DE", language: "", ok: false},
		{region: "", language: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			lang, ok := LocalizationLanguage(tt.region)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.language, lang)
		})
	}
}

func TestBuildImageBriefPrompt(t *testing.T) {
	b, err := brand.NewBrand("Acme", "#FF8800")
	require.NoError(t, err)
	b = b.WithToneOfVoice("bold and playful")

	c, err := campaign.NewCampaign(1, "Launch", "FR", "urban runners", "Run the city")
	require.NoError(t, err)

	p, err := product.NewProduct("Trail Shoe", "a lightweight trail runner", nil)
	require.NoError(t, err)

	prompt := BuildImageBriefPrompt(b, c, p)
	assert.Contains(t, prompt, "#FF8800")
	assert.Contains(t, prompt, "bold and playful")
	assert.Contains(t, prompt, "Run the city")
	assert.Contains(t, prompt, "FR")
	assert.Contains(t, prompt, "urban runners")
	assert.Contains(t, prompt, "a lightweight trail runner")
}

func TestBuildLocalizationPrompt(t *testing.T) {
	b, err := brand.NewBrand("Acme", "#FF8800")
	require.NoError(t, err)
	b = b.WithToneOfVoice("bold")

	c, err := campaign.NewCampaign(1, "Launch", "FR", "runners", "Run the city")
	require.NoError(t, err)

	prompt := BuildLocalizationPrompt(b, c, "french")
	assert.Contains(t, prompt, "Run the city")
	assert.Contains(t, prompt, "bold")
	assert.Contains(t, prompt, "runners")
	assert.Contains(t, prompt, "french")
}
