package generation

import (
	"fmt"

	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
)

// regionLanguages maps campaign target regions to localization
// languages. US campaigns are never localized; regions without an entry
// keep the original message.
var regionLanguages = map[string]string{
	"FR": "french",
	"ES": "spanish",
	"IT": "italian",
}

// LocalizationLanguage returns the localization language for a region
// and whether the region's message should be localized at all.
func LocalizationLanguage(region string) (string, bool) {
	if region == "US" {
		return "", false
	}
	lang, ok := regionLanguages[region]
	return lang, ok
}

// BuildImageBriefPrompt builds the instruction given to the text
// generator to produce a visual brief for the image model. The output
// must be a pure photo description: no text in the image, no people, no
// illicit themes, the product as hero, 2-6 sentences.
func BuildImageBriefPrompt(b brand.Brand, c campaign.Campaign, p product.Product) string {
	return fmt.Sprintf(`You are an expert creative strategist and ad designer.
Your task is to write a visual prompt for an image-generation model.

The resulting image will be used as a social-media photo advertisement,
so the prompt MUST follow the rules below.

SOCIAL-MEDIA AD REQUIREMENTS
The image must look like a real, high-quality commercial photograph,
not artwork, not illustration, not abstract rendering.
Style must match the standards of Instagram, TikTok, and Facebook ads:
clean, modern, premium, crisp lighting, professional composition,
visually engaging and brand-safe.
Avoid all meta references ("this ad", "this prompt", "image generation").
Describe only the photograph.

BRANDING CONSTRAINTS
- Brand Identity: maintain a look and feel aligned with the brand's personality.
- Color Palette: use only colors that align with the brand's palette if
  provided; otherwise choose a palette consistent with the brand personality.
- Tone & Mood: match the brand's emotional tone.
- Brand Context: include brand-appropriate environments, props, and
  lifestyle cues that fit the target audience.
- Brand Safety: no political, sexual, violent, or controversial imagery.
- Logo Usage: if a logo or label is mentioned, describe it generically
  and never replicate real trademarks.

COMPOSITION REQUIREMENTS
- Clearly highlight the product as the hero.
- Describe environment, lighting, mood, and camera style.
- Stay within 2-6 vivid, concise sentences.

HARD CONSTRAINTS (MUST OBEY, EVEN IF THE BRIEF CONFLICTS)
- Do not give any reference to "ads", "image generation", "prompts", or
  any meta-language. Just describe the photo.
- Do not include any text on the product.
- Do not include any text in the background.
- Do not include any illicit images or themes.
- Do not include any people.

OUTPUT FORMAT
- Provide ONLY the final prompt. No explanations, no bullet points.
- The prompt must be a natural photo description aligned with the brand.

Create the prompt for:
  Brand primary color: %s
  Brand secondary color: %s
  Brand tone of voice: %s
  Campaign brief: %s
  Campaign region: %s
  Campaign target audience: %s
  Product description: %s`,
		b.PrimaryColorHex(),
		b.SecondaryColorHex(),
		b.ToneOfVoice(),
		c.Message(),
		c.TargetRegion(),
		c.TargetAudience(),
		p.Description(),
	)
}

// BuildLocalizationPrompt builds the instruction given to the text
// generator to localize the campaign message into the target language.
func BuildLocalizationPrompt(b brand.Brand, c campaign.Campaign, language string) string {
	return fmt.Sprintf(`Instruction:
You will receive:
  - A short caption written in English.
  - A description of the brand's tone of voice.
  - Information about the target audience.
  - The target language for localization.

Task:
Rewrite (localize) the caption into the target language so that:
  - The meaning is preserved, not translated word-for-word.
  - The brand tone is fully maintained.
  - The phrasing feels natural and culturally appropriate for the target audience.
  - The result reads like a native-quality marketing caption, not a direct translation.
  - Keep it short, punchy, and suitable for social media.

Output:
  - Only output the final localized caption, no explanations.

Inputs:
  - Original caption: %s
  - Brand tone: %s
  - Target audience: %s
  - Target language: %s`,
		c.Message(),
		b.ToneOfVoice(),
		c.TargetAudience(),
		language,
	)
}
