package provider

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/adgenhq/adgen/domain/asset"
)

// PlaceholderModelName identifies images produced without a real backend.
const PlaceholderModelName = "placeholder"

// placeholderSizes maps aspect ratios to pixel dimensions. Unknown
// ratios fall back to square.
var placeholderSizes = map[asset.AspectRatio][2]int{
	asset.RatioSquare:    {1024, 1024},
	asset.RatioPortrait:  {768, 1365},
	asset.RatioLandscape: {1365, 768},
}

// PlaceholderImageGenerator implements ImageGenerator without calling
// any external service. It renders a solid PNG with the prompt overlaid,
// sized by aspect ratio, and is used when no image backend is configured
// and in tests.
type PlaceholderImageGenerator struct{}

// NewPlaceholderImageGenerator creates a PlaceholderImageGenerator.
func NewPlaceholderImageGenerator() *PlaceholderImageGenerator {
	return &PlaceholderImageGenerator{}
}

// Generate renders a placeholder PNG for the prompt.
func (g *PlaceholderImageGenerator) Generate(
	_ context.Context,
	prompt string,
	ratio asset.AspectRatio,
	_ [][]byte,
) (ImageResult, error) {
	size, ok := placeholderSizes[ratio]
	if !ok {
		size = [2]int{1024, 1024}
	}
	width, height := size[0], size[1]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{R: 40, G: 40, B: 60, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	overlay := prompt
	if len(overlay) > 120 {
		overlay = overlay[:120] + "..."
	}
	drawCenteredText(img, overlay)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ImageResult{}, fmt.Errorf("encode placeholder png: %w", err)
	}

	return ImageResult{
		Content:   buf.Bytes(),
		Width:     width,
		Height:    height,
		ModelName: PlaceholderModelName,
	}, nil
}

func drawCenteredText(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	bounds := img.Bounds()

	textWidth := font.MeasureString(face, text).Ceil()
	x := (bounds.Dx() - textWidth) / 2
	if x < 0 {
		x = 0
	}
	y := bounds.Dy() / 2

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
