// Package provider supplies text and image generation backends for the
// creative pipeline.
package provider

import (
	"context"
	"errors"

	"github.com/adgenhq/adgen/domain/asset"
)

// ErrNoContent indicates a generator returned an empty response.
var ErrNoContent = errors.New("generator returned no content")

// TextResult is the output of a text generation call.
type TextResult struct {
	Content   string
	ModelName string
}

// ImageResult is the output of an image generation call.
type ImageResult struct {
	Content   []byte
	Width     int
	Height    int
	ModelName string
}

// TextGenerator produces marketing copy from a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (TextResult, error)
}

// ImageGenerator produces a creative image from a prompt. Reference
// images, when provided, steer the composition.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, ratio asset.AspectRatio, refImages [][]byte) (ImageResult, error)
}
