package asset

import (
	"fmt"
	"strings"

	"github.com/adgenhq/adgen/internal/domain"
)

// AspectRatio is a creative aspect ratio expressed as "W:H".
type AspectRatio string

// Aspect ratios every campaign creative set must cover.
const (
	RatioSquare    AspectRatio = "1:1"
	RatioPortrait  AspectRatio = "9:16"
	RatioLandscape AspectRatio = "16:9"
)

// RequiredAspectRatios returns the ratios every (campaign, product) pair
// must have a creative for, in deterministic order.
func RequiredAspectRatios() []AspectRatio {
	return []AspectRatio{RatioSquare, RatioPortrait, RatioLandscape}
}

// ParseAspectRatio validates a ratio string against the supported set.
func ParseAspectRatio(s string) (AspectRatio, error) {
	switch AspectRatio(s) {
	case RatioSquare, RatioPortrait, RatioLandscape:
		return AspectRatio(s), nil
	default:
		return "", fmt.Errorf("%w: unsupported aspect ratio %q", domain.ErrValidation, s)
	}
}

// String returns the "W:H" form.
func (r AspectRatio) String() string { return string(r) }

// PathSegment returns the ratio with ":" replaced by "x", safe for use in
// storage keys ("9:16" -> "9x16").
func (r AspectRatio) PathSegment() string {
	return strings.ReplaceAll(string(r), ":", "x")
}
