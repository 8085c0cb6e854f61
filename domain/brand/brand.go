// Package brand provides the brand identity aggregate.
package brand

import (
	"fmt"
	"regexp"
	"time"

	"github.com/adgenhq/adgen/internal/domain"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Brand holds the visual and verbal identity used to steer creative
// generation: colors, tone of voice and preferred font.
type Brand struct {
	id                int64
	name              string
	primaryColorHex   string
	secondaryColorHex string
	toneOfVoice       string
	fontFamily        string
	createdAt         time.Time
	updatedAt         time.Time
}

// NewBrand creates a Brand with the required fields validated.
func NewBrand(name, primaryColorHex string) (Brand, error) {
	if name == "" {
		return Brand{}, fmt.Errorf("%w: brand name is required", domain.ErrValidation)
	}
	if !hexColorPattern.MatchString(primaryColorHex) {
		return Brand{}, fmt.Errorf("%w: primary color must be a #RRGGBB hex value", domain.ErrValidation)
	}
	return Brand{
		name:            name,
		primaryColorHex: primaryColorHex,
	}, nil
}

// ReconstructBrand rebuilds a Brand from persisted state.
func ReconstructBrand(
	id int64,
	name, primaryColorHex, secondaryColorHex, toneOfVoice, fontFamily string,
	createdAt, updatedAt time.Time,
) Brand {
	return Brand{
		id:                id,
		name:              name,
		primaryColorHex:   primaryColorHex,
		secondaryColorHex: secondaryColorHex,
		toneOfVoice:       toneOfVoice,
		fontFamily:        fontFamily,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ID returns the brand ID.
func (b Brand) ID() int64 { return b.id }

// Name returns the brand name.
func (b Brand) Name() string { return b.name }

// PrimaryColorHex returns the primary brand color as #RRGGBB.
func (b Brand) PrimaryColorHex() string { return b.primaryColorHex }

// SecondaryColorHex returns the secondary brand color, empty when unset.
func (b Brand) SecondaryColorHex() string { return b.secondaryColorHex }

// ToneOfVoice returns the brand's tone-of-voice description, empty when unset.
func (b Brand) ToneOfVoice() string { return b.toneOfVoice }

// FontFamily returns the preferred font family, empty when unset.
func (b Brand) FontFamily() string { return b.fontFamily }

// CreatedAt returns when the brand was created.
func (b Brand) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns when the brand was last updated.
func (b Brand) UpdatedAt() time.Time { return b.updatedAt }

// WithSecondaryColorHex returns a copy with the secondary color set.
func (b Brand) WithSecondaryColorHex(hex string) (Brand, error) {
	if hex != "" && !hexColorPattern.MatchString(hex) {
		return Brand{}, fmt.Errorf("%w: secondary color must be a #RRGGBB hex value", domain.ErrValidation)
	}
	b.secondaryColorHex = hex
	return b, nil
}

// WithToneOfVoice returns a copy with the tone of voice set.
func (b Brand) WithToneOfVoice(tone string) Brand {
	b.toneOfVoice = tone
	return b
}

// WithFontFamily returns a copy with the font family set.
func (b Brand) WithFontFamily(font string) Brand {
	b.fontFamily = font
	return b
}

// WithID returns a copy with the given ID.
func (b Brand) WithID(id int64) Brand {
	b.id = id
	return b
}
