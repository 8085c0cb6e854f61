// Package asset provides the stored-media aggregate: uploaded brand and
// product imagery plus generated campaign creatives.
package asset

import (
	"fmt"
	"time"

	"github.com/adgenhq/adgen/internal/domain"
)

// Type classifies what an asset depicts.
type Type int

// Type values.
const (
	TypeLogo     Type = 1
	TypeProduct  Type = 2
	TypeCreative Type = 3
)

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeLogo:
		return "logo"
	case TypeProduct:
		return "product"
	case TypeCreative:
		return "creative"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// ParseType validates an asset type string.
func ParseType(s string) (Type, error) {
	switch s {
	case "logo":
		return TypeLogo, nil
	case "product":
		return TypeProduct, nil
	case "creative":
		return TypeCreative, nil
	default:
		return 0, fmt.Errorf("%w: unknown asset type %q", domain.ErrValidation, s)
	}
}

// Source records how an asset came to exist.
type Source int

// Source values.
const (
	SourceUploaded  Source = 1
	SourceGenerated Source = 2
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceUploaded:
		return "uploaded"
	case SourceGenerated:
		return "generated"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// GenerationMetadata records how a generated creative was produced.
type GenerationMetadata struct {
	Prompt      string    `json:"prompt"`
	ModelName   string    `json:"model_name"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Asset is an immutable record of a stored image. Assets are created and
// deleted, never updated.
type Asset struct {
	id          int64
	brandID     *int64
	campaignID  *int64
	productID   *int64
	assetType   Type
	source      Source
	aspectRatio AspectRatio
	width       int
	height      int
	storageKey  string
	generation  *GenerationMetadata
	createdAt   time.Time
}

// NewUploadedAsset creates an uploaded asset record.
func NewUploadedAsset(assetType Type, storageKey string) (Asset, error) {
	if storageKey == "" {
		return Asset{}, fmt.Errorf("%w: storage key is required", domain.ErrValidation)
	}
	return Asset{
		assetType:  assetType,
		source:     SourceUploaded,
		storageKey: storageKey,
	}, nil
}

// NewGeneratedCreative creates a generated creative asset record.
func NewGeneratedCreative(
	campaignID, productID, brandID int64,
	ratio AspectRatio,
	width, height int,
	storageKey string,
	meta GenerationMetadata,
) (Asset, error) {
	if storageKey == "" {
		return Asset{}, fmt.Errorf("%w: storage key is required", domain.ErrValidation)
	}
	return Asset{
		brandID:     &brandID,
		campaignID:  &campaignID,
		productID:   &productID,
		assetType:   TypeCreative,
		source:      SourceGenerated,
		aspectRatio: ratio,
		width:       width,
		height:      height,
		storageKey:  storageKey,
		generation:  &meta,
	}, nil
}

// ReconstructAsset rebuilds an Asset from persisted state.
func ReconstructAsset(
	id int64,
	brandID, campaignID, productID *int64,
	assetType Type,
	source Source,
	aspectRatio AspectRatio,
	width, height int,
	storageKey string,
	generation *GenerationMetadata,
	createdAt time.Time,
) Asset {
	return Asset{
		id:          id,
		brandID:     brandID,
		campaignID:  campaignID,
		productID:   productID,
		assetType:   assetType,
		source:      source,
		aspectRatio: aspectRatio,
		width:       width,
		height:      height,
		storageKey:  storageKey,
		generation:  generation,
		createdAt:   createdAt,
	}
}

// ID returns the asset ID.
func (a Asset) ID() int64 { return a.id }

// BrandID returns the owning brand ID, nil when unset.
func (a Asset) BrandID() *int64 { return a.brandID }

// CampaignID returns the owning campaign ID, nil when unset.
func (a Asset) CampaignID() *int64 { return a.campaignID }

// ProductID returns the depicted product ID, nil when unset.
func (a Asset) ProductID() *int64 { return a.productID }

// Type returns what the asset depicts.
func (a Asset) Type() Type { return a.assetType }

// Source returns how the asset came to exist.
func (a Asset) Source() Source { return a.source }

// AspectRatio returns the creative's aspect ratio, empty for uploads.
func (a Asset) AspectRatio() AspectRatio { return a.aspectRatio }

// Width returns the image width in pixels, zero when unknown.
func (a Asset) Width() int { return a.width }

// Height returns the image height in pixels, zero when unknown.
func (a Asset) Height() int { return a.height }

// StorageKey returns the object store key the image bytes live under.
func (a Asset) StorageKey() string { return a.storageKey }

// Generation returns generation metadata, nil for uploaded assets.
func (a Asset) Generation() *GenerationMetadata {
	if a.generation == nil {
		return nil
	}
	meta := *a.generation
	return &meta
}

// CreatedAt returns when the asset record was created.
func (a Asset) CreatedAt() time.Time { return a.createdAt }

// WithID returns a copy with the given ID.
func (a Asset) WithID(id int64) Asset {
	a.id = id
	return a
}

// WithOwners returns a copy with the given owner references. Zero values
// leave the corresponding reference unset.
func (a Asset) WithOwners(brandID, campaignID, productID int64) Asset {
	if brandID > 0 {
		a.brandID = &brandID
	}
	if campaignID > 0 {
		a.campaignID = &campaignID
	}
	if productID > 0 {
		a.productID = &productID
	}
	return a
}

// WithAspectRatio returns a copy with the aspect ratio set.
func (a Asset) WithAspectRatio(ratio AspectRatio) Asset {
	a.aspectRatio = ratio
	return a
}

// WithDimensions returns a copy with pixel dimensions set.
func (a Asset) WithDimensions(width, height int) Asset {
	a.width = width
	a.height = height
	return a
}
