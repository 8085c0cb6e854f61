package service

import (
	"context"
	"log/slog"

	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/store"
)

// CreateBrandParams holds the fields for creating a brand.
type CreateBrandParams struct {
	Name              string
	PrimaryColorHex   string
	SecondaryColorHex string
	ToneOfVoice       string
	FontFamily        string
}

// Brands manages brand identities.
type Brands struct {
	store  brand.Store
	logger *slog.Logger
}

// NewBrands creates a Brands service.
func NewBrands(brandStore brand.Store, logger *slog.Logger) *Brands {
	if logger == nil {
		logger = slog.Default()
	}
	return &Brands{store: brandStore, logger: logger}
}

// Create validates and persists a new brand.
func (s *Brands) Create(ctx context.Context, params CreateBrandParams) (brand.Brand, error) {
	b, err := brand.NewBrand(params.Name, params.PrimaryColorHex)
	if err != nil {
		return brand.Brand{}, err
	}

	if b, err = b.WithSecondaryColorHex(params.SecondaryColorHex); err != nil {
		return brand.Brand{}, err
	}
	b = b.WithToneOfVoice(params.ToneOfVoice).WithFontFamily(params.FontFamily)

	saved, err := s.store.Save(ctx, b)
	if err != nil {
		return brand.Brand{}, err
	}

	s.logger.Info("brand created", slog.Int64("brand_id", saved.ID()), slog.String("name", saved.Name()))
	return saved, nil
}

// Get retrieves a brand by ID.
func (s *Brands) Get(ctx context.Context, id int64) (brand.Brand, error) {
	return s.store.Get(ctx, id)
}

// List returns all brands.
func (s *Brands) List(ctx context.Context, options ...store.Option) ([]brand.Brand, error) {
	return s.store.Find(ctx, options...)
}
