package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/internal/database"
)

// BrandStore implements brand.Store using GORM.
type BrandStore struct {
	database.Repository[brand.Brand, BrandModel]
}

// NewBrandStore creates a new BrandStore.
func NewBrandStore(db database.Database) BrandStore {
	return BrandStore{
		Repository: database.NewRepository[brand.Brand, BrandModel](db, BrandMapper{}, "brand"),
	}
}

// Get retrieves a brand by ID.
func (s BrandStore) Get(ctx context.Context, id int64) (brand.Brand, error) {
	return s.FindOne(ctx, store.WithID(id))
}

// Save creates or updates a brand.
func (s BrandStore) Save(ctx context.Context, b brand.Brand) (brand.Brand, error) {
	model := s.Mapper().ToModel(b)
	now := time.Now().UTC()

	if model.ID == 0 {
		model.CreatedAt = now
		model.UpdatedAt = now
		if result := s.DB(ctx).Create(&model); result.Error != nil {
			return brand.Brand{}, fmt.Errorf("create brand: %w", result.Error)
		}
	} else {
		model.UpdatedAt = now
		if result := s.DB(ctx).Save(&model); result.Error != nil {
			return brand.Brand{}, fmt.Errorf("update brand: %w", result.Error)
		}
	}

	return s.Mapper().ToDomain(model), nil
}

// Delete removes a brand by ID.
func (s BrandStore) Delete(ctx context.Context, id int64) error {
	return s.DeleteBy(ctx, store.WithID(id))
}
