package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/internal/database"
)

// AssetStore implements asset.Store using GORM.
type AssetStore struct {
	database.Repository[asset.Asset, AssetModel]
}

// NewAssetStore creates a new AssetStore.
func NewAssetStore(db database.Database) AssetStore {
	return AssetStore{
		Repository: database.NewRepository[asset.Asset, AssetModel](db, AssetMapper{}, "asset"),
	}
}

// Get retrieves an asset by ID.
func (s AssetStore) Get(ctx context.Context, id int64) (asset.Asset, error) {
	return s.FindOne(ctx, store.WithID(id))
}

// Save inserts an asset record. Assets are insert-only.
func (s AssetStore) Save(ctx context.Context, a asset.Asset) (asset.Asset, error) {
	model := s.Mapper().ToModel(a)
	if model.ID != 0 {
		return asset.Asset{}, fmt.Errorf("asset %d is immutable", model.ID)
	}

	model.CreatedAt = time.Now().UTC()
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return asset.Asset{}, fmt.Errorf("create asset: %w", result.Error)
	}

	return s.Mapper().ToDomain(model), nil
}

// Delete removes an asset by ID.
func (s AssetStore) Delete(ctx context.Context, id int64) error {
	return s.DeleteBy(ctx, store.WithID(id))
}

// FindCreatives returns generated creative assets for a campaign.
func (s AssetStore) FindCreatives(ctx context.Context, campaignID int64) ([]asset.Asset, error) {
	return s.Find(ctx,
		store.WithCampaignID(campaignID),
		store.WithCondition("type", int(asset.TypeCreative)),
		store.WithCondition("source", int(asset.SourceGenerated)),
		store.WithOrderAsc("id"),
	)
}
