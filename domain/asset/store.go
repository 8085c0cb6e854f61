package asset

import (
	"context"

	"github.com/adgenhq/adgen/domain/store"
)

// Store defines persistence operations for assets.
type Store interface {
	Get(ctx context.Context, id int64) (Asset, error)
	Find(ctx context.Context, options ...store.Option) ([]Asset, error)
	Save(ctx context.Context, a Asset) (Asset, error)
	Delete(ctx context.Context, id int64) error

	// FindCreatives returns generated creative assets for a campaign.
	FindCreatives(ctx context.Context, campaignID int64) ([]Asset, error)
}
