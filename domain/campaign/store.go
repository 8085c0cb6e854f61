package campaign

import (
	"context"

	"github.com/adgenhq/adgen/domain/store"
)

// Store defines persistence operations for campaigns and their product links.
type Store interface {
	Get(ctx context.Context, id int64) (Campaign, error)
	Find(ctx context.Context, options ...store.Option) ([]Campaign, error)
	Save(ctx context.Context, c Campaign) (Campaign, error)
	Delete(ctx context.Context, id int64) error

	// LinkProducts associates products with a campaign. Existing links
	// are preserved; duplicates are ignored.
	LinkProducts(ctx context.Context, campaignID int64, productIDs []int64) error

	// ProductIDs returns the IDs of products linked to a campaign, in
	// link insertion order.
	ProductIDs(ctx context.Context, campaignID int64) ([]int64, error)
}
