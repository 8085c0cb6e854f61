package brand

import (
	"context"

	"github.com/adgenhq/adgen/domain/store"
)

// Store defines persistence operations for brands.
type Store interface {
	Get(ctx context.Context, id int64) (Brand, error)
	Find(ctx context.Context, options ...store.Option) ([]Brand, error)
	Save(ctx context.Context, b Brand) (Brand, error)
	Delete(ctx context.Context, id int64) error
}
