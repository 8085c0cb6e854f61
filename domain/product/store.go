package product

import (
	"context"

	"github.com/adgenhq/adgen/domain/store"
)

// Store defines persistence operations for products.
type Store interface {
	Get(ctx context.Context, id int64) (Product, error)
	Find(ctx context.Context, options ...store.Option) ([]Product, error)
	Save(ctx context.Context, p Product) (Product, error)
	Delete(ctx context.Context, id int64) error
}
