package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/internal/database"
)

// ProductStore implements product.Store using GORM.
type ProductStore struct {
	database.Repository[product.Product, ProductModel]
}

// NewProductStore creates a new ProductStore.
func NewProductStore(db database.Database) ProductStore {
	return ProductStore{
		Repository: database.NewRepository[product.Product, ProductModel](db, ProductMapper{}, "product"),
	}
}

// Get retrieves a product by ID.
func (s ProductStore) Get(ctx context.Context, id int64) (product.Product, error) {
	return s.FindOne(ctx, store.WithID(id))
}

// Save creates or updates a product.
func (s ProductStore) Save(ctx context.Context, p product.Product) (product.Product, error) {
	model := s.Mapper().ToModel(p)
	now := time.Now().UTC()

	if model.ID == 0 {
		model.CreatedAt = now
		model.UpdatedAt = now
		if result := s.DB(ctx).Create(&model); result.Error != nil {
			return product.Product{}, fmt.Errorf("create product: %w", result.Error)
		}
	} else {
		model.UpdatedAt = now
		if result := s.DB(ctx).Save(&model); result.Error != nil {
			return product.Product{}, fmt.Errorf("update product: %w", result.Error)
		}
	}

	return s.Mapper().ToDomain(model), nil
}

// Delete removes a product by ID.
func (s ProductStore) Delete(ctx context.Context, id int64) error {
	return s.DeleteBy(ctx, store.WithID(id))
}
