package service

import (
	"context"
	"log/slog"

	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/store"
)

// CreateProductParams holds the fields for creating a product.
type CreateProductParams struct {
	Name        string
	Description string
	Metadata    map[string]any
}

// Products manages the product catalog.
type Products struct {
	store  product.Store
	logger *slog.Logger
}

// NewProducts creates a Products service.
func NewProducts(productStore product.Store, logger *slog.Logger) *Products {
	if logger == nil {
		logger = slog.Default()
	}
	return &Products{store: productStore, logger: logger}
}

// Create validates and persists a new product.
func (s *Products) Create(ctx context.Context, params CreateProductParams) (product.Product, error) {
	p, err := product.NewProduct(params.Name, params.Description, params.Metadata)
	if err != nil {
		return product.Product{}, err
	}

	saved, err := s.store.Save(ctx, p)
	if err != nil {
		return product.Product{}, err
	}

	s.logger.Info("product created", slog.Int64("product_id", saved.ID()), slog.String("name", saved.Name()))
	return saved, nil
}

// Get retrieves a product by ID.
func (s *Products) Get(ctx context.Context, id int64) (product.Product, error) {
	return s.store.Get(ctx, id)
}

// List returns all products.
func (s *Products) List(ctx context.Context, options ...store.Option) ([]product.Product, error) {
	return s.store.Find(ctx, options...)
}
