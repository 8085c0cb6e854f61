// Package product provides the product catalog aggregate.
package product

import (
	"fmt"
	"maps"
	"time"

	"github.com/adgenhq/adgen/internal/domain"
)

// Product is an item a campaign advertises. Metadata is a free-form
// document (category, attributes) carried through to prompt building.
type Product struct {
	id          int64
	name        string
	description string
	metadata    map[string]any
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates a Product with the required fields validated.
func NewProduct(name, description string, metadata map[string]any) (Product, error) {
	if name == "" {
		return Product{}, fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	return Product{
		name:        name,
		description: description,
		metadata:    copyMetadata(metadata),
	}, nil
}

// ReconstructProduct rebuilds a Product from persisted state.
func ReconstructProduct(
	id int64,
	name, description string,
	metadata map[string]any,
	createdAt, updatedAt time.Time,
) Product {
	return Product{
		id:          id,
		name:        name,
		description: description,
		metadata:    copyMetadata(metadata),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the product ID.
func (p Product) ID() int64 { return p.id }

// Name returns the product name.
func (p Product) Name() string { return p.name }

// Description returns the product description, empty when unset.
func (p Product) Description() string { return p.description }

// Metadata returns a copy of the free-form metadata document.
func (p Product) Metadata() map[string]any { return copyMetadata(p.metadata) }

// CreatedAt returns when the product was created.
func (p Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the product was last updated.
func (p Product) UpdatedAt() time.Time { return p.updatedAt }

// WithID returns a copy with the given ID.
func (p Product) WithID(id int64) Product {
	p.id = id
	return p
}

func copyMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	maps.Copy(out, m)
	return out
}
