package dto

import "time"

// ProductCreateRequest is the body for POST /api/v1/products and for
// inline products in a campaign brief.
type ProductCreateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ProductData is the wire representation of a product.
type ProductData struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Data ProductData `json:"data"`
}

// ProductListResponse wraps a list of products.
type ProductListResponse struct {
	Data []ProductData `json:"data"`
}
