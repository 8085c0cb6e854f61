// Package dto defines the request and response shapes for the v1 API.
package dto

import "time"

// BrandCreateRequest is the body for POST /api/v1/brands.
type BrandCreateRequest struct {
	Name              string `json:"name"`
	PrimaryColorHex   string `json:"primary_color_hex"`
	SecondaryColorHex string `json:"secondary_color_hex,omitempty"`
	ToneOfVoice       string `json:"tone_of_voice,omitempty"`
	FontFamily        string `json:"font_family,omitempty"`
}

// BrandData is the wire representation of a brand.
type BrandData struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	PrimaryColorHex   string    `json:"primary_color_hex"`
	SecondaryColorHex string    `json:"secondary_color_hex,omitempty"`
	ToneOfVoice       string    `json:"tone_of_voice,omitempty"`
	FontFamily        string    `json:"font_family,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BrandResponse wraps a single brand.
type BrandResponse struct {
	Data BrandData `json:"data"`
}

// BrandListResponse wraps a list of brands.
type BrandListResponse struct {
	Data []BrandData `json:"data"`
}
