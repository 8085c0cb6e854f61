package dto

import "time"

// AssetUploadRequest is the body for POST /api/v1/assets. ImageBase64
// may carry an optional data-URL prefix ("data:image/png;base64,...").
type AssetUploadRequest struct {
	CampaignID  int64  `json:"campaign_id"`
	ProductID   int64  `json:"product_id"`
	AspectRatio string `json:"aspect_ratio"`
	ImageBase64 string `json:"image_base64"`
	ContentType string `json:"content_type,omitempty"`
}

// AssetData is the wire representation of an asset with its presigned
// download URL.
type AssetData struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Source      string    `json:"source"`
	AspectRatio string    `json:"aspect_ratio,omitempty"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
}

// AssetResponse wraps a single asset.
type AssetResponse struct {
	Data AssetData `json:"data"`
}
