package dto

import "time"

// CampaignCreateRequest is the campaign brief accepted by
// POST /api/v1/campaigns. Inline products are created and linked;
// product_ids link existing catalog entries.
type CampaignCreateRequest struct {
	BrandID        int64                  `json:"brand_id"`
	Name           string                 `json:"name"`
	TargetRegion   string                 `json:"target_region"`
	TargetAudience string                 `json:"target_audience,omitempty"`
	Message        string                 `json:"campaign_message"`
	Products       []ProductCreateRequest `json:"products,omitempty"`
	ProductIDs     []int64                `json:"product_ids,omitempty"`
}

// CampaignData is the wire representation of a campaign.
type CampaignData struct {
	ID               int64     `json:"id"`
	BrandID          int64     `json:"brand_id"`
	Name             string    `json:"name"`
	TargetRegion     string    `json:"target_region"`
	TargetAudience   string    `json:"target_audience,omitempty"`
	Message          string    `json:"campaign_message"`
	LocalizedMessage string    `json:"localized_campaign_message,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CampaignResponse wraps a single campaign.
type CampaignResponse struct {
	Data CampaignData `json:"data"`
}

// CampaignListResponse wraps a list of campaigns.
type CampaignListResponse struct {
	Data []CampaignData `json:"data"`
}

// CampaignDetailResponse aggregates a campaign with its linked products
// and asset download URLs.
type CampaignDetailResponse struct {
	Data     CampaignData  `json:"data"`
	Products []ProductData `json:"products"`
	Assets   []AssetData   `json:"assets"`
}

// GenerateResponse acknowledges an accepted generation run.
type GenerateResponse struct {
	WorkflowID int64 `json:"workflow_id"`
}
