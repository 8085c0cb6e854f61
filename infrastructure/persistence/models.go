// Package persistence provides database storage implementations.
package persistence

import (
	"encoding/json"
	"time"
)

// BrandModel represents a brand identity in the database.
type BrandModel struct {
	ID                int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name              string    `gorm:"column:name;size:255;not null"`
	PrimaryColorHex   string    `gorm:"column:primary_color_hex;size:7;not null"`
	SecondaryColorHex *string   `gorm:"column:secondary_color_hex;size:7"`
	ToneOfVoice       *string   `gorm:"column:tone_of_voice;type:text"`
	FontFamily        *string   `gorm:"column:font_family;size:128"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (BrandModel) TableName() string {
	return "brands"
}

// ProductModel represents a catalog product in the database.
type ProductModel struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;size:255;not null"`
	Description *string         `gorm:"column:description;type:text"`
	Metadata    json.RawMessage `gorm:"column:metadata;type:json"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (ProductModel) TableName() string {
	return "products"
}

// CampaignModel represents a campaign brief in the database.
type CampaignModel struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	BrandID          int64     `gorm:"column:brand_id;index;not null"`
	Name             string    `gorm:"column:name;size:255;not null"`
	TargetRegion     string    `gorm:"column:target_region;size:64;not null"`
	TargetAudience   string    `gorm:"column:target_audience;size:255"`
	Message          string    `gorm:"column:message;type:text;not null"`
	LocalizedMessage *string   `gorm:"column:localized_message;type:text"`
	Status           int       `gorm:"column:status;not null;default:1"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`

	Brand BrandModel `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// CampaignProductModel links campaigns to the products they advertise.
type CampaignProductModel struct {
	CampaignID int64     `gorm:"column:campaign_id;primaryKey"`
	ProductID  int64     `gorm:"column:product_id;primaryKey"`
	CreatedAt  time.Time `gorm:"column:created_at"`

	Campaign CampaignModel `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	Product  ProductModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name.
func (CampaignProductModel) TableName() string {
	return "campaign_products"
}

// AssetModel represents a stored image in the database. Asset rows are
// insert-only; there is no update path.
type AssetModel struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	BrandID     *int64          `gorm:"column:brand_id;index"`
	CampaignID  *int64          `gorm:"column:campaign_id;index"`
	ProductID   *int64          `gorm:"column:product_id;index"`
	Type        int             `gorm:"column:type;not null"`
	Source      int             `gorm:"column:source;not null"`
	AspectRatio *string         `gorm:"column:aspect_ratio;size:16"`
	Width       *int            `gorm:"column:width"`
	Height      *int            `gorm:"column:height"`
	StorageKey  string          `gorm:"column:storage_key;size:255;not null"`
	Generation  json.RawMessage `gorm:"column:generation;type:json"`
	CreatedAt   time.Time       `gorm:"column:created_at"`

	Brand    *BrandModel    `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
	Campaign *CampaignModel `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
	Product  *ProductModel  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name.
func (AssetModel) TableName() string {
	return "assets"
}

// WorkflowModel represents a generation run in the database.
type WorkflowModel struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	CampaignID   int64      `gorm:"column:campaign_id;index;not null"`
	Status       int        `gorm:"column:status;not null"`
	StartedAt    time.Time  `gorm:"column:started_at"`
	FinishedAt   *time.Time `gorm:"column:finished_at"`
	ErrorMessage *string    `gorm:"column:error_message;type:text"`

	Campaign CampaignModel `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name.
func (WorkflowModel) TableName() string {
	return "workflows"
}

// TaskModel represents a queued task in the database.
type TaskModel struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	DedupKey  string          `gorm:"column:dedup_key;size:255;uniqueIndex;not null"`
	Type      string          `gorm:"column:type;size:255;index;not null"`
	Payload   json.RawMessage `gorm:"column:payload;type:json"`
	Priority  int             `gorm:"column:priority;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name.
func (TaskModel) TableName() string {
	return "tasks"
}
