package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/internal/database"
	"gorm.io/gorm/clause"
)

// CampaignStore implements campaign.Store using GORM.
type CampaignStore struct {
	database.Repository[campaign.Campaign, CampaignModel]
}

// NewCampaignStore creates a new CampaignStore.
func NewCampaignStore(db database.Database) CampaignStore {
	return CampaignStore{
		Repository: database.NewRepository[campaign.Campaign, CampaignModel](db, CampaignMapper{}, "campaign"),
	}
}

// Get retrieves a campaign by ID.
func (s CampaignStore) Get(ctx context.Context, id int64) (campaign.Campaign, error) {
	return s.FindOne(ctx, store.WithID(id))
}

// Save creates or updates a campaign.
func (s CampaignStore) Save(ctx context.Context, c campaign.Campaign) (campaign.Campaign, error) {
	model := s.Mapper().ToModel(c)
	now := time.Now().UTC()

	if model.ID == 0 {
		model.CreatedAt = now
		model.UpdatedAt = now
		if result := s.DB(ctx).Create(&model); result.Error != nil {
			return campaign.Campaign{}, fmt.Errorf("create campaign: %w", result.Error)
		}
	} else {
		model.UpdatedAt = now
		if result := s.DB(ctx).Save(&model); result.Error != nil {
			return campaign.Campaign{}, fmt.Errorf("update campaign: %w", result.Error)
		}
	}

	return s.Mapper().ToDomain(model), nil
}

// Delete removes a campaign by ID.
func (s CampaignStore) Delete(ctx context.Context, id int64) error {
	return s.DeleteBy(ctx, store.WithID(id))
}

// LinkProducts associates products with a campaign, ignoring duplicates.
func (s CampaignStore) LinkProducts(ctx context.Context, campaignID int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	links := make([]CampaignProductModel, len(productIDs))
	for i, pid := range productIDs {
		links[i] = CampaignProductModel{
			CampaignID: campaignID,
			ProductID:  pid,
			CreatedAt:  now,
		}
	}

	result := s.DB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&links)
	if result.Error != nil {
		return fmt.Errorf("link products: %w", result.Error)
	}
	return nil
}

// ProductIDs returns the IDs of products linked to a campaign in link
// insertion order.
func (s CampaignStore) ProductIDs(ctx context.Context, campaignID int64) ([]int64, error) {
	var links []CampaignProductModel
	result := s.DB(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC, product_id ASC").
		Find(&links)
	if result.Error != nil {
		return nil, fmt.Errorf("find campaign products: %w", result.Error)
	}

	ids := make([]int64, len(links))
	for i, link := range links {
		ids[i] = link.ProductID
	}
	return ids, nil
}
