package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/brand"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/product"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/domain"
)

// CreateCampaignParams holds the campaign brief: the campaign fields
// plus inline products that are created and linked in one call.
type CreateCampaignParams struct {
	BrandID        int64
	Name           string
	TargetRegion   string
	TargetAudience string
	Message        string
	Products       []CreateProductParams
	ProductIDs     []int64
}

// AssetView pairs an asset with its presigned download URL.
type AssetView struct {
	Asset asset.Asset
	URL   string
}

// CampaignDetail aggregates a campaign with its linked products and
// asset download URLs.
type CampaignDetail struct {
	Campaign campaign.Campaign
	Products []product.Product
	Assets   []AssetView
}

// Campaigns manages campaign briefs and their product links.
type Campaigns struct {
	campaigns campaign.Store
	brands    brand.Store
	products  product.Store
	assets    asset.Store
	blobs     storage.ObjectStore
	logger    *slog.Logger
}

// NewCampaigns creates a Campaigns service.
func NewCampaigns(
	campaigns campaign.Store,
	brands brand.Store,
	products product.Store,
	assets asset.Store,
	blobs storage.ObjectStore,
	logger *slog.Logger,
) *Campaigns {
	if logger == nil {
		logger = slog.Default()
	}
	return &Campaigns{
		campaigns: campaigns,
		brands:    brands,
		products:  products,
		assets:    assets,
		blobs:     blobs,
		logger:    logger,
	}
}

// Create persists a campaign brief. Inline products are created and
// linked; existing product IDs are linked as-is. A missing brand is a
// validation error, not a not-found, because the brief itself is bad.
func (s *Campaigns) Create(ctx context.Context, params CreateCampaignParams) (campaign.Campaign, error) {
	if _, err := s.brands.Get(ctx, params.BrandID); err != nil {
		if IsNotFound(err) {
			return campaign.Campaign{}, fmt.Errorf("%w: brand %d does not exist", domain.ErrValidation, params.BrandID)
		}
		return campaign.Campaign{}, err
	}

	c, err := campaign.NewCampaign(params.BrandID, params.Name, params.TargetRegion, params.TargetAudience, params.Message)
	if err != nil {
		return campaign.Campaign{}, err
	}

	saved, err := s.campaigns.Save(ctx, c)
	if err != nil {
		return campaign.Campaign{}, err
	}

	productIDs := make([]int64, 0, len(params.Products)+len(params.ProductIDs))
	for _, pp := range params.Products {
		p, err := product.NewProduct(pp.Name, pp.Description, pp.Metadata)
		if err != nil {
			return campaign.Campaign{}, err
		}
		createdProduct, err := s.products.Save(ctx, p)
		if err != nil {
			return campaign.Campaign{}, err
		}
		productIDs = append(productIDs, createdProduct.ID())
	}
	for _, id := range params.ProductIDs {
		if _, err := s.products.Get(ctx, id); err != nil {
			return campaign.Campaign{}, fmt.Errorf("link product %d: %w", id, err)
		}
		productIDs = append(productIDs, id)
	}

	if len(productIDs) > 0 {
		if err := s.campaigns.LinkProducts(ctx, saved.ID(), productIDs); err != nil {
			return campaign.Campaign{}, err
		}
	}

	s.logger.Info("campaign created",
		slog.Int64("campaign_id", saved.ID()),
		slog.Int64("brand_id", saved.BrandID()),
		slog.Int("products", len(productIDs)),
	)
	return saved, nil
}

// Get retrieves a campaign by ID.
func (s *Campaigns) Get(ctx context.Context, id int64) (campaign.Campaign, error) {
	return s.campaigns.Get(ctx, id)
}

// List returns all campaigns.
func (s *Campaigns) List(ctx context.Context, options ...store.Option) ([]campaign.Campaign, error) {
	return s.campaigns.Find(ctx, options...)
}

// Detail aggregates a campaign with its linked products and every asset
// attached to it, each paired with a presigned URL.
func (s *Campaigns) Detail(ctx context.Context, id int64) (CampaignDetail, error) {
	c, err := s.campaigns.Get(ctx, id)
	if err != nil {
		return CampaignDetail{}, err
	}

	assets, err := s.assets.Find(ctx, store.WithCampaignID(id))
	if err != nil {
		return CampaignDetail{}, fmt.Errorf("load campaign assets: %w", err)
	}

	views := make([]AssetView, 0, len(assets))
	for _, a := range assets {
		views = append(views, AssetView{Asset: a, URL: presignOrKey(ctx, s.blobs, a.StorageKey(), s.logger)})
	}

	productIDs, err := s.campaigns.ProductIDs(ctx, id)
	if err != nil {
		return CampaignDetail{}, err
	}
	products := make([]product.Product, 0, len(productIDs))
	for _, pid := range productIDs {
		p, err := s.products.Get(ctx, pid)
		if err != nil {
			return CampaignDetail{}, fmt.Errorf("load linked product %d: %w", pid, err)
		}
		products = append(products, p)
	}

	return CampaignDetail{Campaign: c, Products: products, Assets: views}, nil
}
