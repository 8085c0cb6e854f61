package generation

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/infrastructure/persistence"
	"github.com/adgenhq/adgen/infrastructure/provider"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/database"
)

// UnitRunner generates a single creative end to end: reload state, build
// the brief, run the text and image generators, store the blob, and
// insert the asset row. Each run uses its own database sessions so
// concurrent units never share statement state.
type UnitRunner struct {
	db        database.Database
	blobs     storage.ObjectStore
	text      provider.TextGenerator
	image     provider.ImageGenerator
	campaigns persistence.CampaignStore
	brands    persistence.BrandStore
	products  persistence.ProductStore
}

// NewUnitRunner creates a UnitRunner.
func NewUnitRunner(
	db database.Database,
	blobs storage.ObjectStore,
	text provider.TextGenerator,
	image provider.ImageGenerator,
) UnitRunner {
	return UnitRunner{
		db:        db,
		blobs:     blobs,
		text:      text,
		image:     image,
		campaigns: persistence.NewCampaignStore(db),
		brands:    persistence.NewBrandStore(db),
		products:  persistence.NewProductStore(db),
	}
}

// Run generates one creative for (campaign, product, ratio). All reads
// are fresh so concurrent siblings and earlier failures never leak
// state in; any failure propagates and leaves no asset row behind.
func (r UnitRunner) Run(ctx context.Context, campaignID, productID int64, ratio asset.AspectRatio) error {
	c, err := r.campaigns.Get(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("load campaign %d: %w", campaignID, err)
	}

	b, err := r.brands.Get(ctx, c.BrandID())
	if err != nil {
		return fmt.Errorf("load brand %d for campaign %d: %w", c.BrandID(), campaignID, err)
	}

	p, err := r.products.Get(ctx, productID)
	if err != nil {
		return fmt.Errorf("load product %d: %w", productID, err)
	}

	briefPrompt := BuildImageBriefPrompt(b, c, p)
	brief, err := r.text.Generate(ctx, briefPrompt)
	if err != nil {
		return fmt.Errorf("generate brief for product %d ratio %s: %w", productID, ratio, err)
	}
	if brief.Content == "" {
		return fmt.Errorf("generate brief for product %d ratio %s: %w", productID, ratio, provider.ErrNoContent)
	}

	img, err := r.image.Generate(ctx, brief.Content, ratio, nil)
	if err != nil {
		return fmt.Errorf("generate image for product %d ratio %s: %w", productID, ratio, err)
	}
	if len(img.Content) == 0 {
		return fmt.Errorf("generate image for product %d ratio %s: %w", productID, ratio, provider.ErrNoContent)
	}

	key := storage.CreativeKey(campaignID, productID, ratio, time.Now().UTC())
	if err := r.blobs.Put(ctx, key, img.Content, "image/png"); err != nil {
		return fmt.Errorf("store creative %s: %w", key, err)
	}

	record, err := asset.NewGeneratedCreative(
		campaignID,
		productID,
		c.BrandID(),
		ratio,
		img.Width,
		img.Height,
		key,
		asset.GenerationMetadata{
			Prompt:      brief.Content,
			ModelName:   img.ModelName,
			GeneratedAt: time.Now().UTC(),
		},
	)
	if err != nil {
		return fmt.Errorf("build creative record %s: %w", key, err)
	}

	// The insert runs in its own transaction; a failure here rolls the
	// row back while the blob stays in storage as an orphan.
	err = database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		model := persistence.AssetMapper{}.ToModel(record)
		model.CreatedAt = time.Now().UTC()
		return tx.Create(&model).Error
	})
	if err != nil {
		return fmt.Errorf("persist creative %s: %w", key, err)
	}

	return nil
}
