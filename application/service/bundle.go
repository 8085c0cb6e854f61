package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/domain/campaign"
	"github.com/adgenhq/adgen/domain/store"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/domain"
)

// Bundle packages a campaign's assets into a downloadable zip archive.
type Bundle struct {
	campaigns campaign.Store
	assets    asset.Store
	blobs     storage.ObjectStore
	logger    *slog.Logger
}

// NewBundle creates a Bundle service.
func NewBundle(campaigns campaign.Store, assets asset.Store, blobs storage.ObjectStore, logger *slog.Logger) *Bundle {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bundle{campaigns: campaigns, assets: assets, blobs: blobs, logger: logger}
}

// Filename returns the download filename for a campaign bundle.
func (s *Bundle) Filename(campaignID int64) string {
	return fmt.Sprintf("campaign_%d.zip", campaignID)
}

// Build assembles the zip: every asset's bytes under its storage key, a
// campaign.txt manifest, and a post.txt with the publishable message.
// Missing blobs are noted in the manifest without failing the bundle. A
// campaign with no assets at all is a not-found.
func (s *Bundle) Build(ctx context.Context, campaignID int64) ([]byte, error) {
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	assets, err := s.assets.Find(ctx, store.WithCampaignID(campaignID))
	if err != nil {
		return nil, fmt.Errorf("load campaign assets: %w", err)
	}
	if len(assets) == 0 {
		return nil, fmt.Errorf("%w: no assets for campaign %d", domain.ErrNotFound, campaignID)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	manifest := []string{
		fmt.Sprintf("Campaign ID: %d", c.ID()),
		fmt.Sprintf("Campaign Name: %s", c.Name()),
		fmt.Sprintf("Brand ID: %d", c.BrandID()),
		"",
		"Assets:",
	}

	for _, a := range assets {
		data, err := s.blobs.Get(ctx, a.StorageKey())
		if err != nil {
			if errors.Is(err, storage.ErrObjectNotFound) {
				manifest = append(manifest, fmt.Sprintf(
					"- asset_id=%d, product_id=%s, aspect_ratio=%s, storage_key=%s (MISSING)",
					a.ID(), formatOwner(a.ProductID()), a.AspectRatio(), a.StorageKey(),
				))
				continue
			}
			return nil, fmt.Errorf("fetch asset %d: %w", a.ID(), err)
		}

		w, err := zw.Create(a.StorageKey())
		if err != nil {
			return nil, fmt.Errorf("add %s to bundle: %w", a.StorageKey(), err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("write %s to bundle: %w", a.StorageKey(), err)
		}

		manifest = append(manifest, fmt.Sprintf(
			"- asset_id=%d, product_id=%s, aspect_ratio=%s, storage_key=%s, zip_path=%s",
			a.ID(), formatOwner(a.ProductID()), a.AspectRatio(), a.StorageKey(), a.StorageKey(),
		))
	}

	mw, err := zw.Create("campaign.txt")
	if err != nil {
		return nil, fmt.Errorf("add manifest to bundle: %w", err)
	}
	if _, err := mw.Write([]byte(strings.Join(manifest, "\n") + "\n")); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	pw, err := zw.Create(bundleFolder(c, assets) + "/post.txt")
	if err != nil {
		return nil, fmt.Errorf("add post to bundle: %w", err)
	}
	if _, err := pw.Write([]byte(postContent(c))); err != nil {
		return nil, fmt.Errorf("write post: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize bundle: %w", err)
	}

	s.logger.Info("campaign bundle built",
		slog.Int64("campaign_id", campaignID),
		slog.Int("assets", len(assets)),
		slog.Int("bytes", buf.Len()),
	)
	return buf.Bytes(), nil
}

// postContent returns the publishable caption: US campaigns always ship
// the original message, every other region prefers the localized one.
func postContent(c campaign.Campaign) string {
	if c.TargetRegion() == "US" {
		return c.Message()
	}
	return c.PostMessage()
}

// bundleFolder derives the post.txt folder from the first asset's
// storage key, falling back to campaign_{id} for flat keys.
func bundleFolder(c campaign.Campaign, assets []asset.Asset) string {
	firstKey := assets[0].StorageKey()
	if idx := strings.Index(firstKey, "/"); idx > 0 {
		return firstKey[:idx]
	}
	return fmt.Sprintf("campaign_%d", c.ID())
}

func formatOwner(id *int64) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}
