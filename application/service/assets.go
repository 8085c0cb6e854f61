package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/domain"
)

// UploadAssetParams holds a base64-encoded creative upload.
type UploadAssetParams struct {
	CampaignID  int64
	ProductID   int64
	AspectRatio string
	ImageBase64 string
	ContentType string
}

// Assets manages creative uploads and retrieval.
type Assets struct {
	store  asset.Store
	blobs  storage.ObjectStore
	logger *slog.Logger
}

// NewAssets creates an Assets service.
func NewAssets(assetStore asset.Store, blobs storage.ObjectStore, logger *slog.Logger) *Assets {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assets{store: assetStore, blobs: blobs, logger: logger}
}

// Upload decodes a base64 creative, stores the bytes, and records the
// asset as an uploaded creative. The payload is validated before any
// storage call: malformed base64 and empty decoded data are rejected
// up front. An optional data-URL prefix ("data:image/png;base64,...")
// is stripped.
func (s *Assets) Upload(ctx context.Context, params UploadAssetParams) (AssetView, error) {
	encoded := params.ImageBase64
	if idx := strings.Index(encoded, ","); idx >= 0 {
		encoded = encoded[idx+1:]
	}

	data, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return AssetView{}, fmt.Errorf("%w: invalid base64 image data", domain.ErrValidation)
	}
	if len(data) == 0 {
		return AssetView{}, fmt.Errorf("%w: image data is empty after base64 decode", domain.ErrValidation)
	}

	ratio, err := asset.ParseAspectRatio(params.AspectRatio)
	if err != nil {
		return AssetView{}, err
	}

	key := storage.CreativeKey(params.CampaignID, params.ProductID, ratio, time.Now().UTC())

	contentType := params.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.blobs.Put(ctx, key, data, contentType); err != nil {
		return AssetView{}, fmt.Errorf("store uploaded asset: %w", err)
	}

	record, err := asset.NewUploadedAsset(asset.TypeCreative, key)
	if err != nil {
		return AssetView{}, err
	}
	record = record.
		WithOwners(0, params.CampaignID, params.ProductID).
		WithAspectRatio(ratio)

	saved, err := s.store.Save(ctx, record)
	if err != nil {
		return AssetView{}, fmt.Errorf("save uploaded asset: %w", err)
	}

	s.logger.Info("asset uploaded",
		slog.Int64("asset_id", saved.ID()),
		slog.String("storage_key", saved.StorageKey()),
		slog.Int("bytes", len(data)),
	)
	return AssetView{Asset: saved, URL: presignOrKey(ctx, s.blobs, saved.StorageKey(), s.logger)}, nil
}

// Get retrieves an asset with its presigned download URL.
func (s *Assets) Get(ctx context.Context, id int64) (AssetView, error) {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return AssetView{}, err
	}
	return AssetView{Asset: a, URL: presignOrKey(ctx, s.blobs, a.StorageKey(), s.logger)}, nil
}

// presignOrKey returns a presigned URL for the key, degrading to the raw
// storage key when presigning fails.
func presignOrKey(ctx context.Context, blobs storage.ObjectStore, key string, logger *slog.Logger) string {
	url, err := blobs.PresignGet(ctx, key)
	if err != nil {
		logger.Warn("presign failed, returning storage key",
			slog.String("storage_key", key),
			slog.String("error", err.Error()),
		)
		return key
	}
	return url
}
