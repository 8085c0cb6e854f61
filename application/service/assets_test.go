package service

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/asset"
	"github.com/adgenhq/adgen/infrastructure/persistence"
	"github.com/adgenhq/adgen/infrastructure/storage"
	"github.com/adgenhq/adgen/internal/domain"
	"github.com/adgenhq/adgen/internal/testdb"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestUploadAsset(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	blobs := storage.NewMemoryStore()
	svc := NewAssets(persistence.NewAssetStore(db), blobs, testLogger())

	encoded := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	view, err := svc.Upload(ctx, UploadAssetParams{
		CampaignID:  1,
		ProductID:   2,
		AspectRatio: "9:16",
		ImageBase64: encoded,
		ContentType: "image/png",
	})
	require.NoError(t, err)

	assert.NotZero(t, view.Asset.ID())
	assert.Equal(t, asset.TypeCreative, view.Asset.Type())
	assert.Equal(t, asset.SourceUploaded, view.Asset.Source())
	assert.Equal(t, asset.RatioPortrait, view.Asset.AspectRatio())
	require.NotNil(t, view.Asset.CampaignID())
	assert.Equal(t, int64(1), *view.Asset.CampaignID())
	require.NotNil(t, view.Asset.ProductID())
	assert.Equal(t, int64(2), *view.Asset.ProductID())

	assert.Contains(t, view.Asset.StorageKey(), "campaign_1/product_2/9x16/")
	assert.Equal(t, "memory://"+view.Asset.StorageKey(), view.URL)

	stored, err := blobs.Get(ctx, view.Asset.StorageKey())
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestUploadAssetStripsDataURLPrefix(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	blobs := storage.NewMemoryStore()
	svc := NewAssets(persistence.NewAssetStore(db), blobs, testLogger())

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	view, err := svc.Upload(ctx, UploadAssetParams{
		CampaignID:  1,
		ProductID:   2,
		AspectRatio: "1:1",
		ImageBase64: encoded,
	})
	require.NoError(t, err)

	stored, err := blobs.Get(ctx, view.Asset.StorageKey())
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestUploadAssetRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		base64 string
		ratio  string
	}{
		{name: "malformed base64", base64: "not!!base64", ratio: "1:1"},
		{name: "empty payload", base64: "", ratio: "1:1"},
		{name: "whitespace only prefix", base64: "data:image/png;base64,", ratio: "1:1"},
		{name: "unsupported ratio", base64: base64.StdEncoding.EncodeToString([]byte("x")), ratio: "4:3"},
	}

	ctx := context.Background()
	db := testdb.New(t)
	blobs := storage.NewMemoryStore()
	svc := NewAssets(persistence.NewAssetStore(db), blobs, testLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, UploadAssetParams{
				CampaignID:  1,
				ProductID:   2,
				AspectRatio: tt.ratio,
				ImageBase64: tt.base64,
			})
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	// Rejection happens before anything touches storage.
	assert.Zero(t, blobs.Len())
}

func TestGetAssetPresignsURL(t *testing.T) {
	ctx := context.Background()
	db := testdb.New(t)
	blobs := storage.NewMemoryStore()
	store := persistence.NewAssetStore(db)
	svc := NewAssets(store, blobs, testLogger())

	a, err := asset.NewUploadedAsset(asset.TypeCreative, "campaign_1/x.png")
	require.NoError(t, err)
	saved, err := store.Save(ctx, a.WithOwners(0, 1, 2))
	require.NoError(t, err)

	view, err := svc.Get(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, "memory://campaign_1/x.png", view.URL)
}
