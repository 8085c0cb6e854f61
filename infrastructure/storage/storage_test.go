package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adgenhq/adgen/domain/asset"
)

func TestCreativeKey(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	key := CreativeKey(1, 2, asset.RatioPortrait, now)
	assert.Equal(t, "campaign_1/product_2/9x16/creative_1768478400.png", key)

	// The aspect ratio colon never reaches the key.
	assert.NotContains(t, CreativeKey(7, 8, asset.RatioLandscape, now), ":")
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "campaign_1/a.png", []byte("png-bytes"), "image/png"))

	data, err := store.Get(ctx, "campaign_1/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, 1, store.Len())

	url, err := store.PresignGet(ctx, "campaign_1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "memory://campaign_1/a.png", url)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", original, ""))
	original[0] = 'x'

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	// Mutating the returned slice does not corrupt the stored object.
	data[0] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
