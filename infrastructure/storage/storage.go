// Package storage provides object storage for creative assets.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adgenhq/adgen/domain/asset"
)

// ErrObjectNotFound indicates the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore abstracts blob storage for creative images.
type ObjectStore interface {
	// Put writes an object under the given key.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// Get reads the object stored under the given key.
	Get(ctx context.Context, key string) ([]byte, error)

	// PresignGet returns a time-limited download URL for the key.
	PresignGet(ctx context.Context, key string) (string, error)
}

// CreativeKey builds the canonical storage key for a campaign creative:
// campaign_{cid}/product_{pid}/{ratio}/creative_{unix}.png with ":" in
// the ratio replaced by "x".
func CreativeKey(campaignID, productID int64, ratio asset.AspectRatio, now time.Time) string {
	return fmt.Sprintf(
		"campaign_%d/product_%d/%s/creative_%d.png",
		campaignID,
		productID,
		ratio.PathSegment(),
		now.Unix(),
	)
}
