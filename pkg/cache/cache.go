// Package cache provides byte-level caching for expensive tape-color
// work: image bytes fetched over HTTP and the pixel colors sampled from
// them. Keys are built from artwork image references; see [ColorKey]
// and [ImageKey].
//
// Implementations are best-effort. Callers treat every cache failure as
// a miss and recompute; a broken cache never breaks placement.
package cache

import (
	"context"
	"time"
)

// Default TTLs for the two cached artifact kinds. Sampled colors are a
// deterministic function of the image, so they keep for a long time;
// raw image bytes are only worth keeping briefly.
const (
	ColorTTL = 30 * 24 * time.Hour
	ImageTTL = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with a TTL.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ColorKey returns the cache key for the sampled base color of an
// artwork image reference.
func ColorKey(imageRef string) string {
	return "tape:" + Hash([]byte(imageRef))
}

// ImageKey returns the cache key for the fetched bytes of an artwork
// image reference.
func ImageKey(imageRef string) string {
	return "img:" + Hash([]byte(imageRef))
}
