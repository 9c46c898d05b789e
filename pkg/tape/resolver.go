package tape

import (
	"context"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/wallery/wallery/pkg/cache"
	"github.com/wallery/wallery/pkg/httputil"
)

// Resolver loads artwork images and resolves their sampled base
// colors, caching both the image bytes and the sample. Safe for
// concurrent use once configured.
type Resolver struct {
	cache   cache.Cache
	client  *httputil.Client
	logger  *log.Logger
	palette []string
}

// NewResolver creates a Resolver backed by the given cache. Pass
// [cache.NewNullCache] to resolve without caching, and nil for logger
// to discard logs.
func NewResolver(c cache.Cache, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{
		cache:  c,
		client: httputil.NewClient(c),
		logger: logger,
	}
}

// SetPalette overrides the palette used for no-hue samples. Call before
// handing the resolver to concurrent users.
func (r *Resolver) SetPalette(palette []string) {
	r.palette = palette
}

// Resolve returns the sampled base color for an image reference,
// fetching and decoding the image on a cache miss. If refresh is true
// the caches are bypassed.
func (r *Resolver) Resolve(ctx context.Context, imageRef string, refresh bool) (Color, error) {
	key := cache.ColorKey(imageRef)
	if !refresh {
		if data, ok, _ := r.cache.Get(ctx, key); ok {
			if c, err := ParseHex(string(data)); err == nil {
				return c, nil
			}
		}
	}

	data, err := r.load(ctx, imageRef, refresh)
	if err != nil {
		return Color{}, err
	}

	c, err := Sample(data)
	if err != nil {
		return Color{}, err
	}

	_ = r.cache.Set(ctx, key, []byte(c.Hex()), cache.ColorTTL)
	return c, nil
}

// Pick resolves an image reference all the way to a tape color. It
// never fails: unreachable or undecodable images get [Fallback], and
// the error is logged at warn level.
func (r *Resolver) Pick(ctx context.Context, imageRef string, rng *rand.Rand) string {
	c, err := r.Resolve(ctx, imageRef, false)
	if err != nil {
		r.logger.Warn("tape sample unavailable, using fallback color", "image", imageRef, "error", err)
		return Fallback
	}
	return DeriveFrom(c, rng, r.palette)
}

// load fetches http(s) references through the retrying client and
// reads anything else from disk.
func (r *Resolver) load(ctx context.Context, imageRef string, refresh bool) ([]byte, error) {
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		return r.client.CachedBytes(ctx, cache.ImageKey(imageRef), cache.ImageTTL, refresh, func(ctx context.Context) ([]byte, error) {
			return r.client.FetchBytes(ctx, imageRef)
		})
	}
	return os.ReadFile(imageRef)
}
