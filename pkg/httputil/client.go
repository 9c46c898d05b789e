package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wallery/wallery/pkg/cache"
)

const httpTimeout = 10 * time.Second

// DefaultMaxFetchBytes caps the size of a fetched response body.
// Artwork scans are comfortably below this; anything larger is almost
// certainly not an image we should be sampling.
const DefaultMaxFetchBytes = 16 << 20

var (
	// ErrNotFound is returned when the remote image does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrTooLarge is returned when a response body exceeds the client's size cap.
	ErrTooLarge = errors.New("response too large")
)

// NewHTTPClient creates an HTTP client with a standard timeout for image requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Client fetches remote bytes with caching, retry, and a response size cap.
type Client struct {
	http          *http.Client
	cache         cache.Cache
	maxBytes      int64
	retryAttempts int
	retryDelay    time.Duration
}

// NewClient creates a Client backed by the given cache. Pass
// [cache.NewNullCache] to disable caching.
func NewClient(c cache.Cache) *Client {
	return &Client{
		http:          NewHTTPClient(),
		cache:         c,
		maxBytes:      DefaultMaxFetchBytes,
		retryAttempts: 3,
		retryDelay:    time.Second,
	}
}

// CachedBytes retrieves a value from cache or executes fetch and caches
// the result under key with the given ttl. If refresh is true, the
// cache is bypassed and fetch is always called. Cache write failures
// are ignored; the fetched bytes are still returned.
func (c *Client) CachedBytes(ctx context.Context, key string, ttl time.Duration, refresh bool, fetch func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			return data, nil
		}
	}

	var data []byte
	err := Retry(ctx, c.retryAttempts, c.retryDelay, func() error {
		var ferr error
		data, ferr = fetch(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	_ = c.cache.Set(ctx, key, data, ttl)
	return data, nil
}

// FetchBytes performs an HTTP GET and returns the response body.
// Network errors and 5xx responses come back wrapped in
// [RetryableError] so [Retry] will attempt them again; a 404 maps to
// [ErrNotFound] and fails immediately.
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	// Read one byte past the cap to tell "exactly at cap" from "over it".
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrTooLarge, c.maxBytes)
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
