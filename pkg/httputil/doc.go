// Package httputil provides HTTP plumbing for fetching remote artwork
// images.
//
// # Overview
//
// Catalog entries reference images by URL. The only network traffic in
// the application is downloading those images so a tape color can be
// sampled from the pixels, and this package owns that traffic:
//
//   - [Client]: byte-oriented GET client with caching and a size cap
//   - [Retry]: automatic retry with exponential backoff
//
// # Fetching
//
// [Client.CachedBytes] is the usual entry point. It consults the cache
// first, then fetches with retries and stores the result:
//
//	client := httputil.NewClient(fileCache)
//	data, err := client.CachedBytes(ctx, cache.ImageKey(ref), cache.ImageTTL, false, func(ctx context.Context) ([]byte, error) {
//	    return client.FetchBytes(ctx, ref)
//	})
//
// Responses larger than [DefaultMaxFetchBytes] are rejected with
// [ErrTooLarge] so a mislabeled video or archive cannot exhaust memory.
//
// # Retry
//
// [Retry] re-runs an operation on transient failures only. Wrap network
// errors and 5xx responses in [RetryableError]; anything else (a 404, a
// decode failure) returns immediately. [Client.FetchBytes] already
// classifies its errors this way.
//
// # Configuration
//
// Defaults suit interactive use:
//
//   - Request timeout: 10 seconds
//   - Max retries: 3
//   - Base backoff: 1 second
//   - Response cap: 16 MiB
package httputil
