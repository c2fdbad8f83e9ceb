// Package httputil provides HTTP infrastructure for the license fetchers.
//
// It contains two building blocks:
//
//   - [Cache]: file-based caching of JSON-marshalable responses with TTL
//   - [Retry]: retry with exponential backoff for transient failures
//
// Cached entries live under ~/.cache/noticegen/ by default, keyed by a
// SHA-256 hash of the cache key, so repeated runs against an unchanged
// dependency set hit the network at most once per entry per TTL window.
// The cache can be cleared with `noticegen cache clear`.
//
// Only errors wrapped in [RetryableError] (network failures and 5xx
// responses) trigger retries; 404s and other client errors fail fast.
package httputil
