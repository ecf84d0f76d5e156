// Package ppcache provides a content-addressed cache for rendered output.
//
// Rendering the same Doc at the same width and EOL always produces the same
// bytes, so a render is keyed by a hash of (doc, width, eol) and the result
// can be reused across calls. Cache backs the CLI's --cache flag and the
// server's render endpoint.
package ppcache

import (
	"context"
	"time"
)

// Cache stores rendered output keyed by an opaque string key. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. hit is false when the key is absent or expired.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a value. It is not an error if the key is absent.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
