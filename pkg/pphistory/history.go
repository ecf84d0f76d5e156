// Package pphistory records an audit trail of renders performed through the
// server, exposed via its GET /history endpoint.
//
// Implementations for different backends:
//   - memory: an in-process ring buffer, used by default
//   - mongo: a MongoDB-backed store, for a multi-instance server deployment
package pphistory

import (
	"context"
	"time"

	"github.com/relsqui/prettydoc/pkg/pp"
)

// Entry records one completed render.
type Entry struct {
	ID          string    `json:"id" bson:"_id"`
	DocHash     string    `json:"doc_hash" bson:"doc_hash"`
	Width       int       `json:"width" bson:"width"`
	EOL         pp.EOL    `json:"eol" bson:"eol"`
	OutputBytes int       `json:"output_bytes" bson:"output_bytes"`
	CacheHit    bool      `json:"cache_hit" bson:"cache_hit"`
	RenderedAt  time.Time `json:"rendered_at" bson:"rendered_at"`
}

// Store is the interface for history storage backends.
type Store interface {
	// Record appends an entry.
	Record(ctx context.Context, entry Entry) error
	// Recent returns up to limit entries, most recent first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
	// Close releases any resources held by the store.
	Close() error
}
