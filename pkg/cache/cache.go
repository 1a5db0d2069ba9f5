// Package cache provides artifact caching for the schematic pipeline.
//
// Rendering the same well document twice produces byte-identical output, so
// the pipeline caches the encoded PNG keyed by a content hash of the input
// document plus the render options. Two implementations exist: a file-based
// cache for CLI and service usage, and a null cache that disables caching
// entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// TTLArtifact is how long rendered artifacts stay cached. Input documents
// are content-hashed, so a stale hit is impossible; the TTL only bounds disk
// growth.
const TTLArtifact = 24 * time.Hour

// ArtifactKeyOpts are the render settings that participate in the cache key.
// Changing any of them must produce a different key.
type ArtifactKeyOpts struct {
	Width  int
	Height int
}

// Keyer derives cache keys for pipeline stages.
type Keyer interface {
	// DocumentKey hashes a raw well document.
	DocumentKey(doc []byte) string

	// ArtifactKey derives the key for a rendered artifact from the document
	// hash and the render options.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard SHA-256 based key derivation.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// DocumentKey hashes the raw document bytes.
func (DefaultKeyer) DocumentKey(doc []byte) string {
	return hashKey("doc", Hash(doc))
}

// ArtifactKey combines the document hash with the render options.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("png", docHash, opts.Width, opts.Height)
}
