// Package cache provides transient byte caching for computed layouts.
//
// The layout HTTP service hashes each request body and caches the
// response so identical graphs are not re-simulated. Entries are
// TTL-bounded and may disappear at any time: this is a cache, not a
// persistence layer.
//
// Three backends implement [Cache]:
//   - [NewMemoryCache]: in-process map, for single-instance servers and tests
//   - [NewRedisCache]: Redis, for multi-instance deployments
//   - [NewNullCache]: no-op, for disabling caching
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores byte blobs under string keys with a time-to-live.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the cached data for key. The second return is false on
	// a miss; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes the SHA-256 of data as a 64-character hex string.
// The full digest is used so keys cannot collide across request bodies.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
