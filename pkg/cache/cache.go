// Package cache provides solve-result caching for the boggle CLI and API.
//
// Solving a board is fast, but loading a large dictionary is not, and
// the HTTP API may see the same board repeatedly. Results are cached
// under a key derived from the board rows and a content hash of the
// dictionary, so a dictionary change invalidates every entry for it.
//
// Backends:
//   - FileCache: entries as files under the XDG cache dir (CLI default)
//   - RedisCache: shared cache for server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLSolve is how long cached solve results stay valid. Results are
// fully determined by board and dictionary, so the TTL exists only to
// bound cache growth.
const TTLSolve = 30 * 24 * time.Hour

// Cache stores opaque byte values under string keys with a TTL.
type Cache interface {
	// Get retrieves the value for key. The second return reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for the solve pipeline.
type Keyer interface {
	// SolveKey builds the key for a solve result given the board rows
	// and the dictionary content hash.
	SolveKey(rows []string, dictHash string) string
}

// DefaultKeyer hashes board rows and dictionary hash into a solve key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SolveKey generates a key of the form "solve:<sha256>".
func (k *DefaultKeyer) SolveKey(rows []string, dictHash string) string {
	return hashKey("solve", rows, dictHash)
}

// ScopedKeyer wraps a Keyer with a prefix so separate deployments can
// share one backend without colliding.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// SolveKey generates a prefixed solve-result key.
func (k *ScopedKeyer) SolveKey(rows []string, dictHash string) string {
	return k.prefix + k.inner.SolveKey(rows, dictHash)
}
