// Package cache memoizes rendered output for the arbor CLI.
//
// Rendering a tree through Graphviz is the only expensive step in the
// toolchain, and its output is a pure function of the DOT text and target
// format. Entries are therefore keyed by a content hash and never expire:
// a stale entry is impossible, only an unused one.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cache stores rendered bytes under content-hash keys.
// Implementations must be safe for use from a single goroutine; the CLI
// does not render concurrently.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value, overwriting any previous entry for the key.
	Set(ctx context.Context, key string, data []byte) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key derives the cache key for rendering dot to the given format.
// The key is "render:" followed by the full SHA-256 of format and DOT text,
// so distinct inputs cannot collide in practice.
func Key(dot, format string) string {
	sum := sha256.Sum256([]byte(format + "\x00" + dot))
	return fmt.Sprintf("render:%s", hex.EncodeToString(sum[:]))
}
