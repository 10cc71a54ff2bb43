package cache

import (
	"context"
	"time"
)

// TTL values for the two cacheable pipeline stages.
const (
	// TTLLayout is the lifetime of cached position maps. Layouts are pure
	// functions of graph, strategy and settings, so a long TTL is safe.
	TTLLayout = 24 * time.Hour

	// TTLArtifact is the lifetime of cached export artifacts (SVG, PNG, DOT).
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte blobs under string keys with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports a hit; a miss is not
	// an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any underlying resources.
	Close() error
}

// LayoutKeyOpts are the inputs that distinguish one layout computation from
// another for the same graph.
type LayoutKeyOpts struct {
	Strategy     string `json:"strategy"`
	SettingsHash string `json:"settings_hash"`
}

// ArtifactKeyOpts are the inputs that distinguish one export artifact from
// another for the same layout.
type ArtifactKeyOpts struct {
	Format       string `json:"format"`
	SettingsHash string `json:"settings_hash"`
}

// Keyer builds cache keys for the pipeline stages. Separating key
// construction from storage lets deployments prefix keys per tenant (see
// [NewScopedKeyer]) without touching the cache backend.
type Keyer interface {
	// LayoutKey builds the key for a computed position map.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey builds the key for an exported artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds keys of the form stage:sha256(inputs).
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
