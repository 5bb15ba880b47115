// Package cache stores rendered calendar artifacts between runs.
//
// Rendering a full year to PDF or PNG takes seconds, while the inputs that
// determine the output (year, seed, week start, month names, styled dates)
// are tiny. The pipeline hashes those inputs into a key with a [Keyer] and
// keeps each encoded artifact in a [Cache].
//
// Two implementations are provided: [FileCache] for the CLI, storing entries
// as JSON files under the user cache directory, and [NullCache] for
// --no-cache runs and tests.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 30 * 24 * time.Hour

// Keyer derives cache keys.
type Keyer interface {
	// DocumentKey identifies a laid-out calendar.
	DocumentKey(opts DocumentKeyOpts) string
	// ArtifactKey identifies one encoded output of a document.
	ArtifactKey(documentHash string, opts ArtifactKeyOpts) string
}

// DocumentKeyOpts are the inputs that determine a calendar's drawing.
type DocumentKeyOpts struct {
	Year        int      `json:"year"`
	Seed        uint64   `json:"seed"`
	SundayFirst bool     `json:"sunday_first"`
	MonthNames  []string `json:"month_names"`
	Bold        []string `json:"bold"`
	Italic      []string `json:"italic"`
}

// ArtifactKeyOpts select an encoding of a document.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) DocumentKey(opts DocumentKeyOpts) string {
	return hashKey("document", opts)
}

func (DefaultKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", documentHash, opts)
}
