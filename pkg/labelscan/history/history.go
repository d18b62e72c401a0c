// Package history persists product summaries into a bounded,
// most-recent-first scan log. The analysis pipeline never touches it; the
// store is injected at the application boundary.
package history

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/foodlens/labelscan/pkg/labelscan/product"
)

// Capacity is the maximum number of retained scans. Appending beyond it
// evicts the oldest entries.
const Capacity = 50

// Entry is one persisted scan.
type Entry struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Summary   product.Summary `json:"summary"`
}

// Store is the scan history interface.
type Store interface {
	Close() error

	// Append records a scan, evicting the oldest entries past Capacity.
	Append(ctx context.Context, e Entry) error
	// Recent returns up to limit entries, most recent first. A
	// non-positive limit means Capacity.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// IDSource issues monotonic ULIDs for history entries.
type IDSource struct {
	entropy *ulid.MonotonicEntropy
}

// NewIDSource creates an ID source backed by crypto/rand.
func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewEntry wraps a summary into a history entry stamped with now.
func (s *IDSource) NewEntry(now time.Time, sum product.Summary) Entry {
	return Entry{
		ID:        ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		CreatedAt: now,
		Summary:   sum,
	}
}
