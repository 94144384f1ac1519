// Package cache provides the bounded, TTL-based eligibility cache that
// fronts the ledger's read path. It is a per-process latency
// optimization only; correctness always rests on the ledger's
// uniqueness constraint.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/feral-file/ff-airdrop/internal/store/schema"
)

// DefaultTTL is how long a cached eligibility answer stays fresh
const DefaultTTL = 5 * time.Minute

// DefaultCapacity bounds the number of cached recipients
const DefaultCapacity = 10000

// EligibilityCache caches per-recipient "already served" answers and the
// most recent history page used for status formatting. Entries expire
// passively after the TTL; successful writes overwrite them eagerly.
type EligibilityCache struct {
	served  *expirable.LRU[string, bool]
	history *expirable.LRU[string, []schema.DistributionRecord]
}

// New creates an eligibility cache with the given TTL and capacity.
// Non-positive arguments fall back to the defaults.
func New(ttl time.Duration, capacity int) *EligibilityCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &EligibilityCache{
		served:  expirable.NewLRU[string, bool](capacity, nil, ttl),
		history: expirable.NewLRU[string, []schema.DistributionRecord](capacity, nil, ttl),
	}
}

// GetServed returns the cached eligibility answer for a recipient
func (c *EligibilityCache) GetServed(recipient string) (served bool, ok bool) {
	return c.served.Get(recipient)
}

// SetServed caches an eligibility answer, negative results included
func (c *EligibilityCache) SetServed(recipient string, served bool) {
	c.served.Add(recipient, served)
}

// GetHistory returns the cached most-recent history page for a recipient
func (c *EligibilityCache) GetHistory(recipient string) ([]schema.DistributionRecord, bool) {
	return c.history.Get(recipient)
}

// SetHistory caches the most-recent history page for a recipient
func (c *EligibilityCache) SetHistory(recipient string, records []schema.DistributionRecord) {
	c.history.Add(recipient, records)
}

// InvalidateHistory drops the cached history page for a recipient
func (c *EligibilityCache) InvalidateHistory(recipient string) {
	c.history.Remove(recipient)
}
