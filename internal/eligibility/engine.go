// Package eligibility answers "has this recipient already been served?"
// with a cache-aside read over the ledger, and formats the
// caller-facing status text. Nothing propagates as an error past this
// boundary.
package eligibility

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-airdrop/internal/cache"
	"github.com/feral-file/ff-airdrop/internal/domain"
	"github.com/feral-file/ff-airdrop/internal/logger"
	"github.com/feral-file/ff-airdrop/internal/metrics"
	"github.com/feral-file/ff-airdrop/internal/store"
)

// Engine composes the eligibility cache and the ledger store
type Engine struct {
	store store.Store
	cache *cache.EligibilityCache
}

// NewEngine creates an eligibility engine over the given store and cache
func NewEngine(s store.Store, c *cache.EligibilityCache) *Engine {
	return &Engine{store: s, cache: c}
}

// CheckEligibility reports whether the recipient was already served.
// Reads consult the cache first and populate it on miss, negative
// answers included. A ledger read error degrades to "not served"
// (availability over consistency: a false negative only risks a
// duplicate attempt, which the ledger's uniqueness constraint blocks
// downstream) and is never cached.
func (e *Engine) CheckEligibility(ctx context.Context, recipient domain.Address) bool {
	key := recipient.Normalize().String()

	if served, ok := e.cache.GetServed(key); ok {
		return served
	}

	served, err := e.store.HasServed(ctx, key)
	if err != nil {
		metrics.StoreReadDegrades.Inc()
		logger.ErrorCtx(ctx, err,
			zap.String("recipient", key),
			zap.String("fallback", "not_served"))
		return false
	}

	e.cache.SetServed(key, served)
	return served
}

// MarkServed refreshes the cache after a confirmed ledger write. Writes
// never populate the cache on their own; this is called only once the
// insert has been committed.
func (e *Engine) MarkServed(recipient domain.Address) {
	key := recipient.Normalize().String()
	e.cache.SetServed(key, true)
	e.cache.InvalidateHistory(key)
}

// DescribeStatus renders a human-readable distribution status for the
// recipient. It never returns an error; internal failures produce a
// generic message.
func (e *Engine) DescribeStatus(ctx context.Context, recipient domain.Address) string {
	key := recipient.Normalize().String()

	if !e.CheckEligibility(ctx, recipient) {
		return fmt.Sprintf("%s has not received an airdrop yet.", recipient)
	}

	records, ok := e.cache.GetHistory(key)
	if !ok {
		var err error
		records, err = e.store.History(ctx, store.HistoryFilter{
			Recipient: key,
			Limit:     1,
		})
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("recipient", key))
			return "Unable to look up the airdrop status right now. Please try again later."
		}
		e.cache.SetHistory(key, records)
	}

	if len(records) == 0 {
		// Served flag and history disagree, most likely a stale cache entry
		return fmt.Sprintf("%s has already received an airdrop.", recipient)
	}

	latest := records[0]
	msg := fmt.Sprintf("%s has already received an airdrop: token %s from contract %s on %s",
		recipient,
		latest.TokenID,
		latest.AssetContractAddress,
		latest.CreatedAt.UTC().Format(time.RFC1123))

	if latest.TxHash != nil && *latest.TxHash != "" {
		msg += fmt.Sprintf(" (tx %s)", *latest.TxHash)
	}

	return msg + "."
}
