package store

import (
	"context"

	"github.com/feral-file/ff-airdrop/internal/store/schema"
)

// HistoryFilter narrows history queries. Zero values mean "no filter".
type HistoryFilter struct {
	Recipient string
	RoomID    string
	AgentID   string
	Limit     int
}

// StatsFilter narrows statistics queries. Zero values mean "no filter".
type StatsFilter struct {
	RoomID  string
	AgentID string
}

// DistributionStats summarizes the ledger for a scope
type DistributionStats struct {
	TotalCount           int64
	UniqueRecipientCount int64
}

// Store defines the interface for ledger operations
type Store interface {
	// HasServed checks whether any distribution record exists for the recipient
	HasServed(ctx context.Context, recipient string) (bool, error)

	// RecordDistribution attempts the single constrained insert that
	// guards against double distribution. It returns (false, nil) when
	// the uniqueness constraint rejected the row and (false, err) on
	// storage errors; (true, nil) means this caller won the insert.
	RecordDistribution(ctx context.Context, record *schema.DistributionRecord) (bool, error)

	// History retrieves distribution records matching the filter, newest first
	History(ctx context.Context, filter HistoryFilter) ([]schema.DistributionRecord, error)

	// Stats retrieves aggregate counts for the filtered scope
	Stats(ctx context.Context, filter StatsFilter) (DistributionStats, error)
}
