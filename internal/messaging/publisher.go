package messaging

import (
	"context"

	"github.com/feral-file/ff-airdrop/internal/domain"
)

// Publisher publishes distribution events for downstream consumers
type Publisher interface {
	// PublishDistribution publishes a committed distribution event
	PublishDistribution(ctx context.Context, event *domain.DistributionEvent) error

	// Close closes the underlying connection
	Close()
}
