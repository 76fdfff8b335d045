package ports

import (
	"context"

	"dispatch/internal/core/domain/model/queue"
)

// ZoneQueueRepository loads and stores the zone queue set as a whole.
type ZoneQueueRepository interface {
	Get(ctx context.Context) (*queue.ZoneQueues, error)
	Save(ctx context.Context, q *queue.ZoneQueues) error
}
