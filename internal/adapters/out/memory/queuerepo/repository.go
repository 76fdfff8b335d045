package queuerepo

import (
	"context"

	"dispatch/internal/core/domain/model/queue"
)

// MemoryZoneQueueRepository implements ZoneQueueRepository over a QueuesDTO.
type MemoryZoneQueueRepository struct {
	state *QueuesDTO
}

func NewMemoryZoneQueueRepository(state *QueuesDTO) *MemoryZoneQueueRepository {
	return &MemoryZoneQueueRepository{state: state}
}

// Get rebuilds the queue set. Every call returns fresh aggregates.
func (r *MemoryZoneQueueRepository) Get(_ context.Context) (*queue.ZoneQueues, error) {
	return toDomain(*r.state)
}

// Save replaces the stored queues with q.
func (r *MemoryZoneQueueRepository) Save(_ context.Context, q *queue.ZoneQueues) error {
	*r.state = fromDomain(q)
	return nil
}
