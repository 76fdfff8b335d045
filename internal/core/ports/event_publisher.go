package ports

import (
	"context"

	"dispatch/internal/core/domain/events"
)

// EventPublisher delivers committed domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...events.Event) error
}
