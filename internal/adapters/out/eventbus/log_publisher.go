package eventbus

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/events"
)

// LogPublisher writes every event to the log at debug level.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("component", "event_log")}
}

func (p *LogPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	for _, e := range evts {
		p.logger.DebugContext(ctx, "domain event",
			"event", e.EventName(),
			"aggregate_id", e.AggregateID(),
			"occurred_at", e.OccurredAt(),
		)
	}
	return nil
}
