package eventbus

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/ports"
)

// FanOut hands every batch to each publisher in order. A failing publisher
// does not stop the others; their errors are joined.
type FanOut struct {
	publishers []ports.EventPublisher
}

// NewFanOut skips nil publishers.
func NewFanOut(publishers ...ports.EventPublisher) *FanOut {
	f := &FanOut{}
	for _, p := range publishers {
		if p != nil {
			f.publishers = append(f.publishers, p)
		}
	}
	return f
}

func (f *FanOut) Publish(ctx context.Context, evts ...events.Event) error {
	var err error
	for _, p := range f.publishers {
		err = errors.Join(err, p.Publish(ctx, evts...))
	}
	return err
}
