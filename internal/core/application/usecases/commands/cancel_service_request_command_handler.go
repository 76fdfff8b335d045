package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/kernel"
)

// CancelServiceRequestCommandHandler drops a pending request from its zone
// queue. The other entries keep their relative order. No refund or penalty
// applies.
type CancelServiceRequestCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelServiceRequestCommandHandler(uowFactory UoWFactory) CancelServiceRequestCommandHandler {
	return CancelServiceRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the removed request.
func (h CancelServiceRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CancelServiceRequestCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	queueRepo := uow.ZoneQueueRepository()

	queues, err := queueRepo.Get(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	removed, err := queues.RemoveAt(cmd.Zone(), cmd.Position())
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w # %d", err, cmd.Position())
	}

	if err = queueRepo.Save(ctx, queues); err != nil {
		return kernel.UUID{}, err
	}

	uow.Record(events.NewServiceCancelled(removed, cmd.Zone(), cmd.Position()))

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return removed.ID(), nil
}
