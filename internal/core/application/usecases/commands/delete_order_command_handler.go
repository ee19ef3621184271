package commands

import (
	"context"
	"time"

	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/ports"
)

// DeleteOrderCommandHandler deletes an order. Only Selesai orders may be
// deleted; any other status fails with errs.OperationNotAllowedError.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return err
	}

	if err = o.ValidateDelete(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.Number()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.publisher, events.OrderDeleted{
		OrderNo:   o.Number().String(),
		DeletedAt: time.Now().UTC(),
	})
	return nil
}
