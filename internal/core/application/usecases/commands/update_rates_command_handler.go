package commands

import (
	"context"
	"time"

	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/ports"
)

// UpdateRatesCommandHandler stores a new rate table. Existing orders keep
// the price they were created with.
type UpdateRatesCommandHandler struct {
	uowFactory RateUoWFactory
	publisher  ports.EventPublisher
}

func NewUpdateRatesCommandHandler(uowFactory RateUoWFactory, publisher ports.EventPublisher) UpdateRatesCommandHandler {
	return UpdateRatesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h *UpdateRatesCommandHandler) Handle(ctx context.Context, cmd UpdateRatesCommand) (rates.Table, error) {
	if err := cmd.Validate(); err != nil {
		return rates.Table{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return rates.Table{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RateRepository().Save(ctx, cmd.Table()); err != nil {
		return rates.Table{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return rates.Table{}, err
	}

	publishCommitted(ctx, h.publisher, events.NewRatesUpdated(cmd.Table(), time.Now().UTC()))
	return cmd.Table(), nil
}
