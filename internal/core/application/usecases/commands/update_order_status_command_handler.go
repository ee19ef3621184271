package commands

import (
	"context"
	"time"

	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/ports"
	"swiftgo/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change.
//
// Business rules:
//   - an unknown order fails with errs.ObjectNotFoundError
//   - an unrecognized status name or a move the transition table forbids
//     fails with errs.InvalidTransitionError and changes nothing
//   - cancelling a Non-COD order refunds its amount to the wallet with
//     "Refund <orderNo>"; COD cancellations leave the wallet alone
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderWalletUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderWalletUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	from := o.Status()
	target, err := order.ParseStatus(cmd.Status())
	if err != nil {
		return nil, errs.NewInvalidTransitionErrorWithCause(from.String(), cmd.Status(), err)
	}

	if err = o.ChangeStatus(target); err != nil {
		return nil, err
	}

	at := h.now().UTC()
	evts := []events.Event{events.NewOrderStatusChanged(o.Number(), from, target, at)}

	if o.RequiresRefund() {
		walletRepo := uow.WalletRepository()
		w, err := walletRepo.Get(ctx)
		if err != nil {
			return nil, err
		}

		entry, err := w.Refund(o.Amount(), "Refund "+o.Number().String(), at)
		if err != nil {
			return nil, err
		}

		if err = walletRepo.Save(ctx, w); err != nil {
			return nil, err
		}
		evts = append(evts, events.NewWalletChanged(entry, w))
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishCommitted(ctx, h.publisher, evts...)
	return o, nil
}
