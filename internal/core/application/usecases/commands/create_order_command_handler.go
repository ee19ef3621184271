package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/services"
	"swiftgo/internal/core/ports"
)

// MaxShortNumberAttempts is how many four digit order numbers are tried
// before widening to eight digits.
const MaxShortNumberAttempts = 20

const maxLongNumberAttempts = 5

// ErrOrderNumbersExhausted is returned when no free order number was found.
var ErrOrderNumbersExhausted = errors.New("no free order number found")

// NumberGenerator draws a candidate order number with the given digit count.
type NumberGenerator func(digits int) order.Number

// CreateOrderCommandHandler prices a shipment request and places the order.
//
// Within one unit of work it:
//  1. reads the rate table and the order history
//  2. quotes the request with the pricing engine
//  3. for Non-COD orders, debits the wallet with "Pembayaran <orderNo>",
//     failing with wallet.ErrInsufficientBalance and changing nothing
//     when the balance is too low
//  4. stores the order as Pending
type CreateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
	publisher  ports.EventPublisher
	calculator services.PriceCalculator
	numbers    NumberGenerator
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory PricingUoWFactory, publisher ports.EventPublisher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		calculator: services.NewPriceCalculator(),
		numbers:    order.GenerateNumber,
		now:        time.Now,
	}
}

// WithNumberGenerator replaces the random order number source.
func (h CreateOrderCommandHandler) WithNumberGenerator(gen NumberGenerator) CreateOrderCommandHandler {
	h.numbers = gen
	return h
}

// WithClock replaces the time source.
func (h CreateOrderCommandHandler) WithClock(now func() time.Time) CreateOrderCommandHandler {
	h.now = now
	return h
}

// Handle places the order and returns it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	table, err := uow.RateRepository().Get(ctx)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	history, err := orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	number, err := h.freeNumber(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	at := h.now().UTC()
	breakdown := h.calculator.Quote(cmd.Request(), table, history)
	created, err := order.NewOrder(number, cmd.Request(), breakdown, at)
	if err != nil {
		return nil, err
	}

	evts := []events.Event{events.NewOrderCreated(created)}

	if created.Payment().IsPrepaid() {
		walletRepo := uow.WalletRepository()
		w, err := walletRepo.Get(ctx)
		if err != nil {
			return nil, err
		}

		entry, err := w.Pay(created.Amount(), "Pembayaran "+number.String(), at)
		if err != nil {
			return nil, err
		}

		if err = walletRepo.Save(ctx, w); err != nil {
			return nil, err
		}
		evts = append(evts, events.NewWalletChanged(entry, w))
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishCommitted(ctx, h.publisher, evts...)
	return created, nil
}

func (h *CreateOrderCommandHandler) freeNumber(ctx context.Context, repo ports.OrderRepository) (order.Number, error) {
	for attempt := range MaxShortNumberAttempts + maxLongNumberAttempts {
		digits := order.ShortNumberDigits
		if attempt >= MaxShortNumberAttempts {
			digits = order.LongNumberDigits
		}

		candidate := h.numbers(digits)
		taken, err := repo.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrOrderNumbersExhausted, MaxShortNumberAttempts+maxLongNumberAttempts)
}
