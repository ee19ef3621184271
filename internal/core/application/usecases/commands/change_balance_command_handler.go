package commands

import (
	"context"
	"time"

	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/wallet"
	"swiftgo/internal/core/ports"
)

type walletMutation func(w *wallet.Wallet, amount kernel.Money, description string, at time.Time) (wallet.Entry, error)

// changeBalance runs one unconditional wallet mutation in its own unit of work.
func changeBalance(
	ctx context.Context,
	uowFactory WalletUoWFactory,
	publisher ports.EventPublisher,
	mutate walletMutation,
	amount kernel.Money,
	description string,
) (*wallet.Wallet, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WalletRepository()
	w, err := repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	entry, err := mutate(w, amount, description, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, w); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishCommitted(ctx, publisher, events.NewWalletChanged(entry, w))
	return w, nil
}

// AddBalanceCommandHandler tops up the wallet and records one history entry.
type AddBalanceCommandHandler struct {
	uowFactory WalletUoWFactory
	publisher  ports.EventPublisher
}

func NewAddBalanceCommandHandler(uowFactory WalletUoWFactory, publisher ports.EventPublisher) AddBalanceCommandHandler {
	return AddBalanceCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the wallet after the top-up.
func (h *AddBalanceCommandHandler) Handle(ctx context.Context, cmd AddBalanceCommand) (*wallet.Wallet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return changeBalance(ctx, h.uowFactory, h.publisher, (*wallet.Wallet).TopUp, cmd.Amount(), cmd.Description())
}

// DeductBalanceCommandHandler lowers the balance and records one history
// entry. The balance may become negative.
type DeductBalanceCommandHandler struct {
	uowFactory WalletUoWFactory
	publisher  ports.EventPublisher
}

func NewDeductBalanceCommandHandler(uowFactory WalletUoWFactory, publisher ports.EventPublisher) DeductBalanceCommandHandler {
	return DeductBalanceCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the wallet after the deduction.
func (h *DeductBalanceCommandHandler) Handle(ctx context.Context, cmd DeductBalanceCommand) (*wallet.Wallet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return changeBalance(ctx, h.uowFactory, h.publisher, (*wallet.Wallet).Deduct, cmd.Amount(), cmd.Description())
}
