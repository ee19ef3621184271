// Package commands contains the business operations that modify state.
// Every handler runs its work in one unit of work: either every change is
// committed or none is. Domain events are published after the commit.
package commands

import (
	"context"

	"swiftgo/internal/core/ports"
)

// Unit of Work interfaces give each handler access to exactly the
// repositories it needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WalletRepoFactory interface {
		WalletRepository() ports.WalletRepository
	}

	RateRepoFactory interface {
		RateRepository() ports.RateRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// OrderUoW is used by commands touching orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderWalletUoW is used when an order change may move money.
	OrderWalletUoW interface {
		TxManager
		OrderRepoFactory
		WalletRepoFactory
	}

	OrderWalletUoWFactory interface {
		Create() OrderWalletUoW
	}

	// PricingUoW is used by order creation, which reads rates and history,
	// stores the order and debits the wallet in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   table, err := uow.RateRepository().Get(ctx)
	//   history, err := uow.OrderRepository().GetAll(ctx)
	//   // ... price, add order, pay
	//
	//   err = uow.Commit(ctx)
	PricingUoW interface {
		TxManager
		OrderRepoFactory
		WalletRepoFactory
		RateRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}

	WalletUoW interface {
		TxManager
		WalletRepoFactory
	}

	WalletUoWFactory interface {
		Create() WalletUoW
	}

	RateUoW interface {
		TxManager
		RateRepoFactory
	}

	RateUoWFactory interface {
		Create() RateUoW
	}

	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	ProfileUoWFactory interface {
		Create() ProfileUoW
	}
)
