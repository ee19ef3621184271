package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command or query.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it take part in the transaction started by Begin; without Begin they read
// the committed state.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes every change since Begin visible at once.
	Commit(ctx context.Context) error

	// Rollback discards every change since Begin. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	WalletRepository() WalletRepository
	RateRepository() RateRepository
	TrackingRepository() TrackingRepository
	ProfileRepository() ProfileRepository
}
