package memory

import (
	"context"
	"errors"

	"swiftgo/internal/core/ports"
)

// ErrTransactionIsActive is returned by Begin on a unit of work that already began.
var ErrTransactionIsActive = errors.New("transaction is already active")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork holds the store exclusively between Begin and Commit or
// Rollback. Repositories used outside a transaction each take the store for
// a single call and write through immediately.
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin waits for exclusive ownership of the store or for ctx to end.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionIsActive
	}
	if err := u.store.acquire(ctx); err != nil {
		return err
	}

	working := u.store.state.clone()
	u.tx = &working
	return nil
}

// Commit swaps the working copy in and releases the store.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return errors.New("no active transaction")
	}

	u.store.state = *u.tx
	u.store.dirty = true
	u.tx = nil
	u.store.release()
	return nil
}

// Rollback drops the working copy. Without an active transaction it does nothing.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}

	u.tx = nil
	u.store.release()
	return nil
}

// with runs fn on the working copy inside a transaction, otherwise on the
// committed state under the store's ownership.
func (u *UnitOfWork) with(ctx context.Context, write bool, fn func(st *state) error) error {
	if u.tx != nil {
		return fn(u.tx)
	}

	if err := u.store.acquire(ctx); err != nil {
		return err
	}
	defer u.store.release()

	if !write {
		return fn(&u.store.state)
	}

	working := u.store.state.clone()
	if err := fn(&working); err != nil {
		return err
	}
	u.store.state = working
	u.store.dirty = true
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: u}
}

func (u *UnitOfWork) WalletRepository() ports.WalletRepository {
	return &walletRepository{uow: u}
}

func (u *UnitOfWork) RateRepository() ports.RateRepository {
	return &rateRepository{uow: u, defaults: u.store.defaultRates}
}

func (u *UnitOfWork) TrackingRepository() ports.TrackingRepository {
	return &trackingRepository{uow: u}
}

func (u *UnitOfWork) ProfileRepository() ports.ProfileRepository {
	return &profileRepository{uow: u}
}
