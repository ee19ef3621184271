// Package postgres is the relational storage driver. A unit of work maps to
// one database transaction; repositories obtained outside Begin run each
// statement on its own.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, rates.Default())
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	w, err := uow.WalletRepository().Get(ctx) // row locked until commit
//	// ... pay, add order
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"swiftgo/internal/adapters/out/postgres/orderrepo"
	"swiftgo/internal/adapters/out/postgres/staterepo"
	"swiftgo/internal/adapters/out/postgres/walletrepo"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	defaultRates rates.Table
}

// NewGormUnitOfWorkFactory creates a factory. defaultRates is served by the
// rate repository until a table has been saved.
func NewGormUnitOfWorkFactory(db *gorm.DB, defaultRates rates.Table) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, defaultRates: defaultRates}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:           f.db,
		defaultRates: f.defaultRates,
	}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	defaultRates rates.Table
}

// Begin starts a transaction. Calling it again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction without an active transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Without one, e.g. after Commit, it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// WalletRepository locks the wallet row on Get while a transaction is active.
func (uow *GormUnitOfWork) WalletRepository() ports.WalletRepository {
	return walletrepo.NewGormWalletRepository(uow.conn(), uow.tx != nil)
}

func (uow *GormUnitOfWork) RateRepository() ports.RateRepository {
	return staterepo.NewGormRateRepository(uow.conn(), uow.defaultRates)
}

func (uow *GormUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return staterepo.NewGormTrackingRepository(uow.conn())
}

func (uow *GormUnitOfWork) ProfileRepository() ports.ProfileRepository {
	return staterepo.NewGormProfileRepository(uow.conn())
}
