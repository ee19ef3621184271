package postgres

import (
	"context"
	"fmt"

	"swiftgo/internal/adapters/out/postgres/orderrepo"
	"swiftgo/internal/adapters/out/postgres/staterepo"
	"swiftgo/internal/adapters/out/postgres/walletrepo"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Models lists every table the driver owns.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&walletrepo.WalletDTO{},
		&walletrepo.EntryDTO{},
		&staterepo.RateTableDTO{},
		&staterepo.RecentTrackingDTO{},
		&staterepo.ProfileDTO{},
	}
}

// Open connects to dsn.
func Open(dsn string, config *gorm.Config) (*gorm.DB, error) {
	if config == nil {
		config = &gorm.Config{}
	}
	db, err := gorm.Open(gorm_postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema and seeds the wallet row.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := walletrepo.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed wallet: %w", err)
	}
	return nil
}
