package ports

import (
	"context"

	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/tracking"
	"swiftgo/internal/core/domain/model/wallet"
)

// WalletRepository stores the single wallet. Get returns an empty wallet
// before anything was saved; inside a transaction it locks the wallet until
// commit or rollback.
type WalletRepository interface {
	Get(ctx context.Context) (*wallet.Wallet, error)
	Save(ctx context.Context, w *wallet.Wallet) error
}

// RateRepository stores the rate table. Get returns the configured default
// table before anything was saved.
type RateRepository interface {
	Get(ctx context.Context) (rates.Table, error)
	Save(ctx context.Context, table rates.Table) error
}

// TrackingRepository stores the recently tracked numbers.
type TrackingRepository interface {
	Get(ctx context.Context) (tracking.Recent, error)
	Save(ctx context.Context, recent tracking.Recent) error
}

// ProfileRepository stores the current user profile. Get returns
// profile.Guest() before anything was saved.
type ProfileRepository interface {
	Get(ctx context.Context) (profile.Profile, error)
	Save(ctx context.Context, p profile.Profile) error
}
