// Package queries contains the read-only use cases. Handlers read through a
// fresh unit of work without beginning a transaction and never write, except
// TrackOrderQueryHandler which reports successful lookups to a TrackingRecorder.
package queries

import (
	"context"

	"swiftgo/internal/core/ports"
)

type (
	OrderReader interface {
		OrderRepository() ports.OrderRepository
	}

	OrderReaderFactory interface {
		Create() OrderReader
	}

	// QuoteReader gives the pricing engine its inputs.
	QuoteReader interface {
		OrderRepository() ports.OrderRepository
		RateRepository() ports.RateRepository
	}

	QuoteReaderFactory interface {
		Create() QuoteReader
	}

	DashboardReader interface {
		OrderRepository() ports.OrderRepository
		WalletRepository() ports.WalletRepository
	}

	DashboardReaderFactory interface {
		Create() DashboardReader
	}

	WalletReader interface {
		WalletRepository() ports.WalletRepository
	}

	WalletReaderFactory interface {
		Create() WalletReader
	}

	RateReader interface {
		RateRepository() ports.RateRepository
	}

	RateReaderFactory interface {
		Create() RateReader
	}

	TrackingReader interface {
		TrackingRepository() ports.TrackingRepository
	}

	TrackingReaderFactory interface {
		Create() TrackingReader
	}

	ProfileReader interface {
		ProfileRepository() ports.ProfileRepository
	}

	ProfileReaderFactory interface {
		Create() ProfileReader
	}

	// TrackingRecorder remembers a tracking number that was found.
	TrackingRecorder interface {
		RecordTracking(ctx context.Context, number string) error
	}
)
