package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"swiftgo/internal/adapters/out/eventlog"
	kafka_adapter "swiftgo/internal/adapters/out/kafka"
	"swiftgo/internal/adapters/out/memory"
	"swiftgo/internal/adapters/out/postgres"
	redis_adapter "swiftgo/internal/adapters/out/redis"
	"swiftgo/internal/core/application/usecases/commands"
	"swiftgo/internal/core/ports"

	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// Infrastructure holds the outbound adapters selected by Config.
type Infrastructure struct {
	UoWFactory ports.UnitOfWorkFactory
	Publisher  ports.EventPublisher

	// Store is set for the memory driver only.
	Store *memory.Store
	// Tracking is set when REDIS_ADDR is configured.
	Tracking *redis_adapter.TrackingUnitOfWorkFactory

	closers []func() error
}

func NewInfrastructure(ctx context.Context, config Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{}
	if err := infra.openStorage(ctx, config, logger); err != nil {
		_ = infra.Close()
		return nil, err
	}

	if addr := config.RedisAddr; addr != "" {
		client, err := redis_adapter.Connect(ctx, addr)
		if err != nil {
			_ = infra.Close()
			return nil, err
		}
		infra.closers = append(infra.closers, client.Close)
		infra.Tracking = redis_adapter.NewTrackingUnitOfWorkFactory(client, redis_adapter.DefaultKey)
		logger.InfoContext(ctx, "Recent tracking stored in redis", "addr", addr)
	}

	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		publisher := kafka_adapter.NewEventPublisher(brokers, config.KafkaOrderChangedTopic, logger)
		infra.closers = append(infra.closers, publisher.Close)
		infra.Publisher = publisher
		logger.InfoContext(ctx, "Publishing events to kafka", "topic", config.KafkaOrderChangedTopic)
	} else {
		infra.Publisher = eventlog.NewPublisher(logger)
	}

	return infra, nil
}

func (i *Infrastructure) openStorage(ctx context.Context, config Config, logger *slog.Logger) error {
	switch config.StorageDriver {
	case StoragePostgres:
		db, err := postgres.Open(config.DSN(), &gorm.Config{Logger: gorm_logger.Default.LogMode(gorm_logger.Warn)})
		if err != nil {
			return err
		}
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			i.closers = append(i.closers, sqlDB.Close)
		}
		if err = postgres.Migrate(ctx, db); err != nil {
			return err
		}
		i.UoWFactory = postgres.NewGormUnitOfWorkFactory(db, config.DefaultRates())
		logger.InfoContext(ctx, "Using postgres storage", "host", config.DBHost, "db", config.DBName)

	default:
		store := memory.NewStore(config.DefaultRates())
		found, err := store.LoadFile(ctx, config.StateFile)
		if err != nil {
			return fmt.Errorf("load state file: %w", err)
		}
		i.Store = store
		i.UoWFactory = memory.NewUnitOfWorkFactory(store)
		logger.InfoContext(ctx, "Using memory storage", "state_file", config.StateFile, "restored", found)
	}
	return nil
}

// TrackingFactory returns the redis tracking store, or nil when recent
// tracking stays in the main storage.
func (i *Infrastructure) TrackingFactory() func() commands.TrackingUoW {
	if i.Tracking == nil {
		return nil
	}
	return func() commands.TrackingUoW {
		return i.Tracking.Create()
	}
}

// Close releases every connection in reverse order of opening.
func (i *Infrastructure) Close() error {
	var errs []error
	for k := len(i.closers) - 1; k >= 0; k-- {
		errs = append(errs, i.closers[k]())
	}
	i.closers = nil
	return errors.Join(errs...)
}
