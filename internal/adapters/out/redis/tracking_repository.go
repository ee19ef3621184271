// Package redis keeps the recently tracked numbers in a redis list so that
// every service instance shares them.
package redis

import (
	"context"
	"errors"
	"fmt"

	"swiftgo/internal/core/domain/model/tracking"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultKey is the list holding the recent tracking numbers, newest first.
const DefaultKey = "swiftgo:tracking:recent"

// Connect opens a client and checks that the server answers.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}

type TrackingRepository struct {
	client goredis.Cmdable
	key    string
}

func NewTrackingRepository(client goredis.Cmdable, key string) *TrackingRepository {
	if key == "" {
		key = DefaultKey
	}
	return &TrackingRepository{client: client, key: key}
}

func (r *TrackingRepository) Get(ctx context.Context) (tracking.Recent, error) {
	numbers, err := r.client.LRange(ctx, r.key, 0, tracking.MaxRecent-1).Result()
	if errors.Is(err, goredis.Nil) {
		return tracking.NewRecent(nil), nil
	}
	if err != nil {
		return tracking.Recent{}, fmt.Errorf("read recent tracking: %w", err)
	}
	return tracking.NewRecent(numbers), nil
}

// Save replaces the whole list in one MULTI/EXEC block.
func (r *TrackingRepository) Save(ctx context.Context, recent tracking.Recent) error {
	numbers := recent.Numbers()
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(numbers) == 0 {
			return nil
		}
		values := make([]any, len(numbers))
		for i, n := range numbers {
			values[i] = n
		}
		pipe.RPush(ctx, r.key, values...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("write recent tracking: %w", err)
	}
	return nil
}
