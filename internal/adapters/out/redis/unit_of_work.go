package redis

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/tracking"
	"swiftgo/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

type TrackingUnitOfWorkFactory struct {
	client goredis.Cmdable
	key    string
}

func NewTrackingUnitOfWorkFactory(client goredis.Cmdable, key string) *TrackingUnitOfWorkFactory {
	return &TrackingUnitOfWorkFactory{client: client, key: key}
}

func (f *TrackingUnitOfWorkFactory) Create() *TrackingUnitOfWork {
	return &TrackingUnitOfWork{repo: NewTrackingRepository(f.client, f.key)}
}

// TrackingUnitOfWork buffers the list saved between Begin and Commit and
// writes it on Commit. Concurrent writers are last-writer-wins.
type TrackingUnitOfWork struct {
	repo    *TrackingRepository
	active  bool
	pending *tracking.Recent
}

func (u *TrackingUnitOfWork) Begin(_ context.Context) error {
	u.active = true
	u.pending = nil
	return nil
}

func (u *TrackingUnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrNoActiveTransaction
	}
	pending := u.pending
	u.active, u.pending = false, nil
	if pending == nil {
		return nil
	}
	return u.repo.Save(ctx, *pending)
}

func (u *TrackingUnitOfWork) Rollback(_ context.Context) error {
	u.active, u.pending = false, nil
	return nil
}

func (u *TrackingUnitOfWork) TrackingRepository() ports.TrackingRepository {
	return &txTrackingRepository{uow: u}
}

type txTrackingRepository struct {
	uow *TrackingUnitOfWork
}

func (r *txTrackingRepository) Get(ctx context.Context) (tracking.Recent, error) {
	if r.uow.active && r.uow.pending != nil {
		return tracking.NewRecent(r.uow.pending.Numbers()), nil
	}
	return r.uow.repo.Get(ctx)
}

func (r *txTrackingRepository) Save(ctx context.Context, recent tracking.Recent) error {
	if !r.uow.active {
		return r.uow.repo.Save(ctx, recent)
	}
	saved := tracking.NewRecent(recent.Numbers())
	r.uow.pending = &saved
	return nil
}
