package memory

import (
	"context"
	"slices"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/tracking"
	"swiftgo/internal/core/domain/model/wallet"
	"swiftgo/internal/core/ports"
	"swiftgo/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func indexOf(st *state, number order.Number) int {
	return slices.IndexFunc(st.orders, func(r orderRecord) bool {
		return r.OrderNo == number.String()
	})
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, true, func(st *state) error {
		if indexOf(st, aggregate.Number()) >= 0 {
			return ports.ErrOrderNumberTaken
		}
		st.orders = slices.Insert(st.orders, 0, orderFromDomain(aggregate))
		return nil
	})
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.with(ctx, true, func(st *state) error {
		i := indexOf(st, aggregate.Number())
		if i < 0 {
			return errs.NewObjectNotFoundError("order", aggregate.Number().String())
		}
		st.orders[i] = orderFromDomain(aggregate)
		return nil
	})
}

func (r *orderRepository) Delete(ctx context.Context, number order.Number) error {
	return r.uow.with(ctx, true, func(st *state) error {
		i := indexOf(st, number)
		if i < 0 {
			return errs.NewObjectNotFoundError("order", number.String())
		}
		st.orders = slices.Delete(st.orders, i, i+1)
		return nil
	})
}

func (r *orderRepository) Get(ctx context.Context, number order.Number) (*order.Order, error) {
	var found *order.Order
	err := r.uow.with(ctx, false, func(st *state) error {
		i := indexOf(st, number)
		if i < 0 {
			return errs.NewObjectNotFoundError("order", number.String())
		}
		o, err := st.orders[i].toDomain()
		found = o
		return err
	})
	return found, err
}

func (r *orderRepository) Exists(ctx context.Context, number order.Number) (bool, error) {
	exists := false
	err := r.uow.with(ctx, false, func(st *state) error {
		exists = indexOf(st, number) >= 0
		return nil
	})
	return exists, err
}

func (r *orderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var all []*order.Order
	err := r.uow.with(ctx, false, func(st *state) error {
		all = make([]*order.Order, 0, len(st.orders))
		for _, rec := range st.orders {
			o, err := rec.toDomain()
			if err != nil {
				return err
			}
			all = append(all, o)
		}
		return nil
	})
	return all, err
}

type walletRepository struct {
	uow *UnitOfWork
}

func (r *walletRepository) Get(ctx context.Context) (*wallet.Wallet, error) {
	var w *wallet.Wallet
	err := r.uow.with(ctx, false, func(st *state) error {
		var err error
		w, err = walletToDomain(st.balance, st.history)
		return err
	})
	return w, err
}

func (r *walletRepository) Save(ctx context.Context, w *wallet.Wallet) error {
	return r.uow.with(ctx, true, func(st *state) error {
		st.balance = w.Balance().Int64()
		st.history = entriesFromDomain(w.History())
		return nil
	})
}

type rateRepository struct {
	uow      *UnitOfWork
	defaults rates.Table
}

func (r *rateRepository) Get(ctx context.Context) (rates.Table, error) {
	table := r.defaults
	err := r.uow.with(ctx, false, func(st *state) error {
		if st.rates != nil {
			table = st.rates.toDomain()
		}
		return nil
	})
	return table, err
}

func (r *rateRepository) Save(ctx context.Context, table rates.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}
	return r.uow.with(ctx, true, func(st *state) error {
		st.rates = ratesFromDomain(table)
		return nil
	})
}

type trackingRepository struct {
	uow *UnitOfWork
}

func (r *trackingRepository) Get(ctx context.Context) (tracking.Recent, error) {
	var recent tracking.Recent
	err := r.uow.with(ctx, false, func(st *state) error {
		recent = recentToDomain(st.recent)
		return nil
	})
	return recent, err
}

func (r *trackingRepository) Save(ctx context.Context, recent tracking.Recent) error {
	return r.uow.with(ctx, true, func(st *state) error {
		st.recent = recent.Numbers()
		return nil
	})
}

type profileRepository struct {
	uow *UnitOfWork
}

func (r *profileRepository) Get(ctx context.Context) (profile.Profile, error) {
	p := profile.Guest()
	err := r.uow.with(ctx, false, func(st *state) error {
		if st.profile != nil {
			p = st.profile.toDomain()
		}
		return nil
	})
	return p, err
}

func (r *profileRepository) Save(ctx context.Context, p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.uow.with(ctx, true, func(st *state) error {
		st.profile = profileFromDomain(p)
		return nil
	})
}
