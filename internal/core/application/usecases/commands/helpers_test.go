package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"swiftgo/internal/adapters/out/memory"
	"swiftgo/internal/core/application/usecases/commands"
	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/wallet"
	"swiftgo/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

// funcFactory lets a plain function serve as any of the narrow factories.
type funcFactory[T any] func() T

func (f funcFactory[T]) Create() T {
	return f()
}

// memoryEnv wires handlers to a real in-memory store.
type memoryEnv struct {
	store     *memory.Store
	factory   ports.UnitOfWorkFactory
	publisher *recordingPublisher
}

func newMemoryEnv() *memoryEnv {
	store := memory.NewStore(rates.Default())
	return &memoryEnv{
		store:     store,
		factory:   memory.NewUnitOfWorkFactory(store),
		publisher: &recordingPublisher{},
	}
}

func (e *memoryEnv) pricingUoW() commands.PricingUoWFactory {
	return funcFactory[commands.PricingUoW](func() commands.PricingUoW { return e.factory.Create() })
}

func (e *memoryEnv) orderWalletUoW() commands.OrderWalletUoWFactory {
	return funcFactory[commands.OrderWalletUoW](func() commands.OrderWalletUoW { return e.factory.Create() })
}

func (e *memoryEnv) orderUoW() commands.OrderUoWFactory {
	return funcFactory[commands.OrderUoW](func() commands.OrderUoW { return e.factory.Create() })
}

func (e *memoryEnv) walletUoW() commands.WalletUoWFactory {
	return funcFactory[commands.WalletUoW](func() commands.WalletUoW { return e.factory.Create() })
}

func (e *memoryEnv) rateUoW() commands.RateUoWFactory {
	return funcFactory[commands.RateUoW](func() commands.RateUoW { return e.factory.Create() })
}

func (e *memoryEnv) trackingUoW() commands.TrackingUoWFactory {
	return funcFactory[commands.TrackingUoW](func() commands.TrackingUoW { return e.factory.Create() })
}

func (e *memoryEnv) profileUoW() commands.ProfileUoWFactory {
	return funcFactory[commands.ProfileUoW](func() commands.ProfileUoW { return e.factory.Create() })
}

func (e *memoryEnv) createHandler(numbers ...order.Number) commands.CreateOrderCommandHandler {
	next := 0
	gen := func(int) order.Number {
		n := numbers[next%len(numbers)]
		next++
		return n
	}
	return commands.NewCreateOrderCommandHandler(e.pricingUoW(), e.publisher).
		WithNumberGenerator(gen).
		WithClock(func() time.Time { return fixedNow })
}

func (e *memoryEnv) place(t *testing.T, number order.Number, req order.ShipmentRequest) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(req)
	require.NoError(t, err)

	h := e.createHandler(number)
	o, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return o
}

func (e *memoryEnv) topUp(t *testing.T, amount int64) {
	t.Helper()
	cmd, err := commands.NewAddBalanceCommand(kernel.Money(amount), "")
	require.NoError(t, err)

	h := commands.NewAddBalanceCommandHandler(e.walletUoW(), nil)
	_, err = h.Handle(t.Context(), cmd)
	require.NoError(t, err)
}

func (e *memoryEnv) allOrders(t *testing.T) []*order.Order {
	t.Helper()
	all, err := e.factory.Create().OrderRepository().GetAll(t.Context())
	require.NoError(t, err)
	return all
}

func (e *memoryEnv) currentWallet(t *testing.T) *wallet.Wallet {
	t.Helper()
	w, err := e.factory.Create().WalletRepository().Get(t.Context())
	require.NoError(t, err)
	return w
}

func (e *memoryEnv) getOrder(t *testing.T, number order.Number) *order.Order {
	t.Helper()
	o, err := e.factory.Create().OrderRepository().Get(t.Context(), number)
	require.NoError(t, err)
	return o
}

// shipment is Jakarta to Bandung, 2 kg, Express: 10.000 base, 10.000 weight,
// 25.000 service and 15.000 inter-province, 60.000 in total.
func shipment(payment order.Payment) order.ShipmentRequest {
	return order.ShipmentRequest{
		Sender: order.Contact{
			Name: "Budi Santoso", Phone: "081234567890", Address: "Jl. Merdeka 1",
			Province: "DKI Jakarta", City: "Jakarta Pusat",
		},
		Receiver: order.Contact{
			Name: "Siti Aminah", Phone: "082198765432", Address: "Jl. Asia Afrika 8",
			Province: "Jawa Barat", City: "Bandung",
		},
		Item: order.Item{
			Name: "Sepatu", Category: "Fashion",
			Weight: "2", Length: "30", Width: "20", Height: "10",
		},
		Service: order.Express,
		Payment: payment,
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evts ...events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evts...)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.Name())
	}
	return names
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, number order.Number) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, number order.Number) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, number order.Number) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Get(ctx context.Context) (*wallet.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) Save(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

type MockRateRepository struct{ mock.Mock }

func (m *MockRateRepository) Get(ctx context.Context) (rates.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).(rates.Table), args.Error(1)
}

func (m *MockRateRepository) Save(ctx context.Context, table rates.Table) error {
	args := m.Called(ctx, table)
	return args.Error(0)
}

// MockUoW satisfies every narrow unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

func (m *MockUoW) RateRepository() ports.RateRepository {
	args := m.Called()
	return args.Get(0).(ports.RateRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}
