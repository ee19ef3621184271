package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "swiftgo/internal/adapters/out/postgres"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/tracking"
	"swiftgo/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var createdAt = time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite runs the unit of work and every repository
// against a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("integration test")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn, nil)
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, rates.Default())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, wallets, wallet_entries, rate_tables, recent_tracking, profiles",
	).Error
	suite.Require().NoError(err)
	suite.Require().NoError(postgres_adapter.Migrate(context.Background(), suite.db))
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx), "Rollback after Commit is a no-op")

	suite.Require().Error(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsOrderAndPayment() {
	ctx := context.Background()
	suite.topUp(100000)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	o := suite.createOrder("SWG-1234")
	w, err := uow.WalletRepository().Get(ctx)
	suite.Require().NoError(err)
	_, err = w.Pay(o.Amount(), "Pembayaran SWG-1234", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WalletRepository().Save(ctx, w))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	exists, err := reader.OrderRepository().Exists(ctx, "SWG-1234")
	suite.Require().NoError(err)
	suite.False(exists)
	w, err = reader.WalletRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(100000), w.Balance())
	suite.Len(w.History(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsOrderAndPayment() {
	ctx := context.Background()
	suite.topUp(100000)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o := suite.createOrder("SWG-1234")
	w, err := uow.WalletRepository().Get(ctx)
	suite.Require().NoError(err)
	_, err = w.Pay(o.Amount(), "Pembayaran SWG-1234", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WalletRepository().Save(ctx, w))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	w, err = suite.factory.Create().WalletRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(40000), w.Balance())
	suite.Require().Len(w.History(), 2)
	suite.Equal("Pembayaran SWG-1234", w.History()[0].Description)
	suite.True(createdAt.Equal(w.History()[0].Timestamp))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWalletHistoryIsBounded() {
	for range 12 {
		suite.topUp(1000)
	}

	w, err := suite.factory.Create().WalletRepository().Get(context.Background())

	suite.Require().NoError(err)
	suite.Equal(kernel.Money(12000), w.Balance())
	suite.Len(w.History(), 10)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestStateRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	table, err := uow.RateRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(rates.Default(), table)

	custom := rates.Table{BaseRate: 12000, RatePerKg: 6000, ExpressFee: 20000, SameDayFee: 40000, LoyaltyDiscountPercent: 5}
	suite.Require().NoError(uow.RateRepository().Save(ctx, custom))
	table, err = uow.RateRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(custom, table)

	p, err := uow.ProfileRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(profile.Guest(), p)
	admin := profile.Profile{Name: "Rina", Username: "rina", Phone: "0813", Role: profile.Admin}
	suite.Require().NoError(uow.ProfileRepository().Save(ctx, admin))
	p, err = uow.ProfileRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal(admin, p)

	suite.Require().NoError(uow.TrackingRepository().Save(ctx, tracking.NewRecent([]string{"SWG-3", "SWG-2", "SWG-1"})))
	suite.Require().NoError(uow.TrackingRepository().Save(ctx, tracking.NewRecent([]string{"SWG-4", "SWG-3"})))
	recent, err := uow.TrackingRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"SWG-4", "SWG-3"}, recent.Numbers())
}

func (suite *UnitOfWorkIntegrationTestSuite) topUp(amount kernel.Money) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	w, err := uow.WalletRepository().Get(ctx)
	suite.Require().NoError(err)
	_, err = w.TopUp(amount, "Top up saldo", createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WalletRepository().Save(ctx, w))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createOrder(number order.Number) *order.Order {
	req := order.ShipmentRequest{
		Sender:   order.Contact{Name: "Budi", Phone: "0812", Address: "Jl. Merdeka", Province: "DKI Jakarta", City: "Jakarta"},
		Receiver: order.Contact{Name: "Siti", Phone: "0822", Address: "Jl. Braga", Province: "Jawa Barat", City: "Bandung"},
		Item:     order.Item{Name: "Sepatu", Category: "Fashion", Weight: "2", Length: "30", Width: "20", Height: "10"},
		Service:  order.Express,
		Payment:  order.NonCOD,
	}
	cost := order.CostBreakdown{Base: 10000, WeightFee: 10000, ServiceFee: 25000, LocationFee: 15000, Total: 60000}
	o, err := order.NewOrder(number, req, cost, createdAt)
	suite.Require().NoError(err)
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
