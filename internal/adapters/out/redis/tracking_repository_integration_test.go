package redis_test

import (
	"context"
	"testing"
	"time"

	redis_adapter "swiftgo/internal/adapters/out/redis"
	"swiftgo/internal/core/domain/model/tracking"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testKey = "swiftgo:test:recent"

type TrackingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *goredis.Client
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupSuite() {
	if testing.Short() {
		suite.T().Skip("integration test")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	client, err := redis_adapter.Connect(ctx, endpoint)
	suite.Require().NoError(err)
	suite.client = client
}

func (suite *TrackingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.Del(context.Background(), testKey).Err())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestGet_EmptyList() {
	repo := redis_adapter.NewTrackingRepository(suite.client, testKey)

	recent, err := repo.Get(context.Background())

	suite.Require().NoError(err)
	suite.Empty(recent.Numbers())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestSave_ReplacesList() {
	ctx := context.Background()
	repo := redis_adapter.NewTrackingRepository(suite.client, testKey)

	suite.Require().NoError(repo.Save(ctx, tracking.NewRecent([]string{"SWG-3", "SWG-2", "SWG-1"})))
	suite.Require().NoError(repo.Save(ctx, tracking.NewRecent([]string{"SWG-4", "SWG-3"})))

	recent, err := repo.Get(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"SWG-4", "SWG-3"}, recent.Numbers())

	suite.Require().NoError(repo.Save(ctx, tracking.NewRecent(nil)))
	exists, err := suite.client.Exists(ctx, testKey).Result()
	suite.Require().NoError(err)
	suite.Zero(exists)
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestUnitOfWork_WritesOnCommitOnly() {
	ctx := context.Background()
	factory := redis_adapter.NewTrackingUnitOfWorkFactory(suite.client, testKey)

	uow := factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	recent, err := uow.TrackingRepository().Get(ctx)
	suite.Require().NoError(err)
	_, err = recent.Add("SWG-1234")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TrackingRepository().Save(ctx, recent))

	stored, err := factory.Create().TrackingRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Empty(stored.Numbers())

	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err = factory.Create().TrackingRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"SWG-1234"}, stored.Numbers())
}

func (suite *TrackingRepositoryIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := redis_adapter.NewTrackingUnitOfWorkFactory(suite.client, testKey).Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TrackingRepository().Save(ctx, tracking.NewRecent([]string{"SWG-1"})))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), redis_adapter.ErrNoActiveTransaction)
	n, err := suite.client.LLen(ctx, testKey).Result()
	suite.Require().NoError(err)
	suite.Zero(n)
}

func TestTrackingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TrackingRepositoryIntegrationTestSuite))
}
