package accountrepo_test

import (
	"context"
	"testing"

	"procurement/internal/adapters/out/postgres/accountrepo"
	"procurement/internal/core/domain/model/account"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for repository tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *accountrepo.GormAccountRepository
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&accountrepo.AccountDTO{})
	suite.Require().NoError(err)

	suite.repo = accountrepo.NewGormAccountRepository(db, &mockAggregateTracker{})
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE accounts").Error
	suite.Require().NoError(err)
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) newAccount(document *string) *account.Account {
	aggregate, err := account.NewAccount(kernel.NewUUID(), "Robin Park", document, "7 Birch Lane", "initial-pass")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	document := "29.537.778/0001-00"
	aggregate := suite.newAccount(&document)

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(aggregate))
	suite.Equal("Robin Park", restored.Name())
	suite.Require().NotNil(restored.Document())
	suite.Equal(document, *restored.Document())
	suite.Equal("7 Birch Lane", restored.DeliveryLocation())
	suite.False(restored.MustChangePassword())
	suite.True(restored.CheckPassword("initial-pass"))
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAddAndGet_NilDocument() {
	ctx := context.Background()
	aggregate := suite.newAccount(nil)

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(restored.Document())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_PersistsPasswordChangeFlag() {
	ctx := context.Background()
	aggregate := suite.newAccount(nil)

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	aggregate.RequirePasswordChange()
	err = suite.repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.MustChangePassword())
	suite.Require().Error(restored.EnsurePasswordChangeNotRequired())

	// Changing the password clears the flag and rotates the hash.
	err = aggregate.ChangePassword("fresh-pass")
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	restored, err = suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(restored.MustChangePassword())
	suite.True(restored.CheckPassword("fresh-pass"))
	suite.False(restored.CheckPassword("initial-pass"))
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_NonexistentAccount() {
	aggregate := suite.newAccount(nil)

	err := suite.repo.Update(context.Background(), aggregate)

	suite.Require().Error(err)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGetForUpdate_ReadsInsideTransaction() {
	ctx := context.Background()
	aggregate := suite.newAccount(nil)

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := accountrepo.NewGormAccountRepository(tx, &mockAggregateTracker{})
	restored, err := txRepo.GetForUpdate(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}
