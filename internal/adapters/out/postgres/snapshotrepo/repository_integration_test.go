package snapshotrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/snapshotrepo"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SnapshotStoreIntegrationTestSuite verifies snapshot persistence against a
// PostgreSQL container.
type SnapshotStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *snapshotrepo.GormSnapshotStore
}

func (suite *SnapshotStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&snapshotrepo.SnapshotDTO{}))
	suite.store = snapshotrepo.NewGormSnapshotStore(db)
}

func (suite *SnapshotStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SnapshotStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE snapshots").Error)
}

func (suite *SnapshotStoreIntegrationTestSuite) TestLoad_Missing_ReturnsNil() {
	data, err := suite.store.Load(context.Background(), "orders")

	suite.Require().NoError(err)
	suite.Nil(data)
}

func (suite *SnapshotStoreIntegrationTestSuite) TestSave_ThenLoad() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Save(ctx, "riders", []byte(`[{"id":"R1"}]`)))
	data, err := suite.store.Load(ctx, "riders")

	suite.Require().NoError(err)
	suite.JSONEq(`[{"id":"R1"}]`, string(data))
}

func (suite *SnapshotStoreIntegrationTestSuite) TestSave_Twice_Overwrites() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Save(ctx, "batches", []byte(`[]`)))
	suite.Require().NoError(suite.store.Save(ctx, "batches", []byte(`[{"id":"B1"}]`)))

	data, err := suite.store.Load(ctx, "batches")
	suite.Require().NoError(err)
	suite.JSONEq(`[{"id":"B1"}]`, string(data))

	var count int64
	suite.Require().NoError(suite.db.Model(&snapshotrepo.SnapshotDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *SnapshotStoreIntegrationTestSuite) TestSave_EmptyName_IsRejected() {
	err := suite.store.Save(context.Background(), "", []byte(`[]`))

	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func TestSnapshotStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SnapshotStoreIntegrationTestSuite))
}
