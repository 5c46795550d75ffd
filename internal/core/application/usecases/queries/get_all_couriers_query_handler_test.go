package queries_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/courierrepo"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/courier"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllCouriersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllCouriersQueryHandler
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
	suite.handler = queries.NewGetAllCouriersQueryHandler(db)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllCouriersQueryHandlerTestSuite) seedCourier(name string) {
	aggregate, err := courier.NewCourier(kernel.NewUUID(), name, "+1-202-555-0100")
	suite.Require().NoError(err)

	repo := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_Empty() {
	couriers, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.Empty(couriers)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_SortedByName() {
	suite.seedCourier("Bob")
	suite.seedCourier("Alice")

	couriers, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(couriers, 2)
	suite.Equal("Alice", couriers[0].Name)
	suite.Equal("Bob", couriers[1].Name)
	suite.Equal("AVAILABLE", couriers[0].Status)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_NotConstructedQuery() {
	var query queries.GetAllCouriersQuery
	_, err := suite.handler.Handle(context.Background(), query)
	suite.ErrorIs(err, queries.ErrGetAllCouriersQueryIsNotConstructed)
}

func TestGetAllCouriersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllCouriersQueryHandlerTestSuite))
}
