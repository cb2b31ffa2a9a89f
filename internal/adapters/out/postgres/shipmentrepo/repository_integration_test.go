package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/adapters/out/postgres/shipmentrepo"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify persistence
// behavior, including the jsonb timeline and optimistic locking.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey, which
	// the repository relies on for tracking number collisions.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return().Maybe()
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) newShipment(tenantID kernel.UUID) *shipment.Shipment {
	trackingNumber, err := shipment.NewTrackingNumber()
	suite.Require().NoError(err)

	cargo, err := shipment.NewCargoUnits(shipment.CargoContainers, 2)
	suite.Require().NoError(err)

	estimated := time.Now().UTC().Add(14 * 24 * time.Hour).Truncate(time.Microsecond)
	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(), tenantID, kernel.NewUUID(),
		trackingNumber, "Shanghai", "Rotterdam",
		shipment.Details{
			EstimatedDelivery: &estimated,
			ShipmentType:      "Electronics",
			TransportMethod:   shipment.TransportSeaRoad,
			CargoUnits:        &cargo,
			Notes:             "handle with care",
		},
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)

	suite.Require().NoError(suite.repository.Add(ctx, created))

	loaded, err := suite.repository.Get(ctx, tenantID, created.ID())
	suite.Require().NoError(err)

	suite.Equal(created.ID(), loaded.ID())
	suite.Equal(created.TrackingNumber().String(), loaded.TrackingNumber().String())
	suite.Equal(shipment.Pending, loaded.Status())
	suite.Equal("Shanghai", loaded.Origin())
	suite.Equal("Rotterdam", loaded.Destination())
	suite.Equal("Electronics", loaded.ShipmentType())
	suite.Equal(shipment.TransportSeaRoad, loaded.TransportMethod())
	suite.Require().NotNil(loaded.CargoUnits())
	suite.Equal(shipment.CargoContainers, loaded.CargoUnits().Type())
	suite.Equal(2, loaded.CargoUnits().Quantity())
	suite.Equal("handle with care", loaded.Notes())
	suite.Equal(1, loaded.Version())

	timeline := loaded.Timeline()
	suite.Require().Len(timeline, 1)
	suite.Equal(shipment.Pending, timeline[0].Status)
	suite.Equal("Shipment created", timeline[0].Description)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DuplicateTrackingNumber_ReturnsValueIsInvalid() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	first := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate, err := shipment.RestoreShipment(shipment.RestoreShipmentParams{
		ID:             kernel.NewUUID(),
		TenantID:       tenantID,
		CustomerID:     kernel.NewUUID(),
		TrackingNumber: first.TrackingNumber(),
		Status:         shipment.Pending,
		Origin:         "Shenzhen",
		Destination:    "Hamburg",
		Timeline:       first.Timeline(),
		CreatedAt:      time.Now().UTC(),
		Version:        1,
	})
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_WrongTenant_ReturnsNotFound() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	_, err := suite.repository.Get(ctx, kernel.NewUUID(), created.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndTimelineAtomically() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	status := shipment.InTransit
	location := "Suez Canal"
	changed, err := created.Apply(shipment.Update{
		Status:          &status,
		CurrentLocation: &location,
		TimelineNotes:   "passed customs",
	}, nil, time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.True(changed)

	suite.Require().NoError(suite.repository.Update(ctx, created))
	suite.Equal(2, created.Version())

	loaded, err := suite.repository.Get(ctx, tenantID, created.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, loaded.Status())
	suite.Equal("Suez Canal", loaded.CurrentLocation())
	suite.Equal(2, loaded.Version())

	timeline := loaded.Timeline()
	suite.Require().Len(timeline, 2)
	suite.Equal(shipment.InTransit, timeline[1].Status)
	suite.Equal("Status updated to IN_TRANSIT", timeline[1].Description)
	suite.Equal("passed customs", timeline[1].Notes)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_DeliveredStampPersists() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	status := shipment.Delivered
	_, err := created.Apply(shipment.Update{Status: &status}, nil,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, created))

	loaded, err := suite.repository.Get(ctx, tenantID, created.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, loaded.Status())
	suite.Require().NotNil(loaded.ActualDelivery())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionIsInvalid() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	// First writer wins.
	firstCopy, err := suite.repository.Get(ctx, tenantID, created.ID())
	suite.Require().NoError(err)
	status := shipment.PickedUp
	_, err = firstCopy.Apply(shipment.Update{Status: &status}, nil, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	// Second writer holds the stale version.
	status = shipment.Cancelled
	_, err = created.Apply(shipment.Update{Status: &status}, nil, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, created)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_MissingShipment_ReturnsNotFound() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	ghost := suite.newShipment(tenantID)

	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	suite.Require().NoError(suite.repository.Delete(ctx, tenantID, created.ID()))

	_, err := suite.repository.Get(ctx, tenantID, created.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_WrongTenant_ReturnsNotFound() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	created := suite.newShipment(tenantID)
	suite.Require().NoError(suite.repository.Add(ctx, created))

	err := suite.repository.Delete(ctx, kernel.NewUUID(), created.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	// The row is untouched.
	_, err = suite.repository.Get(ctx, tenantID, created.ID())
	suite.Require().NoError(err)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
