package commands_test

import (
	"context"
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeleteShipmentRepository struct{ mock.Mock }

func (m *MockDeleteShipmentRepository) Add(_ context.Context, _ *shipment.Shipment) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteShipmentRepository) Update(_ context.Context, _ *shipment.Shipment) error {
	return errors.New("not implemented in mock")
}
func (m *MockDeleteShipmentRepository) Get(
	_ context.Context, _, _ kernel.UUID,
) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDeleteShipmentRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type MockDeleteShipmentUoW struct{ mock.Mock }

func (m *MockDeleteShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeleteShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockDeleteShipmentUoWFactory struct{ mock.Mock }

func (m *MockDeleteShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func TestDeleteShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteShipmentCommand(tenantID, shipmentID)

	repo := new(MockDeleteShipmentRepository)
	uow := new(MockDeleteShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, tenantID, shipmentID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	tenantID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, _ := commands.NewDeleteShipmentCommand(tenantID, shipmentID)

	repo := new(MockDeleteShipmentRepository)
	uow := new(MockDeleteShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, tenantID, shipmentID).
			Return(errs.NewObjectNotFoundError("shipmentId", shipmentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.DeleteShipmentCommand{} // not constructed properly
	factory := new(MockDeleteShipmentUoWFactory)
	h := commands.NewDeleteShipmentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
