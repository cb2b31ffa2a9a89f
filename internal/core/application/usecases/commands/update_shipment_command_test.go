package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentCommand_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	status := shipment.InTransit
	location := "Suez Canal"

	cmd, err := commands.NewUpdateShipmentCommand(tenantID, shipmentID, shipment.Update{
		Status:          &status,
		CurrentLocation: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	require.NotNil(t, cmd.Update().Status)
	assert.Equal(t, shipment.InTransit, *cmd.Update().Status)
}

func TestNewUpdateShipmentCommand_EmptyUpdateIsValid(t *testing.T) {
	cmd, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipment.Update{})
	require.NoError(t, err)
	assert.Nil(t, cmd.Update().Status)
}

func TestNewUpdateShipmentCommand_InvalidTenantID(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(
		kernel.UUID{}, kernel.NewUUID(), shipment.Update{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateShipmentCommand_UnknownStatus(t *testing.T) {
	unknown := shipment.Status(99)
	_, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), shipment.Update{Status: &unknown})
	require.Error(t, err)
}

func TestUpdateShipmentCommand_NotConstructed(t *testing.T) {
	cmd := commands.UpdateShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateShipmentCommandIsNotConstructed)
}
