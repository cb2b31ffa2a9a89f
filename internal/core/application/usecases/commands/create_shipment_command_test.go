package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	shipmentID := kernel.NewUUID()
	tenantID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, tenantID, customerID, "Shanghai", "Rotterdam", shipment.Details{})
	require.NoError(t, err)
	assert.Equal(t, shipmentID, cmd.ShipmentID())
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Shanghai", cmd.Origin())
	assert.Equal(t, "Rotterdam", cmd.Destination())
}

func TestNewCreateShipmentCommand_WithDetails(t *testing.T) {
	cargo, err := shipment.NewCargoUnits(shipment.CargoContainers, 4)
	require.NoError(t, err)

	details := shipment.Details{
		ShipmentType:    "Electronics",
		TransportMethod: shipment.TransportSeaAir,
		CargoUnits:      &cargo,
		Notes:           "fragile",
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Shenzhen", "Hamburg", details)
	require.NoError(t, err)
	assert.Equal(t, details, cmd.Details())
}

func TestNewCreateShipmentCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		"Shanghai", "Rotterdam", shipment.Details{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_EmptyOrigin(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"", "Rotterdam", shipment.Details{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
}

func TestNewCreateShipmentCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Shanghai", "", shipment.Details{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestNewCreateShipmentCommand_UnknownTransportMethod(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Shanghai", "Rotterdam",
		shipment.Details{TransportMethod: shipment.TransportMethod("TELEPORT")})
	require.Error(t, err)
}

func TestCreateShipmentCommand_NotConstructed(t *testing.T) {
	cmd := commands.CreateShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
