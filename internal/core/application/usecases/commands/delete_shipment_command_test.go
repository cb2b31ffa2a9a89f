package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteShipmentCommand_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewDeleteShipmentCommand(tenantID, shipmentID)
	require.NoError(t, err)
	assert.Equal(t, tenantID, cmd.TenantID())
	assert.Equal(t, shipmentID, cmd.ShipmentID())
}

func TestNewDeleteShipmentCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewDeleteShipmentCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewDeleteShipmentCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestDeleteShipmentCommand_NotConstructed(t *testing.T) {
	cmd := commands.DeleteShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteShipmentCommandIsNotConstructed)
}
