package queries_test

import (
	"testing"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentQuery_ValidInput(t *testing.T) {
	tenantID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	query, err := queries.NewGetShipmentQuery(tenantID, shipmentID)
	require.NoError(t, err)
	assert.Equal(t, tenantID, query.TenantID())
	assert.Equal(t, shipmentID, query.ShipmentID())
}

func TestNewGetShipmentQuery_InvalidIDs(t *testing.T) {
	_, err := queries.NewGetShipmentQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = queries.NewGetShipmentQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestGetShipmentQuery_NotConstructed(t *testing.T) {
	query := queries.GetShipmentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentQueryIsNotConstructed)
}
