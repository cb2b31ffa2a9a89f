package tenant_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenant(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()
		created, err := tenant.NewTenant(id, "Global Freight Ltd", "tok-123")

		require.NoError(t, err)
		assert.Equal(t, id, created.ID())
		assert.Equal(t, "Global Freight Ltd", created.CompanyName())
		assert.Equal(t, "tok-123", created.APIToken())
		require.NoError(t, created.Validate())
	})

	t.Run("company name is required", func(t *testing.T) {
		_, err := tenant.NewTenant(kernel.NewUUID(), "", "tok-123")
		require.Error(t, err)
	})

	t.Run("api token is required", func(t *testing.T) {
		_, err := tenant.NewTenant(kernel.NewUUID(), "Global Freight Ltd", "")
		require.Error(t, err)
	})

	t.Run("identity is required", func(t *testing.T) {
		_, err := tenant.NewTenant(kernel.UUID{}, "Global Freight Ltd", "tok-123")
		require.Error(t, err)
	})
}

func TestTenant_Validate(t *testing.T) {
	var zero tenant.Tenant
	require.ErrorIs(t, zero.Validate(), tenant.ErrTenantIsNotConstructed)
}
