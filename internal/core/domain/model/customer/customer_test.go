package customer_test

import (
	"testing"

	"tracking/internal/core/domain/model/customer"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := customer.NewCustomer(
			kernel.NewUUID(), kernel.NewUUID(),
			"Acme Trading", "ops@acme.example", "+20100000000", "12 Nile St, Cairo")

		require.NoError(t, err)
		assert.Equal(t, "Acme Trading", c.Name())
		assert.Equal(t, "ops@acme.example", c.Email())
		require.NoError(t, c.Validate())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewUUID(), "", "", "", "")
		require.Error(t, err)
	})

	t.Run("identity is required", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.UUID{}, kernel.NewUUID(), "Acme", "", "", "")
		require.Error(t, err)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var zero customer.Customer
	require.ErrorIs(t, zero.Validate(), customer.ErrCustomerIsNotConstructed)
}
