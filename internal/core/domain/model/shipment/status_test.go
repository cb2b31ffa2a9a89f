package shipment_test

import (
	"testing"

	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected shipment.Status
	}{
		{"PENDING", shipment.Pending},
		{"PICKED_UP", shipment.PickedUp},
		{"IN_TRANSIT", shipment.InTransit},
		{"OUT_FOR_DELIVERY", shipment.OutForDelivery},
		{"DELIVERED", shipment.Delivered},
		{"CANCELLED", shipment.Cancelled},
		{"RETURNED", shipment.Returned},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := shipment.StatusFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.input, status.String())
		})
	}

	t.Run("unrecognized values fail", func(t *testing.T) {
		for _, input := range []string{"", "pending", "LOST", "UNKNOWN"} {
			_, err := shipment.StatusFromString(input)
			require.Error(t, err, input)
		}
	})
}

func TestStatus_Step(t *testing.T) {
	t.Run("main sequence is ordered", func(t *testing.T) {
		sequence := []shipment.Status{
			shipment.Pending,
			shipment.PickedUp,
			shipment.InTransit,
			shipment.OutForDelivery,
			shipment.Delivered,
		}

		for i, status := range sequence {
			step, ok := status.Step()
			require.True(t, ok, status.String())
			assert.Equal(t, i, step)
		}
	})

	t.Run("side branches have no step", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Cancelled, shipment.Returned} {
			step, ok := status.Step()
			assert.False(t, ok)
			assert.Equal(t, shipment.NoStep, step)
		}
	})

	t.Run("unknown has no step", func(t *testing.T) {
		_, ok := shipment.Unknown.Step()
		assert.False(t, ok)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, shipment.Delivered.IsTerminal())
	assert.True(t, shipment.Cancelled.IsTerminal())
	assert.True(t, shipment.Returned.IsTerminal())

	assert.False(t, shipment.Pending.IsTerminal())
	assert.False(t, shipment.PickedUp.IsTerminal())
	assert.False(t, shipment.InTransit.IsTerminal())
	assert.False(t, shipment.OutForDelivery.IsTerminal())
}

func TestStatus_Display(t *testing.T) {
	info, ok := shipment.OutForDelivery.Display()
	require.True(t, ok)
	assert.Equal(t, "Out for Delivery", info.Label)
	assert.Equal(t, 3, info.Step)

	info, ok = shipment.Returned.Display()
	require.True(t, ok)
	assert.Equal(t, "Returned", info.Label)
	assert.Equal(t, shipment.NoStep, info.Step)

	_, ok = shipment.Unknown.Display()
	assert.False(t, ok)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, shipment.Pending.Validate())
	require.NoError(t, shipment.Returned.Validate())
	require.Error(t, shipment.Unknown.Validate())
	require.Error(t, shipment.Status(99).Validate())
}

func TestAllowAnyTransition(t *testing.T) {
	// The permissive default: even moving away from a terminal status is
	// allowed.
	require.NoError(t, shipment.AllowAnyTransition(shipment.Delivered, shipment.InTransit))
	require.NoError(t, shipment.AllowAnyTransition(shipment.Cancelled, shipment.Pending))
}
