package shipment_test

import (
	"regexp"
	"strings"
	"testing"

	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("matches the expected format", func(t *testing.T) {
		tn, err := shipment.NewTrackingNumber()

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^SHP[A-Z0-9]{10}$`), tn.String())
		require.NoError(t, tn.Validate())
	})

	t.Run("generated numbers are pairwise distinct", func(t *testing.T) {
		const n = 1000
		seen := make(map[string]struct{}, n)

		for range n {
			tn, err := shipment.NewTrackingNumber()
			require.NoError(t, err)

			_, duplicate := seen[tn.String()]
			require.False(t, duplicate, "duplicate tracking number %s", tn)
			seen[tn.String()] = struct{}{}
		}
	})
}

func TestTrackingNumberFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tn, err := shipment.TrackingNumberFromString("SHP7K2QX9A4BD")

		require.NoError(t, err)
		assert.Equal(t, "SHP7K2QX9A4BD", tn.String())
	})

	t.Run("invalid formats are rejected", func(t *testing.T) {
		invalid := []string{
			"",
			"SHP",
			"SHPtoolowercs",
			"SHP7K2QX9A4B",               // suffix too short
			"SHP7K2QX9A4BDX",             // suffix too long
			"XYZ7K2QX9A4BD",              // wrong prefix
			"SHP7K2QX9A4B!",              // invalid character
			strings.Repeat("SHP12345", 4), // garbage
		}
		for _, s := range invalid {
			_, err := shipment.TrackingNumberFromString(s)
			require.Error(t, err, s)
		}
	})
}

func TestTrackingNumber_Validate(t *testing.T) {
	var zero shipment.TrackingNumber
	require.Error(t, zero.Validate())
	assert.Equal(t, shipment.ErrTrackingNumberIsNotConstructed, zero.Validate())
}

func TestTrackingNumber_IsEqual(t *testing.T) {
	a, err := shipment.TrackingNumberFromString("SHP7K2QX9A4BD")
	require.NoError(t, err)
	b, err := shipment.TrackingNumberFromString("SHPAAAAAAAAAA")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}
