package retailer_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/retailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRetailer(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid retailer", func(t *testing.T) {
		r, err := retailer.NewRetailer(validID, "Corner Mart", "orders@cornermart.example")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.ID().IsEqual(validID))
		assert.Equal(t, "Corner Mart", r.Name())
		assert.Equal(t, "orders@cornermart.example", r.Email())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		r, err := retailer.NewRetailer(invalidID, "Corner Mart", "orders@cornermart.example")

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			r, err := retailer.NewRetailer(validID, name, "orders@cornermart.example")

			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), "name")
		}
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		for _, email := range []string{"", "no-at-sign", "@nodomain", "nolocal@", "two@@ats"} {
			r, err := retailer.NewRetailer(validID, "Corner Mart", email)

			require.Error(t, err, "email %q should be rejected", email)
			assert.Nil(t, r)
		}
	})
}

func TestRetailer_Validate(t *testing.T) {
	t.Run("should reject zero-value retailer", func(t *testing.T) {
		var r retailer.Retailer
		require.ErrorIs(t, r.Validate(), retailer.ErrRetailerIsNotConstructed)
	})

	t.Run("should reject nil retailer", func(t *testing.T) {
		var r *retailer.Retailer
		require.ErrorIs(t, r.Validate(), retailer.ErrRetailerIsNotConstructed)
	})
}

func TestRetailer_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	r1, err := retailer.NewRetailer(id, "Corner Mart", "orders@cornermart.example")
	require.NoError(t, err)
	r2, err := retailer.NewRetailer(id, "Renamed Mart", "billing@cornermart.example")
	require.NoError(t, err)
	r3, err := retailer.NewRetailer(kernel.NewUUID(), "Corner Mart", "orders@cornermart.example")
	require.NoError(t, err)

	assert.True(t, r1.IsEqual(r2))
	assert.False(t, r1.IsEqual(r3))
	assert.False(t, r1.IsEqual(nil))
}
