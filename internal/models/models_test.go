package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotals(t *testing.T) {
	t.Parallel()

	c := Cart{
		{RestaurantID: "r1", Items: []CartItem{
			{ID: "i1", Price: 200, Quantity: 2},
			{ID: "i2", Price: 50, Quantity: 1},
		}},
		{RestaurantID: "r2", Items: []CartItem{
			{ID: "i3", Price: 120, Quantity: 3},
		}},
	}

	assert.Equal(t, 450.0, c[0].Subtotal())
	assert.Equal(t, 810.0, c.Total())
	assert.False(t, c.Empty())
	assert.True(t, Cart{}.Empty())
}

func TestOrderStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusAccepted.Terminal())
	assert.False(t, StatusOutForDelivery.Terminal())
}

func TestOrderStatus_WireNames(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(StatusOutForDelivery)
	require.NoError(t, err)
	assert.Equal(t, `"Out for Delivery"`, string(raw))
}

func TestRestaurant_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "legacy", Restaurant{ID: "mongo", RestaurantID: "legacy"}.Key())
	assert.Equal(t, "mongo", Restaurant{ID: "mongo"}.Key())
}
