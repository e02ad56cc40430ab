package order_test

import (
	"testing"

	"pindrop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected order.Status
	}{
		{"Placed", order.StatusPlaced},
		{"Accepted", order.StatusAccepted},
		{"Preparing", order.StatusPreparing},
		{"Out for Delivery", order.StatusOutForDelivery},
		{"Delivered", order.StatusDelivered},
		{"Cancelled", order.StatusCancelled},
		{"Rejected", order.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := order.StatusFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
			assert.Equal(t, tt.input, status.String())
		})
	}
}

func TestStatusFromString_Invalid(t *testing.T) {
	_, err := order.StatusFromString("Shipped")
	require.Error(t, err)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"placed to accepted", order.StatusPlaced, order.StatusAccepted, true},
		{"placed to rejected", order.StatusPlaced, order.StatusRejected, true},
		{"placed to cancelled", order.StatusPlaced, order.StatusCancelled, true},
		{"placed to preparing skips accepted", order.StatusPlaced, order.StatusPreparing, false},
		{"accepted to preparing", order.StatusAccepted, order.StatusPreparing, true},
		{"accepted to cancelled", order.StatusAccepted, order.StatusCancelled, true},
		{"accepted to rejected", order.StatusAccepted, order.StatusRejected, false},
		{"preparing to out for delivery", order.StatusPreparing, order.StatusOutForDelivery, true},
		{"out for delivery to delivered", order.StatusOutForDelivery, order.StatusDelivered, true},
		{"out for delivery to cancelled", order.StatusOutForDelivery, order.StatusCancelled, true},
		{"delivered is terminal", order.StatusDelivered, order.StatusCancelled, false},
		{"cancelled is terminal", order.StatusCancelled, order.StatusPlaced, false},
		{"rejected is terminal", order.StatusRejected, order.StatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.StatusDelivered.IsTerminal())
	assert.True(t, order.StatusCancelled.IsTerminal())
	assert.True(t, order.StatusRejected.IsTerminal())

	assert.False(t, order.StatusPlaced.IsTerminal())
	assert.False(t, order.StatusAccepted.IsTerminal())
	assert.False(t, order.StatusPreparing.IsTerminal())
	assert.False(t, order.StatusOutForDelivery.IsTerminal())
}

func TestStatus_ValidateCanHavePartner(t *testing.T) {
	// Out for Delivery and Delivered require a partner reference
	assert.Error(t, order.StatusOutForDelivery.ValidateCanHavePartner(false))
	assert.Error(t, order.StatusDelivered.ValidateCanHavePartner(false))
	assert.NoError(t, order.StatusOutForDelivery.ValidateCanHavePartner(true))
	assert.NoError(t, order.StatusDelivered.ValidateCanHavePartner(true))

	// Early statuses must not carry one
	assert.Error(t, order.StatusPlaced.ValidateCanHavePartner(true))
	assert.NoError(t, order.StatusPlaced.ValidateCanHavePartner(false))
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, order.StatusPlaced.Validate())
	assert.Error(t, order.StatusUnknown.Validate())
	assert.Error(t, order.Status(99).Validate())
}
