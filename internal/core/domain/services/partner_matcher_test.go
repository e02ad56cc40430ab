package services_test

import (
	"testing"
	"time"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/model/partner"
	"pindrop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preparingOrder(t *testing.T) *order.Order {
	t.Helper()

	lines := []*order.Line{mustLine(t, 100, "Paneer Tikka", 2, 250)}
	charges := order.Charges{
		Subtotal: mustMoney(t, 500),
		Discount: kernel.ZeroMoney(),
		Fee:      mustMoney(t, 30),
		Total:    mustMoney(t, 530),
	}

	o, err := order.RestoreOrder(
		mustID(t, 5), mustID(t, 1), mustID(t, 10), lines, charges,
		nil, order.PaymentModeOnline, order.StatusPreparing, nil, 30, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func restoredPartner(t *testing.T, id int64, available bool) *partner.DeliveryPartner {
	t.Helper()

	area, err := kernel.NewAreaCode("560001")
	require.NoError(t, err)
	p, err := partner.RestoreDeliveryPartner(mustID(t, id), mustID(t, id+1000), area, available)
	require.NoError(t, err)
	return p
}

func TestPartnerMatcher_Match_FirstAvailableWins(t *testing.T) {
	matcher := services.NewPartnerMatcher()
	o := preparingOrder(t)

	busy := restoredPartner(t, 70, false)
	first := restoredPartner(t, 71, true)
	second := restoredPartner(t, 72, true)

	claimed, err := matcher.Match(o, []*partner.DeliveryPartner{busy, first, second})
	require.NoError(t, err)

	assert.True(t, claimed.IsEqual(first))
	assert.False(t, first.IsAvailable())
	assert.True(t, second.IsAvailable())

	require.NotNil(t, o.Partner())
	assert.True(t, o.Partner().IsEqual(first.ID()))
}

func TestPartnerMatcher_Match_NoneAvailable(t *testing.T) {
	matcher := services.NewPartnerMatcher()
	o := preparingOrder(t)

	candidates := []*partner.DeliveryPartner{
		restoredPartner(t, 70, false),
		restoredPartner(t, 71, false),
	}

	_, err := matcher.Match(o, candidates)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNoPartnerAvailable)
	assert.Nil(t, o.Partner())
}

func TestPartnerMatcher_Match_EmptyCandidates(t *testing.T) {
	matcher := services.NewPartnerMatcher()

	_, err := matcher.Match(preparingOrder(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNoPartnerAvailable)
}

func TestPartnerMatcher_Match_OrderNotPreparing(t *testing.T) {
	matcher := services.NewPartnerMatcher()

	lines := []*order.Line{mustLine(t, 100, "Paneer Tikka", 2, 250)}
	charges := order.Charges{
		Subtotal: mustMoney(t, 500),
		Discount: kernel.ZeroMoney(),
		Fee:      mustMoney(t, 30),
		Total:    mustMoney(t, 530),
	}
	o, err := order.NewOrder(
		mustID(t, 1), mustID(t, 10), lines, charges,
		nil, order.PaymentModeOnline, 30, time.Now().UTC())
	require.NoError(t, err)

	available := restoredPartner(t, 71, true)
	_, err = matcher.Match(o, []*partner.DeliveryPartner{available})
	require.Error(t, err)

	// Claiming never happened because partner assignment failed first
	assert.True(t, available.IsAvailable())
}
