package partner_test

import (
	"testing"

	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustAreaCode(t *testing.T, code string) kernel.AreaCode {
	t.Helper()
	area, err := kernel.NewAreaCode(code)
	require.NoError(t, err)
	return area
}

func TestNewDeliveryPartner_StartsAvailable(t *testing.T) {
	p, err := partner.NewDeliveryPartner(mustID(t, 1), mustAreaCode(t, "560001"))
	require.NoError(t, err)

	assert.True(t, p.IsAvailable())
	assert.Equal(t, "560001", p.AreaCode().String())
}

func TestDeliveryPartner_Claim(t *testing.T) {
	p, err := partner.NewDeliveryPartner(mustID(t, 1), mustAreaCode(t, "560001"))
	require.NoError(t, err)

	require.NoError(t, p.Claim())
	assert.False(t, p.IsAvailable())

	err = p.Claim()
	require.Error(t, err)
	assert.ErrorIs(t, err, partner.ErrPartnerAlreadyClaimed)
}

func TestDeliveryPartner_Release_Idempotent(t *testing.T) {
	p, err := partner.NewDeliveryPartner(mustID(t, 1), mustAreaCode(t, "560001"))
	require.NoError(t, err)
	require.NoError(t, p.Claim())

	p.Release()
	assert.True(t, p.IsAvailable())

	p.Release()
	assert.True(t, p.IsAvailable())
}

func TestDeliveryPartner_ToggleAvailability(t *testing.T) {
	p, err := partner.NewDeliveryPartner(mustID(t, 1), mustAreaCode(t, "560001"))
	require.NoError(t, err)

	assert.False(t, p.ToggleAvailability())
	assert.False(t, p.IsAvailable())

	assert.True(t, p.ToggleAvailability())
	assert.True(t, p.IsAvailable())
}

func TestRestoreDeliveryPartner(t *testing.T) {
	p, err := partner.RestoreDeliveryPartner(mustID(t, 7), mustID(t, 1), mustAreaCode(t, "110001"), false)
	require.NoError(t, err)

	assert.Equal(t, int64(7), p.ID().Value())
	assert.Equal(t, int64(1), p.UserID().Value())
	assert.False(t, p.IsAvailable())
}

func TestDeliveryPartner_AssignID_Once(t *testing.T) {
	p, err := partner.NewDeliveryPartner(mustID(t, 1), mustAreaCode(t, "560001"))
	require.NoError(t, err)

	require.NoError(t, p.AssignID(mustID(t, 7)))
	require.Error(t, p.AssignID(mustID(t, 8)))
}
