package commands_test

import (
	"context"
	"testing"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/ports"
	"pindrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPartnerUoW struct{ mock.Mock }

func (m *MockPartnerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPartnerUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

func TestTogglePartnerAvailabilityCommandHandler_Handle_GoesOffShift(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTogglePartnerAvailabilityCommand(mustID(t, 300))
	require.NoError(t, err)

	p := storedPartner(t, 77, 300, true)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByUser", ctx, mustID(t, 300)).Return(p, nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.DeliveryPartner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTogglePartnerAvailabilityCommandHandler(factory)
	available, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, available)
	assert.False(t, p.IsAvailable())

	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTogglePartnerAvailabilityCommandHandler_Handle_ComesBackOnShift(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTogglePartnerAvailabilityCommand(mustID(t, 300))
	require.NoError(t, err)

	p := storedPartner(t, 77, 300, false)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByUser", ctx, mustID(t, 300)).Return(p, nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.DeliveryPartner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTogglePartnerAvailabilityCommandHandler(factory)
	available, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, available)
}

func TestTogglePartnerAvailabilityCommandHandler_Handle_NoProfile(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTogglePartnerAvailabilityCommand(mustID(t, 300))
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockPartnerUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByUser", ctx, mustID(t, 300)).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTogglePartnerAvailabilityCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	partnerRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestTogglePartnerAvailabilityCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TogglePartnerAvailabilityCommand{} // not constructed properly

	factory := new(MockPartnerUoWFactory)
	handler := commands.NewTogglePartnerAvailabilityCommandHandler(factory)

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTogglePartnerAvailabilityCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
