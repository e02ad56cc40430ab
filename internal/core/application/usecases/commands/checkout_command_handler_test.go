package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"pindrop/internal/core/application/usecases/commands"
	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/catalog"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/offer"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/services"
	"pindrop/internal/core/ports"
	"pindrop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByCustomer(ctx context.Context, customerID kernel.ID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetDish(ctx context.Context, id kernel.ID) (*catalog.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Dish), args.Error(1)
}

func (m *MockCatalogRepository) GetDishes(ctx context.Context, ids []kernel.ID) ([]*catalog.Dish, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Dish), args.Error(1)
}

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id kernel.ID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Restaurant), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPlacedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.ID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(ctx context.Context, userID kernel.ID, message string) error {
	args := m.Called(ctx, userID, message)
	return args.Error(0)
}

func (m *MockNotificationSink) MarkRead(ctx context.Context, userID kernel.ID, notificationID kernel.ID) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCheckoutUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockCheckoutUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEstimator(t *testing.T) services.DeliveryEstimator {
	t.Helper()
	estimator, err := services.NewDeliveryEstimatorWithJitter(func() int { return 0 })
	require.NoError(t, err)
	return estimator
}

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func mustAreaCode(t *testing.T, code string) kernel.AreaCode {
	t.Helper()
	area, err := kernel.NewAreaCode(code)
	require.NoError(t, err)
	return area
}

func testCart(t *testing.T) *cart.Cart {
	t.Helper()
	line, err := cart.RestoreLine(mustID(t, 55), mustID(t, 100), mustID(t, 10), 2)
	require.NoError(t, err)
	c, err := cart.RestoreCart(mustID(t, 1), []*cart.Line{line})
	require.NoError(t, err)
	return c
}

func testRestaurant(t *testing.T, active bool) *catalog.Restaurant {
	t.Helper()
	ownerID := mustID(t, 900)
	r, err := catalog.RestoreRestaurant(
		mustID(t, 10), "Spice Route", mustAreaCode(t, "560001"), mustMoney(t, 30), active, &ownerID)
	require.NoError(t, err)
	return r
}

func testDishes(t *testing.T, available bool) []*catalog.Dish {
	t.Helper()
	dish, err := catalog.RestoreDish(mustID(t, 100), mustID(t, 10), "Paneer Tikka", mustMoney(t, 250), available)
	require.NoError(t, err)
	return []*catalog.Dish{dish}
}

func newCheckoutCommand(t *testing.T, offerID *kernel.ID) commands.CheckoutCommand {
	t.Helper()
	cmd, err := commands.NewCheckoutCommand(
		mustID(t, 1), mustAreaCode(t, "560001"), order.PaymentModeCashOnDelivery, offerID)
	require.NoError(t, err)
	return cmd
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, nil)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(testCart(t), nil).Once(),
		catalogRepo.On("GetRestaurant", ctx, mustID(t, 10)).Return(testRestaurant(t, true), nil).Once(),
		catalogRepo.On("GetDishes", ctx, mock.Anything).Return(testDishes(t, true), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				newOrder := args.Get(1).(*order.Order)
				require.NoError(t, newOrder.AssignID(mustID(t, 500)))
			}).
			Return(nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	notifier.On("Notify", ctx, mustID(t, 900), mock.AnythingOfType("string")).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(500), result.OrderID.Value())
	// 2 x 250 = 500 subtotal, no discount, 30 fee
	assert.Equal(t, "500", result.Charges.Subtotal.String())
	assert.True(t, result.Charges.Discount.IsZero())
	assert.Equal(t, "530", result.Charges.Total.String())
	// 25 base + 2 per item x 2 items, zero jitter
	assert.Equal(t, 29, result.ETAMinutes)

	cartRepo.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_AppliesOffer(t *testing.T) {
	ctx := t.Context()
	offerID := mustID(t, 40)
	cmd := newCheckoutCommand(t, &offerID)

	appliedOffer, err := offer.RestoreOffer(
		offerID, "10% off", 10, mustMoney(t, 100), offer.ScopePlatform, nil, true)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	offerRepo := new(MockOfferRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(testCart(t), nil).Once(),
		catalogRepo.On("GetRestaurant", ctx, mustID(t, 10)).Return(testRestaurant(t, true), nil).Once(),
		catalogRepo.On("GetDishes", ctx, mock.Anything).Return(testDishes(t, true), nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("Get", ctx, offerID).Return(appliedOffer, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				newOrder := args.Get(1).(*order.Order)
				require.NoError(t, newOrder.AssignID(mustID(t, 501)))
			}).
			Return(nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotificationSink)
	notifier.On("Notify", ctx, mustID(t, 900), mock.AnythingOfType("string")).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// 500 subtotal - 10% discount + 30 fee = 480
	assert.Equal(t, "50", result.Charges.Discount.String())
	assert.Equal(t, "480", result.Charges.Total.String())

	offerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly

	factory := new(MockCheckoutUoWFactory)
	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCheckoutCommandHandler_Handle_MissingCartIsEmpty(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, nil)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCheckoutUoW)

	// A customer with no cart rows, as after a clear or an earlier checkout
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).
			Return(nil, errs.NewObjectNotFoundError("cart", "1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	notifier.AssertNotCalled(t, "Notify")
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, nil)

	emptyCart, err := cart.RestoreCart(mustID(t, 1), nil)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestCheckoutCommandHandler_Handle_RestaurantNotActive(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, nil)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(testCart(t), nil).Once(),
		catalogRepo.On("GetRestaurant", ctx, mustID(t, 10)).Return(testRestaurant(t, false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRestaurantNotActive)
}

func TestCheckoutCommandHandler_Handle_RestaurantOutOfArea(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCheckoutCommand(
		mustID(t, 1), mustAreaCode(t, "110001"), order.PaymentModeOnline, nil)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(testCart(t), nil).Once(),
		catalogRepo.On("GetRestaurant", ctx, mustID(t, 10)).Return(testRestaurant(t, true), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRestaurantOutOfArea)
}

func TestCheckoutCommandHandler_Handle_DishNoLongerAvailable(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, nil)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(testCart(t), nil).Once(),
		catalogRepo.On("GetRestaurant", ctx, mustID(t, 10)).Return(testRestaurant(t, true), nil).Once(),
		catalogRepo.On("GetDishes", ctx, mock.Anything).Return(testDishes(t, false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)

	var unavailable *commands.DishNoLongerAvailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Paneer Tikka", unavailable.DishName)
}

func TestCheckoutCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCheckoutCommand(t, nil)

	cartRepo := new(MockCartRepository)
	catalogRepo := new(MockCatalogRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		cartRepo.On("GetByCustomer", ctx, mustID(t, 1)).Return(testCart(t), nil).Once(),
		catalogRepo.On("GetRestaurant", ctx, mustID(t, 10)).Return(testRestaurant(t, true), nil).Once(),
		catalogRepo.On("GetDishes", ctx, mock.Anything).Return(testDishes(t, true), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	handler := commands.NewCheckoutCommandHandler(factory, testEstimator(t), notifier, testLogger())

	_, err := handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	notifier.AssertNotCalled(t, "Notify")
}
