package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/core/domain/model/catalog"
	"pindrop/internal/core/domain/model/kernel"
	"pindrop/internal/core/domain/model/order"
	"pindrop/internal/core/domain/services"
	"pindrop/internal/core/ports"
	"pindrop/internal/pkg/errs"
)

var (
	// ErrCartIsEmpty is returned when checking out with no cart or an empty one.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrRestaurantNotActive is returned when the cart's restaurant has been
	// deactivated since the dishes were added.
	ErrRestaurantNotActive = errors.New("restaurant is not accepting orders")
)

// DishNoLongerAvailableError is returned when a dish went unavailable between
// add-to-cart and checkout. Carries the dish name so the customer knows which
// line to fix.
type DishNoLongerAvailableError struct {
	DishName string
}

func (e *DishNoLongerAvailableError) Error() string {
	return fmt.Sprintf("dish %q is no longer available", e.DishName)
}

// CheckoutResult carries the outcome of a successful checkout back to the
// transport layer.
type CheckoutResult struct {
	OrderID    kernel.ID
	Charges    order.Charges
	ETAMinutes int
}

// CheckoutCommandHandler converts a customer's cart into a placed order.
//
// The whole conversion is one transaction: availability re-checks, the price
// snapshot, offer evaluation, order creation and cart clearing commit or roll
// back together. A checkout can therefore never leave a half-placed order or
// a stale cart behind.
//
// The restaurant owner is notified after the transaction commits; a failed
// notification is logged and never fails the checkout.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	estimator  services.DeliveryEstimator
	notifier   ports.NotificationSink
	logger     *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	estimator services.DeliveryEstimator,
	notifier ports.NotificationSink,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		notifier:   notifier,
		logger:     logger.With("component", "checkout"),
	}
}

// Handle processes the checkout command.
//
// Failure modes surfaced to the caller:
//   - ErrCartIsEmpty when there is nothing to check out
//   - ErrRestaurantNotActive and ErrRestaurantOutOfArea for restaurant checks
//   - DishNoLongerAvailableError naming the first dish that went unavailable
//   - offer evaluation errors when an offer was requested but does not apply
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (CheckoutResult, error) {
	if err := cmd.Validate(); err != nil {
		return CheckoutResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckoutResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	catalogRepo := uow.CatalogRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		// No cart rows at all is the normal state after a clear or a
		// previous checkout, not a lookup failure.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return CheckoutResult{}, ErrCartIsEmpty
		}
		return CheckoutResult{}, err
	}
	if customerCart.IsEmpty() {
		return CheckoutResult{}, ErrCartIsEmpty
	}

	restaurant, err := catalogRepo.GetRestaurant(ctx, *customerCart.RestaurantID())
	if err != nil {
		return CheckoutResult{}, err
	}
	if !restaurant.IsActive() {
		return CheckoutResult{}, ErrRestaurantNotActive
	}
	if !restaurant.AreaCode().IsEqual(cmd.CustomerArea()) {
		return CheckoutResult{}, ErrRestaurantOutOfArea
	}

	orderLines, err := h.priceLines(ctx, catalogRepo, customerCart.Lines())
	if err != nil {
		return CheckoutResult{}, err
	}

	quote := services.NewQuoteCalculator()
	subtotal := quote.Subtotal(orderLines)

	discount := kernel.ZeroMoney()
	if cmd.OfferID() != nil {
		appliedOffer, offerErr := uow.OfferRepository().Get(ctx, *cmd.OfferID())
		if offerErr != nil {
			return CheckoutResult{}, offerErr
		}
		discount, offerErr = appliedOffer.Evaluate(subtotal, restaurant.ID())
		if offerErr != nil {
			return CheckoutResult{}, offerErr
		}
	}

	charges, err := quote.Assemble(subtotal, discount, restaurant.Fee())
	if err != nil {
		return CheckoutResult{}, err
	}

	eta := h.estimator.EstimateMinutes(customerCart.TotalQuantity())

	newOrder, err := order.NewOrder(
		cmd.CustomerID(),
		restaurant.ID(),
		orderLines,
		charges,
		cmd.OfferID(),
		cmd.PaymentMode(),
		eta,
		time.Now().UTC(),
	)
	if err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CheckoutResult{}, err
	}

	customerCart.Clear()
	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return CheckoutResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CheckoutResult{}, err
	}

	h.notifyOwner(ctx, restaurant.OwnerID(), newOrder.ID(), restaurant.Name())

	return CheckoutResult{
		OrderID:    newOrder.ID(),
		Charges:    newOrder.Charges(),
		ETAMinutes: newOrder.ETAMinutes(),
	}, nil
}

// priceLines re-validates availability and snapshots names and prices for
// every cart line.
func (h CheckoutCommandHandler) priceLines(
	ctx context.Context,
	catalogRepo ports.CatalogRepository,
	cartLines []*cart.Line,
) ([]*order.Line, error) {
	dishIDs := make([]kernel.ID, 0, len(cartLines))
	for _, line := range cartLines {
		dishIDs = append(dishIDs, line.DishID())
	}

	dishes, err := catalogRepo.GetDishes(ctx, dishIDs)
	if err != nil {
		return nil, err
	}

	dishByID := make(map[int64]*catalog.Dish, len(dishes))
	for _, dish := range dishes {
		dishByID[dish.ID().Value()] = dish
	}

	orderLines := make([]*order.Line, 0, len(cartLines))
	for _, line := range cartLines {
		dish, ok := dishByID[line.DishID().Value()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("dish", line.DishID().String())
		}
		if !dish.IsAvailable() {
			return nil, &DishNoLongerAvailableError{DishName: dish.Name()}
		}

		orderLine, lineErr := order.NewLine(dish.ID(), dish.Name(), line.Quantity(), dish.Price())
		if lineErr != nil {
			return nil, lineErr
		}
		orderLines = append(orderLines, orderLine)
	}

	return orderLines, nil
}

// notifyOwner tells the restaurant owner about the new order, best effort.
func (h CheckoutCommandHandler) notifyOwner(ctx context.Context, ownerID *kernel.ID, orderID kernel.ID, restaurantName string) {
	if ownerID == nil {
		return
	}

	message := fmt.Sprintf("New order #%s placed for %s", orderID, restaurantName)
	if err := h.notifier.Notify(ctx, *ownerID, message); err != nil {
		h.logger.Warn("owner notification failed",
			"order_id", orderID.String(),
			"error", err)
	}
}
