package commands

import (
	"context"
	"errors"

	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/pkg/errs"
)

// ErrNothingToReorder is returned when every dish of the past order has since
// gone unavailable.
var ErrNothingToReorder = errors.New("no dish from this order is still available")

// ReorderCommandHandler refills a customer's cart from one of their past
// orders. Dishes that went unavailable since are skipped; if none survive the
// reorder fails.
type ReorderCommandHandler struct {
	uowFactory ReorderUoWFactory
}

// NewReorderCommandHandler creates a handler for reorder operations.
func NewReorderCommandHandler(uowFactory ReorderUoWFactory) ReorderCommandHandler {
	return ReorderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reorder command.
//
// The past order must belong to the requesting customer; anyone else gets an
// object-not-found error rather than a hint that the order exists. The usual
// add-to-cart checks apply: active restaurant in the customer's area, and no
// mixing with another restaurant's dishes already in the cart.
func (h ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pastOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !pastOrder.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	catalogRepo := uow.CatalogRepository()

	restaurant, err := catalogRepo.GetRestaurant(ctx, pastOrder.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.IsActive() {
		return ErrRestaurantNotActive
	}
	if !restaurant.AreaCode().IsEqual(cmd.CustomerArea()) {
		return ErrRestaurantOutOfArea
	}

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerCart, err = cart.NewCart(cmd.CustomerID())
	}
	if err != nil {
		return err
	}

	added := 0
	for _, line := range pastOrder.Lines() {
		dish, dishErr := catalogRepo.GetDish(ctx, line.DishID())
		if errors.Is(dishErr, errs.ErrObjectNotFound) {
			continue
		}
		if dishErr != nil {
			return dishErr
		}
		if !dish.IsAvailable() {
			continue
		}

		if addErr := customerCart.AddItem(dish.ID(), dish.RestaurantID(), line.Quantity()); addErr != nil {
			return addErr
		}
		added++
	}

	if added == 0 {
		return ErrNothingToReorder
	}

	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
