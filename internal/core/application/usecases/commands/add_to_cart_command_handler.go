package commands

import (
	"context"
	"errors"

	"pindrop/internal/core/domain/model/cart"
	"pindrop/internal/pkg/errs"
)

var (
	// ErrDishUnavailable is returned when the requested dish is currently
	// marked unavailable in the catalog.
	ErrDishUnavailable = errors.New("dish is currently unavailable")

	// ErrRestaurantOutOfArea is returned when the dish's restaurant does not
	// serve the customer's area.
	ErrRestaurantOutOfArea = errors.New("restaurant does not serve your area")
)

// AddToCartCommandHandler handles adding a dish to a customer's cart.
// Performs the catalog checks that the cart aggregate cannot do itself:
// the dish must exist and be available, and the restaurant must serve the
// customer's area. A first add creates the cart.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for add-to-cart operations.
// Requires a CartUoWFactory for transactional persistence.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// Returns ErrDishUnavailable or ErrRestaurantOutOfArea for catalog check
// failures and cart.ErrMixedRestaurantCart when the cart already holds dishes
// from another restaurant.
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) error {
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

	catalogRepo := uow.CatalogRepository()
	cartRepo := uow.CartRepository()

	dish, err := catalogRepo.GetDish(ctx, cmd.DishID())
	if err != nil {
		return err
	}
	if !dish.IsAvailable() {
		return ErrDishUnavailable
	}

	restaurant, err := catalogRepo.GetRestaurant(ctx, dish.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.AreaCode().IsEqual(cmd.CustomerArea()) {
		return ErrRestaurantOutOfArea
	}

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerCart, err = cart.NewCart(cmd.CustomerID())
	}
	if err != nil {
		return err
	}

	if err = customerCart.AddItem(dish.ID(), dish.RestaurantID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
