package commands

import (
	"context"
)

// RemoveCartLineCommandHandler handles removing a single line from a
// customer's cart.
type RemoveCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartLineCommandHandler creates a handler for cart line removal.
func NewRemoveCartLineCommandHandler(uowFactory CartUoWFactory) RemoveCartLineCommandHandler {
	return RemoveCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command. Propagates an object-not-found error
// if the customer has no cart or the line is not in it.
func (h RemoveCartLineCommandHandler) Handle(ctx context.Context, cmd RemoveCartLineCommand) error {
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

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customerCart.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
