package commands

import (
	"context"
	"errors"

	"pindrop/internal/pkg/errs"
)

// ClearCartCommandHandler handles emptying a customer's cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the clear command. A customer without a cart gets a
// successful no-op, keeping the operation idempotent.
func (h ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
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
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	customerCart.Clear()

	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
