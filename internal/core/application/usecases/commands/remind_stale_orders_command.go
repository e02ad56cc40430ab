package commands

import (
	"errors"
	"fmt"
	"time"

	"pindrop/internal/pkg/errs"
	"pindrop/internal/pkg/guard"
)

var ErrRemindStaleOrdersCommandIsNotConstructed = errors.New(
	"RemindStaleOrdersCommand must be created via NewRemindStaleOrdersCommand constructor",
)

// RemindStaleOrdersCommand asks for owner reminders about orders that have
// been sitting in Placed status longer than the given age.
type RemindStaleOrdersCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemindStaleOrdersCommand creates a command to remind restaurant owners
// about stale placed orders. The age must be positive.
func NewRemindStaleOrdersCommand(olderThan time.Duration) (RemindStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return RemindStaleOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("older than",
			fmt.Errorf("%s is not a positive duration", olderThan))
	}

	return RemindStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// OlderThan returns the minimum age for an order to count as stale.
func (c RemindStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemindStaleOrdersCommandIsNotConstructed if validation fails.
func (c RemindStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemindStaleOrdersCommandIsNotConstructed)
}
