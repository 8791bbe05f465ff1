package commands

import (
	"errors"

	"dineease/internal/pkg/guard"
)

var (
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
)

// ClearCartCommand represents a request to empty the cart. Order type and
// address keep their values so checkout settings survive the clear.
type ClearCartCommand struct {
	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the cart.
// This is a parameterless command.
func NewClearCartCommand() ClearCartCommand {
	command := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearCartCommandIsNotConstructed if validation fails.
func (c *ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}
