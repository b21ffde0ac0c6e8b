package commands

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrReconcileTablesCommandIsNotConstructed = errors.New(
		"ReconcileTablesCommand must be created via NewReconcileTablesCommand constructor",
	)
)

// ReconcileTablesCommand re-derives every table's occupancy from the order
// set. Run periodically as a safety net so the tracker can never drift from
// the orders for longer than one reconciliation interval, even across
// process restarts.
type ReconcileTablesCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileTablesCommand creates a parameterless reconciliation command.
func NewReconcileTablesCommand() ReconcileTablesCommand {
	return ReconcileTablesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileTablesCommand) Validate() error {
	return c.guard.Validate(ErrReconcileTablesCommandIsNotConstructed)
}
