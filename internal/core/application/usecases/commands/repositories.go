// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and notification fan-out strictly
// after a successful commit.
package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// UoW manages transactions across the order and table aggregates. Every
	// lifecycle transition touches both: placement occupies a table, serving
	// may free one.
	UoW interface {
		TxManager
		OrderRepoFactory
		TableRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// TransitionNotifier receives committed lifecycle transitions for fan-out to
// connected clients. Implementations must be fire-and-forget: a notification
// failure never reaches the handler, because the transition is already
// committed and must not be rolled back over a delivery problem.
type TransitionNotifier interface {
	// OrderPlaced announces a newly created order.
	OrderPlaced(ctx context.Context, o *order.Order)

	// OrderAdvanced announces a status change together with the prior status.
	OrderAdvanced(ctx context.Context, o *order.Order, previous order.Status)
}
