package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
)

// AdvanceOrderCommandHandler handles single-step order lifecycle transitions.
// Validation is delegated to the order aggregate: a target that is not the
// immediate successor fails with an InvalidTransitionError and the
// transaction rolls back, leaving order and table untouched.
//
// On the transition into "served" the handler recomputes the table's
// occupancy from the orders that remain open for it, so a table holding a
// second open order stays occupied.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.OccupancyTracker
	notifier   TransitionNotifier
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
func NewAdvanceOrderCommandHandler(uowFactory UoWFactory, notifier TransitionNotifier) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewOccupancyTracker(),
		notifier:   notifier,
	}
}

// Handle processes the advancement command and returns the updated order.
// The previous status is captured before the transition and handed to the
// notifier so clients can render what changed. Broadcasts fire only after
// the commit succeeds.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previous := aggregate.Status()
	if err = aggregate.Advance(cmd.Target(), cmd.ActorID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if aggregate.Status() == order.Served {
		if err = h.releaseTable(ctx, uow, aggregate.TableNumber()); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderAdvanced(ctx, aggregate, previous)

	return aggregate, nil
}

// releaseTable re-derives the table's occupancy from the orders still open
// for it. The just-served order is already updated inside this transaction,
// so it no longer counts as open.
func (h *AdvanceOrderCommandHandler) releaseTable(ctx context.Context, uow UoW, tableNumber int) error {
	open, err := uow.OrderRepository().GetOpenByTable(ctx, tableNumber)
	if err != nil {
		return err
	}

	tableRepo := uow.TableRepository()
	aggregate, err := tableRepo.Get(ctx, tableNumber)
	if err != nil {
		return err
	}

	if err = h.tracker.OnOrderServed(aggregate, open); err != nil {
		return err
	}

	return tableRepo.Update(ctx, aggregate)
}
