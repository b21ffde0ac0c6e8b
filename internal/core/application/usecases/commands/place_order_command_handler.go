package commands

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/table"
	"tableside/internal/core/domain/services"
	"tableside/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates the order in "paid" status, marks the table occupied, and hands the
// new order to the notifier for fan-out once the transaction commits.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.OccupancyTracker
	notifier   TransitionNotifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence and a notifier for
// post-commit broadcasts.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, notifier TransitionNotifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewOccupancyTracker(),
		notifier:   notifier,
	}
}

// Handle processes the placement command and returns the full order,
// including items. The table row is created on the fly when the floor plan
// has not seeded it. Broadcasts fire only after the commit succeeds; a
// storage failure rolls everything back and nothing is announced.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		item, err := order.NewItem(spec.MenuItemID, spec.Quantity, spec.Notes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.TableNumber(), cmd.WaiterID(), cmd.CashReceived(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = h.occupyTable(ctx, uow, cmd.TableNumber()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.OrderPlaced(ctx, newOrder)

	return newOrder, nil
}

func (h *PlaceOrderCommandHandler) occupyTable(ctx context.Context, uow UoW, tableNumber int) error {
	tableRepo := uow.TableRepository()

	existing, err := tableRepo.Get(ctx, tableNumber)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		created, newErr := table.NewTable(tableNumber, "")
		if newErr != nil {
			return newErr
		}
		if newErr = h.tracker.OnOrderCreated(created); newErr != nil {
			return newErr
		}
		return tableRepo.Add(ctx, created)
	}

	if err = h.tracker.OnOrderCreated(existing); err != nil {
		return err
	}
	return tableRepo.Update(ctx, existing)
}
