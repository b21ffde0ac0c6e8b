package commands

import (
	"context"

	"tableside/internal/core/domain/services"
)

// ReconcileTablesCommandHandler walks the floor plan and recomputes each
// table's occupancy by membership in the open order set, fixing any drift in
// one transaction.
type ReconcileTablesCommandHandler struct {
	uowFactory UoWFactory
	tracker    services.OccupancyTracker
}

// NewReconcileTablesCommandHandler creates a handler for occupancy reconciliation.
func NewReconcileTablesCommandHandler(uowFactory UoWFactory) ReconcileTablesCommandHandler {
	return ReconcileTablesCommandHandler{
		uowFactory: uowFactory,
		tracker:    services.NewOccupancyTracker(),
	}
}

// Handle recomputes occupancy for every table and returns how many tables
// changed status. No broadcasts are emitted: reconciliation repairs derived
// state, it is not a lifecycle transition.
func (h *ReconcileTablesCommandHandler) Handle(ctx context.Context, cmd ReconcileTablesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tableRepo := uow.TableRepository()
	orderRepo := uow.OrderRepository()

	tables, err := tableRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, tbl := range tables {
		open, openErr := orderRepo.GetOpenByTable(ctx, tbl.Number())
		if openErr != nil {
			return 0, openErr
		}

		before := tbl.Status()
		if err = h.tracker.OnOrderServed(tbl, open); err != nil {
			return 0, err
		}

		if tbl.Status() == before {
			continue
		}

		if err = tableRepo.Update(ctx, tbl); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
