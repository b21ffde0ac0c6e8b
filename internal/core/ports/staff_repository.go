package ports

import (
	"context"

	"tableside/internal/core/domain/model/staff"
)

// StaffRepository exposes the waiter-to-table assignments maintained by the
// staff-management collaborator. Read-only from this core's perspective:
// assignments are fetched fresh for every routing decision and never written.
type StaffRepository interface {
	// GetWaiterAssignments retrieves all waiters with their assigned tables.
	// A waiter with no explicit tables appears with an empty set.
	GetWaiterAssignments(ctx context.Context) ([]staff.Assignment, error)
}
