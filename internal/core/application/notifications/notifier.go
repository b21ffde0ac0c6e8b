package notifications

import (
	"context"
	"log/slog"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/staff"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

// Broadcaster delivers a message to every live connection subscribed under
// the given role. Delivery is best effort; implementations handle slow or
// dead connections themselves.
type Broadcaster interface {
	Broadcast(role staff.Role, message any)
}

// EventFeed publishes committed lifecycle events to an external feed (kitchen
// displays, analytics). Optional: a nil feed disables publishing.
type EventFeed interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Routing keys for the event feed.
const (
	feedKeyOrderPlaced   = "order.placed"
	feedKeyOrderAdvanced = "order.advanced"
)

// Notifier fans committed order transitions out to role-scoped WebSocket
// audiences and, when configured, to the external event feed. All methods are
// fire-and-forget: the transition is already committed, so failures here are
// logged and swallowed.
type Notifier struct {
	broadcaster Broadcaster
	staffRepo   ports.StaffRepository
	router      services.CrossWaiterRouter
	feed        EventFeed
	logger      *slog.Logger
}

// NewNotifier creates a Notifier. feed may be nil to disable the event feed.
func NewNotifier(
	broadcaster Broadcaster,
	staffRepo ports.StaffRepository,
	feed EventFeed,
	logger *slog.Logger,
) *Notifier {
	return &Notifier{
		broadcaster: broadcaster,
		staffRepo:   staffRepo,
		router:      services.NewCrossWaiterRouter(),
		feed:        feed,
		logger:      logger.With("component", "notifications"),
	}
}

// OrderPlaced announces a new order to cashiers and managers, and routes a
// cross-waiter alert to the waiter role when the order's table is assigned to
// somebody other than the waiter who placed it.
func (n *Notifier) OrderPlaced(ctx context.Context, o *order.Order) {
	msg := NewOrderMessage{
		Type:  TypeNewOrder,
		Order: orderPayloadFromDomain(o),
	}

	n.broadcaster.Broadcast(staff.Cashier, msg)
	n.broadcaster.Broadcast(staff.Manager, msg)

	n.routeCrossWaiter(ctx, o)
	n.publish(ctx, feedKeyOrderPlaced, msg)
}

// OrderAdvanced announces a status change to all three roles.
func (n *Notifier) OrderAdvanced(ctx context.Context, o *order.Order, previous order.Status) {
	msg := OrderStatusUpdatedMessage{
		Type:           TypeOrderStatusUpdated,
		Order:          orderPayloadFromDomain(o),
		PreviousStatus: previous.String(),
	}

	n.broadcaster.Broadcast(staff.Waiter, msg)
	n.broadcaster.Broadcast(staff.Cashier, msg)
	n.broadcaster.Broadcast(staff.Manager, msg)

	n.publish(ctx, feedKeyOrderAdvanced, msg)
}

func (n *Notifier) routeCrossWaiter(ctx context.Context, o *order.Order) {
	assignments, err := n.staffRepo.GetWaiterAssignments(ctx)
	if err != nil {
		n.logger.Error("fetch waiter assignments", "error", err, "orderId", o.ID().String())
		return
	}

	alert, err := n.router.Route(o, assignments)
	if err != nil {
		n.logger.Error("route cross-waiter alert", "error", err, "orderId", o.ID().String())
		return
	}
	if alert == nil {
		return
	}

	n.broadcaster.Broadcast(staff.Waiter, CrossWaiterOrderMessage{
		Type:             TypeCrossWaiterOrder,
		Order:            orderPayloadFromDomain(alert.Order),
		AssignedWaiterID: alert.AssignedWaiterID.String(),
		ActualWaiterID:   alert.ActualWaiterID.String(),
		Message:          alert.Message,
	})
}

func (n *Notifier) publish(ctx context.Context, routingKey string, message any) {
	if n.feed == nil {
		return
	}

	if err := n.feed.Publish(ctx, routingKey, message); err != nil {
		n.logger.Error("publish to event feed", "error", err, "routingKey", routingKey)
	}
}
