package ws

import (
	"encoding/json"
	"log/slog"

	"tableside/internal/core/domain/model/staff"
)

// Dispatcher fans a message out to every connection subscribed under a role.
// The message is marshalled once per broadcast and the same bytes go to every
// recipient. Send errors are logged and skipped so one dead connection cannot
// starve the rest of the audience.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *Registry, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger.With("component", "ws"),
	}
}

// Broadcast delivers message to the role's current subscribers. Connections
// that join mid-broadcast are not included; connections that leave are
// harmlessly attempted.
func (d *Dispatcher) Broadcast(role staff.Role, message any) {
	payload, err := json.Marshal(message)
	if err != nil {
		d.logger.Error("marshal broadcast", "error", err, "role", role.String())
		return
	}

	for _, conn := range d.registry.Connections(role) {
		if sendErr := conn.Send(payload); sendErr != nil {
			d.logger.Debug("skip unreachable connection", "error", sendErr, "role", role.String())
		}
	}
}
