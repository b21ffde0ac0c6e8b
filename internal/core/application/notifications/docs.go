// Package notifications turns committed order lifecycle transitions into
// role-scoped frames for connected clients. It owns the wire message formats
// and the per-role routing table: who hears about placements, who hears about
// status changes, and when the waiter role receives a cross-waiter alert.
package notifications
