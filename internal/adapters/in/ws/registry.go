package ws

import (
	"sync"

	"tableside/internal/core/domain/model/staff"
)

// Registry tracks which live connections are subscribed under which role.
// A connection holds at most one subscription: joining again under a new role
// replaces the old one. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	roles   map[Conn]staff.Role
	members map[staff.Role]map[Conn]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		roles:   make(map[Conn]staff.Role),
		members: make(map[staff.Role]map[Conn]struct{}),
	}
}

// Join subscribes conn under role, replacing any previous subscription the
// connection held. The role must be valid; callers reject unknown roles
// before getting here.
func (r *Registry) Join(conn Conn, role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.roles[conn]; ok {
		delete(r.members[prev], conn)
	}

	r.roles[conn] = role
	if r.members[role] == nil {
		r.members[role] = make(map[Conn]struct{})
	}
	r.members[role][conn] = struct{}{}

	return nil
}

// Leave removes conn's subscription. No-op when the connection never joined
// or already left, so disconnect paths can call it unconditionally.
func (r *Registry) Leave(conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	role, ok := r.roles[conn]
	if !ok {
		return
	}

	delete(r.roles, conn)
	delete(r.members[role], conn)
}

// Connections returns a snapshot of the connections subscribed under role.
// The returned slice is detached: joins and leaves after the call do not
// affect an in-flight broadcast.
func (r *Registry) Connections(role staff.Role) []Conn {
	r.mu.Lock()
	defer r.mu.Unlock()

	conns := make([]Conn, 0, len(r.members[role]))
	for conn := range r.members[role] {
		conns = append(conns, conn)
	}
	return conns
}

// Role returns the role conn is subscribed under and whether it is subscribed.
func (r *Registry) Role(conn Conn) (staff.Role, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	role, ok := r.roles[conn]
	return role, ok
}
