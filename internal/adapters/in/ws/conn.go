package ws

// Conn is a single live client connection as the registry and dispatcher see
// it. Send must be safe for concurrent use and must not block indefinitely;
// the error return lets the dispatcher skip dead connections.
type Conn interface {
	Send(payload []byte) error
}
