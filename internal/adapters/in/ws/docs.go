// Package ws is the WebSocket adapter: it upgrades HTTP connections, reads
// join messages to subscribe each connection under a single role, and fans
// role-scoped broadcasts out to the live connections. All delivery is best
// effort; a slow or dead connection never blocks a broadcast or another
// connection.
package ws
