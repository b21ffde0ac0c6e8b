package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrClientClosed is returned by Send after the connection has been closed.
var ErrClientClosed = errors.New("ws client is closed")

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64
)

// client wraps a gorilla connection behind the Conn interface. Sends go
// through a buffered channel drained by a single writePump goroutine, so the
// gorilla single-writer rule holds and messages reach the socket in the order
// they were queued. A full buffer fails the send instead of blocking the
// broadcaster.
type client struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}

	go c.writePump()

	return c
}

// Send queues payload for delivery. It never blocks: a closed client or a
// full buffer returns an error and the dispatcher moves on.
func (c *client) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		return errors.New("ws send buffer full")
	}
}

// Close stops the write pump and closes the socket. Safe to call more than once.
func (c *client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// writePump is the only goroutine allowed to write to the socket.
func (c *client) writePump() {
	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}
