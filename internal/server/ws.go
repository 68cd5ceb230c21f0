package server

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/opencnc/intake/internal/interfaces"
)

// feedClient is one subscribed websocket connection with its own send
// queue, so one slow client cannot stall the others.
type feedClient struct {
	conn *websocket.Conn
	send chan any
	done chan struct{}
}

// feed fans completed analysis reports out to every connected websocket
// client.
type feed struct {
	mu      sync.Mutex
	clients map[*feedClient]struct{}
	closed  bool
	logger  interfaces.Logger
}

func newFeed(logger interfaces.Logger) *feed {
	return &feed{
		clients: make(map[*feedClient]struct{}),
		logger:  logger,
	}
}

// Register adds a connection to the feed and starts its writer.
func (f *feed) Register(conn *websocket.Conn) *feedClient {
	c := &feedClient{
		conn: conn,
		send: make(chan any, 16),
		done: make(chan struct{}),
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(c.done)
		_ = conn.Close()
		return c
	}
	f.clients[c] = struct{}{}
	n := len(f.clients)
	f.mu.Unlock()

	f.logger.Info("intake feed client connected", interfaces.Field{Key: "clients", Value: n})

	go c.writeLoop()
	return c
}

// Unregister removes a connection and closes it.
func (f *feed) Unregister(c *feedClient) {
	f.mu.Lock()
	if _, ok := f.clients[c]; ok {
		delete(f.clients, c)
		close(c.done)
	}
	n := len(f.clients)
	f.mu.Unlock()

	_ = c.conn.Close()
	f.logger.Info("intake feed client disconnected", interfaces.Field{Key: "clients", Value: n})
}

// Broadcast queues v for every connected client. Clients whose queue is
// full are dropped rather than blocking the caller.
func (f *feed) Broadcast(v any) {
	f.mu.Lock()
	var stale []*feedClient
	for c := range f.clients {
		select {
		case c.send <- v:
		default:
			stale = append(stale, c)
		}
	}
	for _, c := range stale {
		delete(f.clients, c)
		close(c.done)
	}
	f.mu.Unlock()

	for _, c := range stale {
		_ = c.conn.Close()
		f.logger.Warn("dropping slow intake feed client")
	}
}

// Close disconnects every client and rejects future registrations.
func (f *feed) Close() {
	f.mu.Lock()
	f.closed = true
	clients := make([]*feedClient, 0, len(f.clients))
	for c := range f.clients {
		clients = append(clients, c)
		delete(f.clients, c)
		close(c.done)
	}
	f.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

func (c *feedClient) writeLoop() {
	for {
		select {
		case v := <-c.send:
			if err := c.conn.WriteJSON(v); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
