package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Bus fans events out to a user's live subscriptions. Delivery is
// per-user: an event emitted for one user is never visible to another.
type Bus struct {
	mu    sync.RWMutex
	users map[string][]*Connection
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{users: make(map[string][]*Connection)}
}

// Register creates a subscription for the user with the given filter.
// The caller must Unregister it when the subscriber goes away.
func (b *Bus) Register(userID string, filter Filter) *Connection {
	c := &Connection{
		ID:     uuid.New().String(),
		userID: userID,
		filter: filter,
		notify: make(chan struct{}, 1),
	}

	b.mu.Lock()
	b.users[userID] = append(b.users[userID], c)
	b.mu.Unlock()

	c.push(ConnectionEstablished(c.ID))
	return c
}

// Unregister removes the subscription and wakes any blocked Receive.
func (b *Bus) Unregister(c *Connection) {
	b.mu.Lock()
	conns := b.users[c.userID]
	for i, existing := range conns {
		if existing == c {
			b.users[c.userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(b.users[c.userID]) == 0 {
		delete(b.users, c.userID)
	}
	b.mu.Unlock()

	c.close()
}

// Emit delivers the event to every matching subscription of the user.
// It never blocks: each connection buffers without bound and a slow or
// gone reader only affects itself.
func (b *Bus) Emit(userID string, e Event) {
	b.mu.RLock()
	conns := make([]*Connection, len(b.users[userID]))
	copy(conns, b.users[userID])
	b.mu.RUnlock()

	for _, c := range conns {
		if !c.filter.Matches(e) {
			continue
		}
		c.push(e)
	}
	if len(conns) > 0 {
		slog.Debug("Event emitted", "user_id", userID, "type", e.Type, "connections", len(conns))
	}
}

// Connection is one subscriber's queue. Events accumulate in arrival
// order until Receive drains them.
type Connection struct {
	ID     string
	userID string
	filter Filter

	mu     sync.Mutex
	queue  []Event
	closed bool
	notify chan struct{}
}

func (c *Connection) push(e Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.queue = append(c.queue, e)
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
}

func (c *Connection) close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// Receive returns the next queued event, blocking until one arrives,
// the context is cancelled, or the connection is unregistered.
func (c *Connection) Receive(ctx context.Context) (Event, bool) {
	for {
		c.mu.Lock()
		if len(c.queue) > 0 {
			e := c.queue[0]
			c.queue = c.queue[1:]
			c.mu.Unlock()
			return e, true
		}
		closed := c.closed
		c.mu.Unlock()

		if closed {
			return Event{}, false
		}

		select {
		case <-ctx.Done():
			return Event{}, false
		case <-c.notify:
		}
	}
}
