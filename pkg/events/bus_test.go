package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveOne(t *testing.T, c *Connection) Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	e, ok := c.Receive(ctx)
	require.True(t, ok, "expected an event before timeout")
	return e
}

func TestRegisterSendsConnectionEstablished(t *testing.T) {
	bus := NewBus()
	conn := bus.Register("user-1", Filter{})
	defer bus.Unregister(conn)

	e := receiveOne(t, conn)
	assert.Equal(t, EventTypeConnectionEstablished, e.Type)
	assert.Equal(t, conn.ID, e.Content["connection_id"])
	assert.NotEmpty(t, e.ID)
}

func TestEmitDeliversInOrder(t *testing.T) {
	bus := NewBus()
	conn := bus.Register("user-1", Filter{})
	defer bus.Unregister(conn)
	receiveOne(t, conn) // connection.established

	bus.Emit("user-1", TaskCreated("t1"))
	bus.Emit("user-1", TaskStepsGenerated("t1", "Title", 3))
	bus.Emit("user-1", TaskCompleted("t1", "done"))

	assert.Equal(t, EventTypeTaskCreated, receiveOne(t, conn).Type)
	assert.Equal(t, EventTypeTaskStepsGenerated, receiveOne(t, conn).Type)
	assert.Equal(t, EventTypeTaskCompleted, receiveOne(t, conn).Type)
}

func TestEmitIsolatedPerUser(t *testing.T) {
	bus := NewBus()
	alice := bus.Register("alice", Filter{})
	bob := bus.Register("bob", Filter{})
	defer bus.Unregister(alice)
	defer bus.Unregister(bob)
	receiveOne(t, alice)
	receiveOne(t, bob)

	bus.Emit("alice", TaskCreated("t1"))

	assert.Equal(t, EventTypeTaskCreated, receiveOne(t, alice).Type)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, ok := bob.Receive(ctx)
	assert.False(t, ok, "event for alice must not reach bob")
}

func TestEmitNeverBlocksOnSlowReader(t *testing.T) {
	bus := NewBus()
	conn := bus.Register("user-1", Filter{})
	defer bus.Unregister(conn)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			bus.Emit("user-1", TaskCreated("t1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on an undrained connection")
	}

	receiveOne(t, conn) // connection.established
	for i := 0; i < 1000; i++ {
		e := receiveOne(t, conn)
		assert.Equal(t, EventTypeTaskCreated, e.Type)
	}
}

func TestUnregisterWakesReceive(t *testing.T) {
	bus := NewBus()
	conn := bus.Register("user-1", Filter{})
	receiveOne(t, conn)

	result := make(chan bool, 1)
	go func() {
		_, ok := conn.Receive(context.Background())
		result <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	bus.Unregister(conn)

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Receive did not return after Unregister")
	}
}

func TestFilterMatches(t *testing.T) {
	stepEvent := TaskStepCompleted("t1", "s1", 2, "output")
	otherTask := TaskStepCompleted("t2", "s9", 1, "output")
	created := TaskCreated("t1")
	completion := CompletionStarted("c1", "test/model")

	tests := []struct {
		name   string
		filter Filter
		event  Event
		want   bool
	}{
		{
			name:   "zero filter matches everything",
			filter: Filter{},
			event:  stepEvent,
			want:   true,
		},
		{
			name:   "event type listed",
			filter: Filter{EventTypes: []string{EventTypeTaskStepCompleted}},
			event:  stepEvent,
			want:   true,
		},
		{
			name:   "event type not listed",
			filter: Filter{EventTypes: []string{EventTypeTaskCompleted}},
			event:  stepEvent,
			want:   false,
		},
		{
			name:   "metadata value matches",
			filter: Filter{Metadata: map[string][]string{"task_id": {"t1"}}},
			event:  stepEvent,
			want:   true,
		},
		{
			name:   "metadata value differs",
			filter: Filter{Metadata: map[string][]string{"task_id": {"t1"}}},
			event:  otherTask,
			want:   false,
		},
		{
			name:   "metadata key absent on event",
			filter: Filter{Metadata: map[string][]string{"task_id": {"t1"}}},
			event:  completion,
			want:   false,
		},
		{
			name: "all constraints must hold",
			filter: Filter{
				EventTypes: []string{EventTypeTaskStepCompleted},
				Metadata:   map[string][]string{"task_id": {"t1"}, "step_id": {"s1"}},
			},
			event: stepEvent,
			want:  true,
		},
		{
			name: "one metadata constraint failing rejects",
			filter: Filter{
				EventTypes: []string{EventTypeTaskStepCompleted},
				Metadata:   map[string][]string{"task_id": {"t1"}, "step_id": {"s2"}},
			},
			event: stepEvent,
			want:  false,
		},
		{
			name:   "multiple allowed values",
			filter: Filter{Metadata: map[string][]string{"task_id": {"t0", "t1"}}},
			event:  created,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.event))
		})
	}
}

func TestFilteredDelivery(t *testing.T) {
	bus := NewBus()
	conn := bus.Register("user-1", Filter{
		Metadata: map[string][]string{"task_id": {"t1"}},
	})
	defer bus.Unregister(conn)

	// connection.established is queued on Register and bypasses the
	// filter.
	assert.Equal(t, EventTypeConnectionEstablished, receiveOne(t, conn).Type)

	bus.Emit("user-1", TaskCreated("t2"))
	bus.Emit("user-1", TaskCreated("t1"))

	e := receiveOne(t, conn)
	assert.Equal(t, EventTypeTaskCreated, e.Type)
	assert.Equal(t, "t1", e.Metadata["task_id"])
}
