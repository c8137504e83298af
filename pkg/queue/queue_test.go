package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	mu        sync.Mutex
	dispatched []WorkItem
	followups map[string][]WorkItem
	errOn     map[string]error
	done      chan struct{}
	expect    int
}

func newRecordingDispatcher(expect int) *recordingDispatcher {
	return &recordingDispatcher{
		followups: map[string][]WorkItem{},
		errOn:     map[string]error{},
		done:      make(chan struct{}),
		expect:    expect,
	}
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, item WorkItem) ([]WorkItem, error) {
	d.mu.Lock()
	d.dispatched = append(d.dispatched, item)
	n := len(d.dispatched)
	d.mu.Unlock()
	if n == d.expect {
		close(d.done)
	}
	if err := d.errOn[item.TaskID]; err != nil {
		return nil, err
	}
	return d.followups[item.TaskID], nil
}

func (d *recordingDispatcher) items() []WorkItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]WorkItem, len(d.dispatched))
	copy(out, d.dispatched)
	return out
}

func waitDone(t *testing.T, d *recordingDispatcher) {
	t.Helper()
	select {
	case <-d.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("dispatcher saw %d items, expected %d", len(d.items()), d.expect)
	}
}

func TestQueueDispatchesInOrder(t *testing.T) {
	dispatcher := newRecordingDispatcher(3)
	q := New(dispatcher, nil)
	q.Start(context.Background())
	defer q.Stop()

	q.Enqueue(Decompose("t1", "u1", "key"))
	q.Enqueue(Execute("t2", "u1", "key", "s1"))
	q.Enqueue(Reevaluate("t3", "u1", "key", "s2"))

	waitDone(t, dispatcher)
	got := dispatcher.items()
	require.Len(t, got, 3)
	assert.Equal(t, "t1", got[0].TaskID)
	assert.Equal(t, "t2", got[1].TaskID)
	assert.Equal(t, "t3", got[2].TaskID)
}

func TestQueueEnqueuesFollowups(t *testing.T) {
	dispatcher := newRecordingDispatcher(2)
	dispatcher.followups["t1"] = []WorkItem{Execute("t1", "u1", "key", "s0")}
	q := New(dispatcher, nil)
	q.Start(context.Background())
	defer q.Stop()

	q.Enqueue(Decompose("t1", "u1", "key"))

	waitDone(t, dispatcher)
	got := dispatcher.items()
	require.Len(t, got, 2)
	assert.Equal(t, KindDecompose, got[0].Kind)
	assert.Equal(t, KindExecute, got[1].Kind)
	assert.Equal(t, "s0", got[1].StepID)
}

func TestQueueSurvivesDispatchError(t *testing.T) {
	dispatcher := newRecordingDispatcher(2)
	dispatcher.errOn["t1"] = errors.New("boom")

	var failedMu sync.Mutex
	var failed []WorkItem
	q := New(dispatcher, func(ctx context.Context, item WorkItem, err error) {
		failedMu.Lock()
		failed = append(failed, item)
		failedMu.Unlock()
	})
	q.Start(context.Background())
	defer q.Stop()

	q.Enqueue(Decompose("t1", "u1", "key"))
	q.Enqueue(Decompose("t2", "u1", "key"))

	waitDone(t, dispatcher)
	// The failing item invoked the failure callback and the consumer
	// moved on to the next item.
	failedMu.Lock()
	defer failedMu.Unlock()
	require.Len(t, failed, 1)
	assert.Equal(t, "t1", failed[0].TaskID)
	assert.Equal(t, "t2", dispatcher.items()[1].TaskID)
}

func TestQueueStopIsIdempotent(t *testing.T) {
	q := New(newRecordingDispatcher(1), nil)
	q.Start(context.Background())
	q.Stop()
	q.Stop()
}
