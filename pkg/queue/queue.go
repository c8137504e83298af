package queue

import (
	"context"
	"log/slog"
	"sync"
)

// FailureFunc is invoked when dispatching an item returns an error,
// after the consumer has logged it. Typically it marks the task failed
// and emits task.failed.
type FailureFunc func(ctx context.Context, item WorkItem, err error)

// Queue is an unbounded in-memory FIFO with a single consumer
// goroutine. Enqueue never blocks.
type Queue struct {
	dispatcher Dispatcher
	onFailure  FailureFunc

	mu     sync.Mutex
	items  []WorkItem
	notify chan struct{}

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a queue over the given dispatcher. onFailure may be nil.
func New(dispatcher Dispatcher, onFailure FailureFunc) *Queue {
	return &Queue{
		dispatcher: dispatcher,
		onFailure:  onFailure,
		notify:     make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
}

// Enqueue appends one item.
func (q *Queue) Enqueue(item WorkItem) {
	q.EnqueueMany([]WorkItem{item})
}

// EnqueueMany appends items preserving their order.
func (q *Queue) EnqueueMany(items []WorkItem) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, items...)
	q.mu.Unlock()

	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Len reports the current backlog.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Start begins the consumer loop in a goroutine.
func (q *Queue) Start(ctx context.Context) {
	q.wg.Add(1)
	go q.run(ctx)
}

// Stop signals the consumer to stop and waits for the in-flight item
// to finish. It is safe to call Stop multiple times.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() { close(q.stopCh) })
	q.wg.Wait()
}

func (q *Queue) run(ctx context.Context) {
	defer q.wg.Done()
	logger := slog.With("component", "queue")
	logger.Info("Work queue consumer started")

	for {
		item, ok := q.pop()
		if !ok {
			select {
			case <-q.stopCh:
				logger.Info("Work queue consumer stopped")
				return
			case <-ctx.Done():
				logger.Info("Work queue consumer stopped", "reason", ctx.Err())
				return
			case <-q.notify:
				continue
			}
		}

		q.process(ctx, item, logger)

		select {
		case <-q.stopCh:
			logger.Info("Work queue consumer stopped")
			return
		case <-ctx.Done():
			logger.Info("Work queue consumer stopped", "reason", ctx.Err())
			return
		default:
		}
	}
}

func (q *Queue) pop() (WorkItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return WorkItem{}, false
	}
	item := q.items[0]
	q.items = q.items[1:]
	return item, true
}

// process runs one item. A dispatcher error fails that task only; the
// consumer keeps going.
func (q *Queue) process(ctx context.Context, item WorkItem, logger *slog.Logger) {
	followups, err := q.dispatcher.Dispatch(ctx, item)
	if err != nil {
		logger.Error("Work item failed",
			"kind", item.Kind,
			"task_id", item.TaskID,
			"step_id", item.StepID,
			"error", err)
		if q.onFailure != nil {
			q.onFailure(ctx, item, err)
		}
		return
	}
	q.EnqueueMany(followups)
}
