// Package events provides real-time event delivery to per-user SSE
// subscribers. Events are fanned out in-process; each connection keeps
// an unbounded FIFO so a slow reader never blocks the emitter.
package events

import (
	"github.com/google/uuid"
)

// Event types emitted by the gateway.
const (
	// Connection lifecycle
	EventTypeConnectionEstablished = "connection.established"

	// Task lifecycle
	EventTypeTaskCreated          = "task.created"
	EventTypeTaskStepsGenerated   = "task.steps_generated"
	EventTypeTaskStepsRegenerated = "task.steps_regenerated"
	EventTypeTaskStepCompleted    = "task.step_completed"
	EventTypeTaskCompleted        = "task.completed"
	EventTypeTaskFailed           = "task.failed"

	// Direct completions
	EventTypeCompletionStarted  = "completion.started"
	EventTypeCompletionChunk    = "completion.chunk"
	EventTypeCompletionFinished = "completion.finished"

	// Chat threads
	EventTypeChatThreadCreated = "chat.thread_created"
	EventTypeChatMessage       = "chat.message"
)

// Event is a single notification delivered to a user's subscribers.
// Metadata carries the filterable dimensions; Content is the payload.
type Event struct {
	ID       string            `json:"event_id"`
	Type     string            `json:"type"`
	Content  map[string]any    `json:"content"`
	Metadata map[string]string `json:"metadata"`
}

// NewEvent creates an event with a fresh ID.
func NewEvent(eventType string, content map[string]any, metadata map[string]string) Event {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return Event{
		ID:       uuid.New().String(),
		Type:     eventType,
		Content:  content,
		Metadata: metadata,
	}
}

// ConnectionEstablished is the first event on every new subscription.
func ConnectionEstablished(connectionID string) Event {
	return NewEvent(EventTypeConnectionEstablished,
		map[string]any{"connection_id": connectionID},
		nil)
}

// TaskCreated signals that a task row exists and decomposition is queued.
func TaskCreated(taskID string) Event {
	return NewEvent(EventTypeTaskCreated,
		map[string]any{"task_id": taskID},
		map[string]string{"task_id": taskID})
}

// TaskStepsGenerated signals that decomposition produced a plan.
func TaskStepsGenerated(taskID, title string, stepCount int) Event {
	return NewEvent(EventTypeTaskStepsGenerated,
		map[string]any{"task_id": taskID, "title": title, "step_count": stepCount},
		map[string]string{"task_id": taskID})
}

// TaskStepsRegenerated signals that a reevaluation replaced the
// remainder of a plan.
func TaskStepsRegenerated(taskID string, newStepCount, firstNewStepNumber int) Event {
	return NewEvent(EventTypeTaskStepsRegenerated,
		map[string]any{
			"task_id":               taskID,
			"new_step_count":        newStepCount,
			"first_new_step_number": firstNewStepNumber,
		},
		map[string]string{"task_id": taskID})
}

// TaskStepCompleted signals a terminal step state, successful or not.
func TaskStepCompleted(taskID, stepID string, stepNumber int, responseContent string) Event {
	return NewEvent(EventTypeTaskStepCompleted,
		map[string]any{
			"task_id":          taskID,
			"step_id":          stepID,
			"step_number":      stepNumber,
			"response_content": responseContent,
		},
		map[string]string{"task_id": taskID, "step_id": stepID})
}

// TaskCompleted signals that a task reached its final output.
func TaskCompleted(taskID, output string) Event {
	return NewEvent(EventTypeTaskCompleted,
		map[string]any{"task_id": taskID, "output": output},
		map[string]string{"task_id": taskID})
}

// TaskFailed signals an unrecoverable task error.
func TaskFailed(taskID, reason string) Event {
	return NewEvent(EventTypeTaskFailed,
		map[string]any{"task_id": taskID, "reason": reason},
		map[string]string{"task_id": taskID})
}

// CompletionStarted opens a streamed direct completion.
func CompletionStarted(completionID, model string) Event {
	return NewEvent(EventTypeCompletionStarted,
		map[string]any{"completion_id": completionID, "model": model},
		map[string]string{"completion_id": completionID})
}

// CompletionChunk carries one parsed fragment of a streamed completion.
// Key is empty for plain content and set for additional-data fragments.
func CompletionChunk(completionID, content string, key *string) Event {
	payload := map[string]any{"completion_id": completionID, "content": content}
	if key != nil {
		payload["additional_data_key"] = *key
	}
	return NewEvent(EventTypeCompletionChunk,
		payload,
		map[string]string{"completion_id": completionID})
}

// CompletionFinished closes a streamed direct completion.
func CompletionFinished(completionID string, errMessage string) Event {
	payload := map[string]any{"completion_id": completionID}
	if errMessage != "" {
		payload["error"] = errMessage
	}
	return NewEvent(EventTypeCompletionFinished,
		payload,
		map[string]string{"completion_id": completionID})
}

// ChatThreadCreated signals a new chat thread.
func ChatThreadCreated(threadID string) Event {
	return NewEvent(EventTypeChatThreadCreated,
		map[string]any{"thread_id": threadID},
		map[string]string{"thread_id": threadID})
}

// ChatMessage signals a persisted chat message.
func ChatMessage(threadID, messageID, role, content string) Event {
	return NewEvent(EventTypeChatMessage,
		map[string]any{
			"thread_id":  threadID,
			"message_id": messageID,
			"role":       role,
			"content":    content,
		},
		map[string]string{"thread_id": threadID})
}

// Filter restricts which events a subscription receives. A zero filter
// matches everything. Every constraint present must hold: the event
// type must be listed (when any are listed), and for each metadata key
// the event must carry one of the allowed values. An event missing a
// filtered metadata key does not match.
type Filter struct {
	EventTypes []string
	Metadata   map[string][]string
}

// Matches reports whether the event passes the filter.
func (f Filter) Matches(e Event) bool {
	if len(f.EventTypes) > 0 {
		found := false
		for _, t := range f.EventTypes {
			if e.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for key, allowed := range f.Metadata {
		value, ok := e.Metadata[key]
		if !ok {
			return false
		}
		found := false
		for _, a := range allowed {
			if value == a {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
