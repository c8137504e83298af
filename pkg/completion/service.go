// Package completion bridges a single streamed LLM call onto a
// completion.started / completion.chunk / completion.finished event
// sequence, delivered both to the caller and to the user's event
// subscriptions.
package completion

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
)

// Streamer is the slice of the LLM adapter this service needs.
type Streamer interface {
	Stream(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (<-chan llm.Chunk, error)
}

// Service runs direct streamed completions for the completions
// endpoint.
type Service struct {
	streamer Streamer
	bus      *events.Bus
}

// NewService creates a completion stream service.
func NewService(streamer Streamer, bus *events.Bus) *Service {
	return &Service{streamer: streamer, bus: bus}
}

// Start opens the upstream stream and returns a fresh completion ID
// plus the event sequence for that completion. Every event is also
// emitted on the user's event bus. The returned channel is closed
// after completion.finished; cancelling ctx abandons the stream. An
// error return means the stream never started and nothing was emitted.
func (s *Service) Start(ctx context.Context, apiKey, userID, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (string, <-chan events.Event, error) {
	chunks, err := s.streamer.Stream(ctx, apiKey, model, messages, requested, temperature, cfg)
	if err != nil {
		return "", nil, err
	}

	completionID := uuid.New().String()
	out := make(chan events.Event)

	go func() {
		defer close(out)

		s.deliver(ctx, out, userID, events.CompletionStarted(completionID, model))

		var failure string
		for chunk := range chunks {
			if chunk.Err != nil {
				failure = chunk.Err.Error()
				slog.Warn("Completion stream failed",
					"completion_id", completionID,
					"error", chunk.Err)
				break
			}
			s.deliver(ctx, out, userID, events.CompletionChunk(completionID, chunk.Content, chunk.AdditionalDataKey))
		}
		s.deliver(ctx, out, userID, events.CompletionFinished(completionID, failure))
	}()

	return completionID, out, nil
}

// deliver emits on the bus and forwards to the caller's channel unless
// the caller has gone away.
func (s *Service) deliver(ctx context.Context, out chan<- events.Event, userID string, e events.Event) {
	s.bus.Emit(userID, e)
	select {
	case out <- e:
	case <-ctx.Done():
	}
}
