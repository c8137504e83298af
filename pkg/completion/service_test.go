package completion

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/llm"
)

type fakeStreamer struct {
	chunks []llm.Chunk
	err    error
}

func (f *fakeStreamer) Stream(ctx context.Context, apiKey, model string, messages []llm.Message, requested map[string]string, temperature float64, cfg *llm.Config) (<-chan llm.Chunk, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(chan llm.Chunk, len(f.chunks))
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	return out, nil
}

func collect(t *testing.T, seq <-chan events.Event) []events.Event {
	t.Helper()
	var got []events.Event
	timeout := time.After(time.Second)
	for {
		select {
		case e, ok := <-seq:
			if !ok {
				return got
			}
			got = append(got, e)
		case <-timeout:
			t.Fatal("event sequence not closed before timeout")
		}
	}
}

func TestStartStreamsEventSequence(t *testing.T) {
	key := "title"
	streamer := &fakeStreamer{chunks: []llm.Chunk{
		llm.ContentChunk("Hello "),
		llm.ContentChunk("world"),
		{Content: "My Title", AdditionalDataKey: &key},
	}}
	svc := NewService(streamer, events.NewBus())

	completionID, seq, err := svc.Start(context.Background(), "or-key", "u1",
		"openai/gpt-4o", []llm.Message{llm.UserMessage("hi")}, nil, 0.7, nil)
	require.NoError(t, err)
	require.NotEmpty(t, completionID)

	got := collect(t, seq)
	require.Len(t, got, 5)

	assert.Equal(t, events.EventTypeCompletionStarted, got[0].Type)
	assert.Equal(t, "openai/gpt-4o", got[0].Content["model"])
	assert.Equal(t, completionID, got[0].Content["completion_id"])

	assert.Equal(t, events.EventTypeCompletionChunk, got[1].Type)
	assert.Equal(t, "Hello ", got[1].Content["content"])
	_, tagged := got[1].Content["additional_data_key"]
	assert.False(t, tagged)

	assert.Equal(t, "My Title", got[3].Content["content"])
	assert.Equal(t, "title", got[3].Content["additional_data_key"])

	assert.Equal(t, events.EventTypeCompletionFinished, got[4].Type)
	_, failed := got[4].Content["error"]
	assert.False(t, failed)
}

func TestStartEmitsOnUserBus(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.Chunk{llm.ContentChunk("hi")}}
	bus := events.NewBus()
	svc := NewService(streamer, bus)

	conn := bus.Register("u1", events.Filter{})
	defer bus.Unregister(conn)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	e, ok := conn.Receive(ctx)
	require.True(t, ok)
	require.Equal(t, events.EventTypeConnectionEstablished, e.Type)

	_, seq, err := svc.Start(context.Background(), "or-key", "u1",
		"openai/gpt-4o", []llm.Message{llm.UserMessage("hi")}, nil, 0.7, nil)
	require.NoError(t, err)
	collect(t, seq)

	var busTypes []string
	for i := 0; i < 3; i++ {
		e, ok := conn.Receive(ctx)
		require.True(t, ok)
		busTypes = append(busTypes, e.Type)
	}
	assert.Equal(t, []string{
		events.EventTypeCompletionStarted,
		events.EventTypeCompletionChunk,
		events.EventTypeCompletionFinished,
	}, busTypes)
}

func TestStartSurfacesStreamFailure(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.Chunk{
		llm.ContentChunk("partial"),
		{Err: fmt.Errorf("upstream reset")},
	}}
	svc := NewService(streamer, events.NewBus())

	_, seq, err := svc.Start(context.Background(), "or-key", "u1",
		"openai/gpt-4o", []llm.Message{llm.UserMessage("hi")}, nil, 0.7, nil)
	require.NoError(t, err)

	got := collect(t, seq)
	require.Len(t, got, 3)
	last := got[len(got)-1]
	assert.Equal(t, events.EventTypeCompletionFinished, last.Type)
	assert.Equal(t, "upstream reset", last.Content["error"])
}

func TestStartErrorMeansNothingEmitted(t *testing.T) {
	streamer := &fakeStreamer{err: fmt.Errorf("bad model")}
	bus := events.NewBus()
	svc := NewService(streamer, bus)

	conn := bus.Register("u1", events.Filter{})
	defer bus.Unregister(conn)

	_, seq, err := svc.Start(context.Background(), "or-key", "u1",
		"bad/model", []llm.Message{llm.UserMessage("hi")}, nil, 0.7, nil)
	require.Error(t, err)
	assert.Nil(t, seq)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	e, ok := conn.Receive(ctx)
	require.True(t, ok)
	assert.Equal(t, events.EventTypeConnectionEstablished, e.Type)
	_, ok = conn.Receive(ctx)
	assert.False(t, ok, "no completion events after a failed start")
}

func TestStartAbandonsOnCallerCancel(t *testing.T) {
	streamer := &fakeStreamer{chunks: []llm.Chunk{
		llm.ContentChunk("one"),
		llm.ContentChunk("two"),
		llm.ContentChunk("three"),
	}}
	svc := NewService(streamer, events.NewBus())

	ctx, cancel := context.WithCancel(context.Background())
	_, seq, err := svc.Start(ctx, "or-key", "u1",
		"openai/gpt-4o", []llm.Message{llm.UserMessage("hi")}, nil, 0.7, nil)
	require.NoError(t, err)

	// Read the first event, then walk away.
	<-seq
	cancel()

	select {
	case _, ok := <-seq:
		for ok {
			_, ok = <-seq
		}
	case <-time.After(time.Second):
		t.Fatal("sequence channel never closed after cancel")
	}
}
