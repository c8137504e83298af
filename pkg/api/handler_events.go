package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/events"
)

// setSSEHeaders prepares the response for server-sent events.
func setSSEHeaders(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeaderNow()
}

// writeSSEEvent writes one data frame and flushes it.
func writeSSEEvent(c *gin.Context, e events.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", payload); err != nil {
		return err
	}
	c.Writer.Flush()
	return nil
}

// eventFilter builds the subscription filter from the query string.
// event_types restricts types; every other parameter is a metadata
// filter. Repeated or comma-separated values OR within a key; distinct
// keys AND.
func eventFilter(c *gin.Context) events.Filter {
	filter := events.Filter{Metadata: map[string][]string{}}
	for key, values := range c.Request.URL.Query() {
		var split []string
		for _, v := range values {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					split = append(split, part)
				}
			}
		}
		if len(split) == 0 {
			continue
		}
		if key == "event_types" {
			filter.EventTypes = split
			continue
		}
		filter.Metadata[key] = split
	}
	return filter
}

// eventsHandler handles GET /sse/events: a long-lived SSE subscription
// to the authenticated user's events. The first frame is always
// connection.established.
func (s *Server) eventsHandler(c *gin.Context) {
	conn := s.bus.Register(userID(c), eventFilter(c))
	defer s.bus.Unregister(conn)

	setSSEHeaders(c)

	ctx := c.Request.Context()
	for {
		e, ok := conn.Receive(ctx)
		if !ok {
			return
		}
		if err := writeSSEEvent(c, e); err != nil {
			return
		}
	}
}
