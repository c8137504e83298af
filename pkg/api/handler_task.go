package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/llimit/gateway/pkg/events"
	"github.com/llimit/gateway/pkg/queue"
)

// createTaskHandler handles POST /task: persist the task, announce it,
// and queue decomposition. The response is 202; progress arrives over
// the event stream.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	t, err := s.tasks.CreateTask(c.Request.Context(), userID(c), req.Prompt)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	s.bus.Emit(userID(c), events.TaskCreated(t.ID))
	s.queue.Enqueue(queue.Decompose(t.ID, userID(c), openRouterKey(c)))

	c.JSON(http.StatusAccepted, toTaskResponse(t))
}

// listTasksHandler handles GET /task.
func (s *Server) listTasksHandler(c *gin.Context) {
	tasks, err := s.tasks.ListTasks(c.Request.Context(), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	c.JSON(http.StatusOK, out)
}

// getTaskHandler handles GET /task/:id, including the accumulated
// cost.
func (s *Server) getTaskHandler(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	total, err := s.tasks.TotalCost(c.Request.Context(), t.ID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp := toTaskResponse(t)
	resp.TotalCost = &total
	c.JSON(http.StatusOK, resp)
}

// getTaskStepsHandler handles GET /task/:id/steps. Abandoned steps are
// excluded unless include_abandoned=true.
func (s *Server) getTaskStepsHandler(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	includeAbandoned, _ := strconv.ParseBool(c.Query("include_abandoned"))
	steps, err := s.tasks.GetSteps(c.Request.Context(), t.ID, includeAbandoned)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": toStepResponses(steps)})
}
