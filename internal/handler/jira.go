package handler

import (
	"context"
	"errors"
	"net/http"

	"jira_assistant/internal/jira"
	"jira_assistant/internal/model"

	"github.com/gin-gonic/gin"
)

type fetchFunc func(ctx context.Context, f jira.Filter, fields []string) ([]model.JiraIssue, error)

// GetEpics returns epics matching the query filters
func (h *Handler) GetEpics(c *gin.Context) {
	h.getIssues(c, h.jira.GetEpics)
}

// GetStories returns stories matching the query filters
func (h *Handler) GetStories(c *gin.Context) {
	h.getIssues(c, h.jira.GetStories)
}

// GetTasks returns tasks and sub-tasks matching the query filters
func (h *Handler) GetTasks(c *gin.Context) {
	h.getIssues(c, h.jira.GetTasks)
}

func (h *Handler) getIssues(c *gin.Context, fetch fetchFunc) {
	filter := jira.Filter{
		ProjectKey: c.Query("project"),
		Labels:     c.QueryArray("labels"),
		Assignee:   c.Query("assignee"),
		Status:     c.Query("status"),
	}

	issues, err := fetch(c.Request.Context(), filter, nil)
	if err != nil {
		h.renderJiraError(c, err)
		return
	}

	summaries := make([]model.IssueSummary, 0, len(issues))
	for _, issue := range issues {
		summaries = append(summaries, model.NewIssueSummary(issue))
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) renderJiraError(c *gin.Context, err error) {
	var validationErr *jira.FilterValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": validationErr.Error()})
		return
	}
	var transportErr *jira.TransportError
	if errors.As(err, &transportErr) {
		c.JSON(http.StatusBadGateway, gin.H{"detail": transportErr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
