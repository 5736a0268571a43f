package handler

import (
	"net/http"

	"jira_assistant/internal/jira"
	"jira_assistant/internal/logger"
	"jira_assistant/internal/service/llm"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Jira Assistant API"
	serviceVersion = "0.1.0"
)

// Handler holds the clients backing the HTTP API. The llm client may be
// nil when no generation backend initialized; generation endpoints then
// report 503 while issue search keeps working.
type Handler struct {
	jira *jira.Client
	llm  *llm.Client
}

// New creates a Handler around the given clients.
func New(jiraClient *jira.Client, llmClient *llm.Client) *Handler {
	return &Handler{
		jira: jiraClient,
		llm:  llmClient,
	}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.GinLogMiddleware())

	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	v1 := r.Group("/api/v1")
	{
		jiraGroup := v1.Group("/jira")
		jiraGroup.GET("/epics", h.GetEpics)
		jiraGroup.GET("/stories", h.GetStories)
		jiraGroup.GET("/tasks", h.GetTasks)

		v1.POST("/generate", h.Generate)
	}

	return r
}

// Root returns service identity information
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"version": serviceVersion,
		"status":  "operational",
	})
}

// Health reports readiness. The service is ready only when at least one
// generation backend initialized.
func (h *Handler) Health(c *gin.Context) {
	if h.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "generation gateway not initialized properly"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
