package handler

import (
	"errors"
	"net/http"

	"jira_assistant/internal/model"
	"jira_assistant/internal/service/llm"

	"github.com/gin-gonic/gin"
)

// Generate forwards a prompt to the generation gateway
func (h *Handler) Generate(c *gin.Context) {
	if h.llm == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "generation gateway not initialized properly"})
		return
	}

	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	text, err := h.llm.Generate(c.Request.Context(), req.Prompt, req.Provider, req.Parameters)
	if err != nil {
		h.renderGenerateError(c, err)
		return
	}

	usedProvider := req.Provider
	if usedProvider == "" {
		usedProvider = h.llm.DefaultProvider()
	}

	c.JSON(http.StatusOK, model.GenerateResponse{
		Text:     text,
		Provider: usedProvider,
		Metadata: map[string]string{"source": "jira_assistant_api"},
	})
}

func (h *Handler) renderGenerateError(c *gin.Context, err error) {
	var unsupportedErr *llm.UnsupportedProviderError
	var unconfiguredErr *llm.UnconfiguredProviderError
	if errors.As(err, &unsupportedErr) || errors.As(err, &unconfiguredErr) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
