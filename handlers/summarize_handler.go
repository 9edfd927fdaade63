package handlers

import (
	"errors"
	"net/http"

	"article-hub/models"
	"article-hub/openrouter"
	"article-hub/services"

	"github.com/gin-gonic/gin"
)

// SummarizeHandler proxies a single message to the completion backend
// and serves article summarization.
type SummarizeHandler struct {
	ai        openrouter.Completer
	summaries services.SummaryService
}

func NewSummarizeHandler(ai openrouter.Completer, summaries services.SummaryService) *SummarizeHandler {
	return &SummarizeHandler{ai: ai, summaries: summaries}
}

func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req models.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message"})
		return
	}

	res, err := h.ai.Complete(c.Request.Context(), req.Message)
	if err != nil {
		var exhausted *openrouter.ModelsExhaustedError
		if errors.As(err, &exhausted) {
			var detail interface{}
			if exhausted.LastErr != "" {
				detail = exhausted.LastErr
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "All models failed", "detail": detail})
			return
		}
		if errors.Is(err, openrouter.ErrInvalidMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": res.Reply, "modelUsed": res.ModelUsed})
}

// SummarizeArticle produces a summary for raw article text. The live
// strategy truncates; the AI strategy is enabled by configuration.
func (h *SummarizeHandler) SummarizeArticle(c *gin.Context) {
	var req models.SummarizeArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article"})
		return
	}

	res, err := h.summaries.Summarize(c.Request.Context(), req.Article)
	if err != nil {
		if errors.Is(err, models.ErrInvalidArticle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article"})
			return
		}
		var exhausted *openrouter.ModelsExhaustedError
		if errors.As(err, &exhausted) {
			var detail interface{}
			if exhausted.LastErr != "" {
				detail = exhausted.LastErr
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "All models failed", "detail": detail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reply": res.Reply, "modelUsed": res.ModelUsed})
}
