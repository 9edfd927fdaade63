package handlers

import (
	"errors"
	"net/http"

	"article-hub/middleware"
	"article-hub/models"
	"article-hub/services"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// GetTags returns the caller's distinct article tags as {value, label}
// pairs for a select input.
func (h *TagHandler) GetTags(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	options, err := h.tagService.GetTagOptions(userID)
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tags": options})
}
