package handlers

import (
	"errors"
	"net/http"

	"article-hub/middleware"
	"article-hub/models"
	"article-hub/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArticleHandler struct {
	articleService services.ArticleService
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	article, err := h.articleService.CreateArticle(userID, req)
	if err != nil {
		h.sendError(c, err, "Failed to create article")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "article": article})
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	articles, err := h.articleService.GetArticles(c.Request.Context(), userID, params)
	if err != nil {
		h.sendError(c, err, "Failed to load articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "articles": articles})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid article ID"})
		return
	}

	article, err := h.articleService.GetArticle(id, userID)
	if err != nil {
		h.sendError(c, err, "Failed to load article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "article": article})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid article ID"})
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.articleService.UpdateArticle(id, userID, req); err != nil {
		h.sendError(c, err, "Failed to update article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ArticleHandler) UpdateSummary(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid article ID"})
		return
	}

	var req models.UpdateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.articleService.UpdateSummary(id, userID, req.Summary); err != nil {
		h.sendError(c, err, "Failed to update article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	userID := middleware.ContextUserID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid article ID"})
		return
	}

	if err := h.articleService.DeleteArticle(id, userID); err != nil {
		h.sendError(c, err, "Failed to delete article")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ArticleHandler) sendError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not authenticated"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Article not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
	}
}
