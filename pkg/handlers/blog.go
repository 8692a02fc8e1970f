package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gdocs-cms/pkg/services"
)

// BlogHandler serves the published listing and rendered article pages.
type BlogHandler struct {
	CMS *services.CMS
}

func (h *BlogHandler) List(c *gin.Context) {
	articles, err := h.CMS.ListArticles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *BlogHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.CMS.GetRenderedArticle(c.Request.Context(), slug)
	switch {
	case errors.Is(err, services.ErrInvalidSlug), errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render article"})
	default:
		c.JSON(http.StatusOK, page)
	}
}

// Exists answers HEAD-style existence checks without rendering.
func (h *BlogHandler) Exists(c *gin.Context) {
	slug := c.Param("slug")
	if h.CMS.ArticleExists(c.Request.Context(), slug) {
		c.Status(http.StatusOK)
		return
	}
	c.Status(http.StatusNotFound)
}
