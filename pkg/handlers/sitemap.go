package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdocs-cms/pkg/services"
)

// SitemapHandler serves the XML feed of published articles.
type SitemapHandler struct {
	CMS *services.CMS
}

func (h *SitemapHandler) Feed(c *gin.Context) {
	articles, err := h.CMS.ListArticles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}

	body, err := services.BuildSitemap(articles, h.CMS.BaseURL, h.CMS.Section)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sitemap"})
		return
	}

	c.Data(http.StatusOK, "application/xml", body)
}
