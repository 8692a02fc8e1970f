package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gdocs-cms/pkg/models"
	"gdocs-cms/pkg/services"
)

// RevalidateHandler serves the publish/unpublish webhook called by the
// spreadsheet trigger.
type RevalidateHandler struct {
	Secret string
	Pages  *services.PageCache
	Logger *slog.Logger
}

// Revalidate authenticates the request and invalidates the cached detail
// page, its parent listing and the top-level tag. The digest is verified
// over the slug exactly as sent; leading-slash normalization happens after
// authentication, matching the signer.
func (h *RevalidateHandler) Revalidate(c *gin.Context) {
	var req models.RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Slug == "" || req.Secret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required parameter"})
		return
	}

	if !services.VerifyPath(h.Secret, req.Slug, req.Secret) {
		if h.Logger != nil {
			h.Logger.Warn("webhook digest mismatch", "slug", req.Slug, "request_id", c.GetString(CtxRequestIDKey))
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid secret"})
		return
	}

	path := req.Slug
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if !services.IsValidPath(path) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid slug format", "slug": path})
		return
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid path structure"})
		return
	}
	parentPath := "/" + segments[0]

	// Publishing or unpublishing shifts sheet order, so the related blocks
	// of neighboring pages go stale too: sweep the whole tag, which also
	// covers the detail page and the parent listing.
	h.Pages.InvalidateAll()

	if h.Logger != nil {
		h.Logger.Info("revalidated", "path", path, "parentPath", parentPath, "request_id", c.GetString(CtxRequestIDKey))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"revalidated": true,
		"path":        path,
		"parentPath":  parentPath,
		"now":         time.Now().UnixMilli(),
	})
}

// Status is the GET probe for the webhook endpoint.
func (h *RevalidateHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API Endpoint Is Running Smoothly"})
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
