package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdocs-cms/pkg/models"
	"gdocs-cms/pkg/services"
)

const testSecret = "webhook-secret"

func revalidateRouter(pages *services.PageCache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &RevalidateHandler{Secret: testSecret, Pages: pages}
	r := gin.New()
	r.GET("/api/revalidate", h.Status)
	r.POST("/api/revalidate", h.Revalidate)
	return r
}

func postRevalidate(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/revalidate", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRevalidate_Success(t *testing.T) {
	pages := services.NewPageCache()
	pages.PutPage("my-article", &models.RenderedArticle{})
	r := revalidateRouter(pages)

	slug := "/blogs/my-article"
	w := postRevalidate(t, r, models.RevalidateRequest{
		Slug:   slug,
		Secret: services.SignPath(testSecret, slug),
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success     bool   `json:"success"`
		Revalidated bool   `json:"revalidated"`
		Path        string `json:"path"`
		ParentPath  string `json:"parentPath"`
		Now         int64  `json:"now"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Revalidated)
	assert.Equal(t, "/blogs/my-article", resp.Path)
	assert.Equal(t, "/blogs", resp.ParentPath)
	assert.Greater(t, resp.Now, int64(0))

	_, ok := pages.GetPage("my-article")
	assert.False(t, ok, "cached page should be invalidated")
}

func TestRevalidate_NormalizesLeadingSlash(t *testing.T) {
	r := revalidateRouter(services.NewPageCache())

	// The digest covers the slug exactly as sent; normalization happens after.
	slug := "blogs/my-article"
	w := postRevalidate(t, r, models.RevalidateRequest{
		Slug:   slug,
		Secret: services.SignPath(testSecret, slug),
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"path":"/blogs/my-article"`)
}

func TestRevalidate_MissingParameters(t *testing.T) {
	r := revalidateRouter(services.NewPageCache())

	for _, body := range []any{
		map[string]string{},
		map[string]string{"slug": "/blogs/my-article"},
		map[string]string{"secret": "deadbeef"},
	} {
		w := postRevalidate(t, r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required parameter")
	}
}

func TestRevalidate_InvalidSecret(t *testing.T) {
	pages := services.NewPageCache()
	pages.PutPage("my-article", &models.RenderedArticle{})
	r := revalidateRouter(pages)

	w := postRevalidate(t, r, models.RevalidateRequest{
		Slug:   "/blogs/my-article",
		Secret: services.SignPath("wrong-secret", "/blogs/my-article"),
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid secret")

	_, ok := pages.GetPage("my-article")
	assert.True(t, ok, "cache must be untouched on auth failure")
}

func TestRevalidate_InvalidSlugFormat(t *testing.T) {
	r := revalidateRouter(services.NewPageCache())

	// Correctly signed, but the path fails validation after normalization.
	slug := "/blogs/bad article!"
	w := postRevalidate(t, r, models.RevalidateRequest{
		Slug:   slug,
		Secret: services.SignPath(testSecret, slug),
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid slug format")
}

func TestRevalidate_StatusProbe(t *testing.T) {
	r := revalidateRouter(services.NewPageCache())

	req := httptest.NewRequest(http.MethodGet, "/api/revalidate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "API Endpoint Is Running Smoothly")
}
