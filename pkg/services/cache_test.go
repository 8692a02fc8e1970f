package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdocs-cms/pkg/models"
)

func TestPageCache_PagesAndList(t *testing.T) {
	cache := NewPageCache()

	_, ok := cache.GetPage("alpha")
	assert.False(t, ok)
	_, ok = cache.GetList()
	assert.False(t, ok)

	cache.PutPage("alpha", &models.RenderedArticle{HTML: "<p>a</p>"})
	cache.PutList(metaList("alpha", "beta"))

	page, ok := cache.GetPage("alpha")
	require.True(t, ok)
	assert.Equal(t, "<p>a</p>", page.HTML)

	list, ok := cache.GetList()
	require.True(t, ok)
	assert.Len(t, list, 2)

	// An empty cached list still counts as loaded.
	cache.PutList(nil)
	list, ok = cache.GetList()
	assert.True(t, ok)
	assert.Empty(t, list)
}

func TestPageCache_Invalidate(t *testing.T) {
	cache := NewPageCache()
	cache.PutPage("alpha", &models.RenderedArticle{})
	cache.PutPage("beta", &models.RenderedArticle{})
	cache.PutList(metaList("alpha", "beta"))

	cache.Invalidate("alpha")

	_, ok := cache.GetPage("alpha")
	assert.False(t, ok)
	// Other pages survive a single-slug invalidation; the listing does not.
	_, ok = cache.GetPage("beta")
	assert.True(t, ok)
	_, ok = cache.GetList()
	assert.False(t, ok)
}

func TestPageCache_InvalidateAll(t *testing.T) {
	cache := NewPageCache()
	cache.PutPage("alpha", &models.RenderedArticle{})
	cache.PutPage("beta", &models.RenderedArticle{})
	cache.PutList(metaList("alpha", "beta"))

	cache.InvalidateAll()

	_, ok := cache.GetPage("alpha")
	assert.False(t, ok)
	_, ok = cache.GetPage("beta")
	assert.False(t, ok)
	_, ok = cache.GetList()
	assert.False(t, ok)
}
