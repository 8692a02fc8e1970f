package services

import (
	"sync"

	"gdocs-cms/pkg/models"
)

// PageCache keeps rendered pages and the published listing between webhook
// invalidations. A page is only stored after a complete successful render,
// so an aborted render never becomes a cached page.
type PageCache struct {
	mu         sync.Mutex
	pages      map[string]*models.RenderedArticle
	list       []models.ArticleMetadata
	listLoaded bool
}

func NewPageCache() *PageCache {
	return &PageCache{pages: make(map[string]*models.RenderedArticle)}
}

func (c *PageCache) GetPage(slug string) (*models.RenderedArticle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.pages[slug]
	return page, ok
}

func (c *PageCache) PutPage(slug string, page *models.RenderedArticle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[slug] = page
}

func (c *PageCache) GetList() ([]models.ArticleMetadata, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.listLoaded {
		return nil, false
	}
	return c.list, true
}

func (c *PageCache) PutList(list []models.ArticleMetadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = list
	c.listLoaded = true
}

// Invalidate drops one rendered page along with the listing, since the
// listing may now include, exclude or reorder the article.
func (c *PageCache) Invalidate(slug string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pages, slug)
	c.list = nil
	c.listLoaded = false
}

// InvalidateAll clears every cached page and the listing. Used for tag-wide
// invalidation, where any page under the tag may be stale.
func (c *PageCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[string]*models.RenderedArticle)
	c.list = nil
	c.listLoaded = false
}
