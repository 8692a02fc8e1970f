package services

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/docs/v1"

	"gdocs-cms/pkg/models"
)

// DocumentFetcher fetches one document tree by id.
type DocumentFetcher interface {
	Fetch(ctx context.Context, docID string) (*docs.Document, error)
}

// CMS composes the sheet adapter, document converter, heading extractor and
// related selector into the publication pipeline, fronted by the page cache.
type CMS struct {
	Sheets  *SheetRepo
	Docs    DocumentFetcher
	Pages   *PageCache
	Related int
	BaseURL string
	Section string
	Logger  *slog.Logger
}

// ListArticles is the read-through listing: the cached published list when
// present, otherwise one sheet fetch.
func (c *CMS) ListArticles(ctx context.Context) ([]models.ArticleMetadata, error) {
	if list, ok := c.Pages.GetList(); ok {
		return list, nil
	}
	list, err := c.Sheets.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	c.Pages.PutList(list)
	return list, nil
}

// ArticleExists mirrors the sheet adapter's existence check through the
// listing cache. Failures collapse to false.
func (c *CMS) ArticleExists(ctx context.Context, slug string) bool {
	if !IsValidSlug(slug) {
		return false
	}
	articles, err := c.ListArticles(ctx)
	if err != nil {
		return false
	}
	for i := range articles {
		if articles[i].Slug == slug {
			return true
		}
	}
	return false
}

// GetRenderedArticle renders one article: metadata lookup, document
// conversion, heading extraction, related selection. The article list is
// fetched once and reused for both the lookup and the related block.
func (c *CMS) GetRenderedArticle(ctx context.Context, slug string) (*models.RenderedArticle, error) {
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	if page, ok := c.Pages.GetPage(slug); ok {
		return page, nil
	}

	articles, err := c.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	var meta *models.ArticleMetadata
	for i := range articles {
		if articles[i].Slug == slug {
			meta = &articles[i]
			break
		}
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if meta.DocID == "" {
		return nil, fmt.Errorf("%w: %s has no document", ErrNotFound, slug)
	}

	doc, err := c.Docs.Fetch(ctx, meta.DocID)
	if err != nil {
		return nil, fmt.Errorf("fetch document %s for %s: %w", meta.DocID, slug, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document %s", ErrConversion, meta.DocID)
	}

	html, headings := ExtractHeadings(RenderDocument(doc))
	related := SelectRelated(articles, slug, c.Related)

	metadata := *meta
	if metadata.CanonicalURL == "" {
		metadata.CanonicalURL = c.BaseURL + "/" + c.Section + "/" + slug
	}

	page := &models.RenderedArticle{
		HTML:     html,
		Metadata: metadata,
		Headings: headings,
		Related:  related,
	}
	c.Pages.PutPage(slug, page)

	if c.Logger != nil {
		c.Logger.Info("rendered article", "slug", slug, "headings", len(headings), "related", len(related))
	}
	return page, nil
}
