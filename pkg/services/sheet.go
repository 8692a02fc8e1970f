package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gdocs-cms/pkg/models"
)

// Column layout of the blog sheet, schema v1. The order below is the wire
// format: reordering sheet columns is a schema change, not a cosmetic edit.
const (
	colSlug = iota // A
	colDocID
	colTitle
	colDescription
	colKeywords
	colStatus
	colTags
	colOGImage
	colAuthor
	colPublishedAt
	colModifiedAt
	colLanguage
	colReadingTime
	colPublisherName
	colPublisherLogo // O

	columnCount = 15
)

// RangeReader fetches a tabular range from a spreadsheet.
type RangeReader interface {
	Read(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}

// SheetRepo maps spreadsheet rows to article metadata.
type SheetRepo struct {
	Reader            RangeReader
	SpreadsheetID     string
	ReadRange         string
	PublisherFallback string
}

// ListArticles fetches the sheet and returns the eligible rows in sheet
// order. Sheet order is the canonical ordering for listings, related-content
// adjacency and the sitemap.
func (r *SheetRepo) ListArticles(ctx context.Context) ([]models.ArticleMetadata, error) {
	if r.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: missing spreadsheet id", ErrNotConfigured)
	}

	rows, err := r.Reader.Read(ctx, r.SpreadsheetID, r.ReadRange)
	if err != nil {
		return nil, fmt.Errorf("read sheet range %s: %w", r.ReadRange, err)
	}

	articles := make([]models.ArticleMetadata, 0, len(rows))
	for _, row := range rows {
		meta := r.decodeRow(row)
		if !eligible(meta) {
			continue
		}
		articles = append(articles, meta)
	}
	return articles, nil
}

// ArticleExists reports whether a published row with the slug exists. Any
// underlying failure counts as "does not exist" so an existence check can
// never crash a page render.
func (r *SheetRepo) ArticleExists(ctx context.Context, slug string) bool {
	if !IsValidSlug(slug) {
		return false
	}
	articles, err := r.ListArticles(ctx)
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

var tagSeparators = regexp.MustCompile(`[,;\s]+`)

func (r *SheetRepo) decodeRow(row []any) models.ArticleMetadata {
	title := cell(row, colTitle)
	description := cell(row, colDescription)
	ogImage := cell(row, colOGImage)

	status := cell(row, colStatus)
	if status == "" {
		status = "draft"
	}

	published := cell(row, colPublishedAt)
	modified := cell(row, colModifiedAt)
	if modified == "" {
		modified = published
	}

	language := cell(row, colLanguage)
	if language == "" {
		language = "en"
	}

	publisher := cell(row, colPublisherName)
	if publisher == "" {
		publisher = r.PublisherFallback
	}

	readingTime := 0
	if raw := cell(row, colReadingTime); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			readingTime = n
		}
	}

	return models.ArticleMetadata{
		Slug:        cell(row, colSlug),
		DocID:       cell(row, colDocID),
		Title:       title,
		Description: description,
		Keywords:    cell(row, colKeywords),
		Status:      status,

		OGTitle:       title,
		OGDescription: description,
		OGImage:       ogImage,
		OGImageAlt:    title,

		TwitterTitle:       title,
		TwitterDescription: description,
		TwitterImage:       ogImage,
		TwitterCard:        "summary_large_image",

		Author:      cell(row, colAuthor),
		PublishedAt: published,
		ModifiedAt:  modified,

		Tags:               splitTags(cell(row, colTags)),
		Language:           language,
		ReadingTimeMinutes: readingTime,
		PublisherName:      publisher,
		PublisherLogo:      cell(row, colPublisherLogo),
	}
}

// eligible is the publication invariant: published status, the identifying
// fields present, and a slug that passes validation.
func eligible(meta models.ArticleMetadata) bool {
	return meta.Status == "published" &&
		meta.Slug != "" &&
		meta.Title != "" &&
		meta.DocID != "" &&
		IsValidSlug(meta.Slug)
}

// cell reads one column, treating short rows and nil cells as empty strings.
func cell(row []any, index int) string {
	if index >= len(row) || row[index] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[index]))
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range tagSeparators.Split(raw, -1) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
