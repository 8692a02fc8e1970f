package services

import (
	"encoding/xml"
	"time"

	"github.com/araddon/dateparse"

	"gdocs-cms/pkg/models"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap renders the sitemap XML for the published listing. Publish
// dates are free-form spreadsheet strings; unparseable dates drop the
// lastmod element rather than emitting garbage.
func BuildSitemap(articles []models.ArticleMetadata, baseURL, section string) ([]byte, error) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for i := range articles {
		entry := sitemapURL{Loc: baseURL + "/" + section + "/" + articles[i].Slug}
		if raw := articles[i].PublishedAt; raw != "" {
			if t, err := dateparse.ParseAny(raw); err == nil {
				entry.LastMod = t.UTC().Format(time.RFC3339)
			}
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.Marshal(set)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
