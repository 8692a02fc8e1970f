package models

// ArticleMetadata is one row of the blog sheet, normalized and trimmed.
// og*/twitter* fields without a dedicated column are copies of title,
// description and ogImage.
type ArticleMetadata struct {
	Slug        string `json:"slug"`
	DocID       string `json:"docId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Status      string `json:"status"` // "draft" or "published"

	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
	OGImage       string `json:"ogImage,omitempty"`
	OGImageAlt    string `json:"ogImageAlt,omitempty"`
	CanonicalURL  string `json:"canonicalUrl,omitempty"`

	TwitterTitle       string `json:"twitterTitle,omitempty"`
	TwitterDescription string `json:"twitterDescription,omitempty"`
	TwitterImage       string `json:"twitterImage,omitempty"`
	TwitterCard        string `json:"twitterCard,omitempty"`
	TwitterHandle      string `json:"twitterHandle,omitempty"`

	Author      string `json:"author,omitempty"`
	AuthorURL   string `json:"authorUrl,omitempty"`
	AuthorImage string `json:"authorImage,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	ModifiedAt  string `json:"modifiedAt,omitempty"`

	Tags               []string `json:"tags,omitempty"`
	Language           string   `json:"language,omitempty"`
	ReadingTimeMinutes int      `json:"readingTimeMinutes,omitempty"`
	PublisherName      string   `json:"publisherName,omitempty"`
	PublisherLogo      string   `json:"publisherLogo,omitempty"`
}

// HeadingItem is one entry of a rendered article's outline.
type HeadingItem struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// RenderedArticle is the full payload served for one article page.
type RenderedArticle struct {
	HTML     string            `json:"html"`
	Metadata ArticleMetadata   `json:"metadata"`
	Headings []HeadingItem     `json:"headings"`
	Related  []ArticleMetadata `json:"related"`
}

// RevalidateRequest is the webhook body sent by the spreadsheet trigger.
type RevalidateRequest struct {
	Slug   string `json:"slug"`
	Secret string `json:"secret"`
}
