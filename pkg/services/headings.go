package services

import (
	"regexp"
	"strings"

	"gdocs-cms/pkg/models"
)

var (
	headingPattern = regexp.MustCompile(`(?i)<(h[1-6])>(.*?)</(h[1-6])>`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	anchorPattern  = regexp.MustCompile(`[^a-z0-9]+`)
)

// ExtractHeadings scans converter output for h1-h6 tags, derives the outline,
// and injects an anchor id and scroll-margin class into each heading. The
// rewrite splices by match offset, so byte-identical headings each get an id
// attribute in place; their ids still collide because ids derive from text
// alone. Run once per render: attribute-carrying tags no longer match.
func ExtractHeadings(html string) (string, []models.HeadingItem) {
	matches := headingPattern.FindAllStringSubmatchIndex(html, -1)
	if len(matches) == 0 {
		return html, nil
	}

	var (
		headings  []models.HeadingItem
		rewritten strings.Builder
		last      int
	)

	for _, m := range matches {
		opening := strings.ToLower(html[m[2]:m[3]])
		closing := strings.ToLower(html[m[6]:m[7]])
		if opening != closing {
			continue
		}

		inner := html[m[4]:m[5]]
		text := tagPattern.ReplaceAllString(inner, "")
		level := int(opening[1] - '0')
		id := anchorID(text)

		headings = append(headings, models.HeadingItem{ID: id, Text: text, Level: level})

		rewritten.WriteString(html[last:m[0]])
		rewritten.WriteString("<" + opening + ` id="` + id + `" class="scroll-mt-24">`)
		rewritten.WriteString(inner)
		rewritten.WriteString("</" + opening + ">")
		last = m[1]
	}
	rewritten.WriteString(html[last:])

	return rewritten.String(), headings
}

// anchorID lowercases the text, collapses runs of non-alphanumerics into a
// single hyphen and strips hyphens from both ends.
func anchorID(text string) string {
	id := anchorPattern.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(id, "-")
}
