package services

import (
	"regexp"
	"strings"

	"google.golang.org/api/docs/v1"
)

var imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|bmp|svg)$`)

var headingTags = map[string]string{
	"TITLE":     "h1",
	"SUBTITLE":  "h2",
	"HEADING_1": "h1",
	"HEADING_2": "h2",
	"HEADING_3": "h3",
	"HEADING_4": "h4",
	"HEADING_5": "h5",
	"HEADING_6": "h6",
}

// renderState carries the converter's accumulation state through the walk:
// the markup emitted so far plus any list items waiting for a non-bullet
// block to close them.
type renderState struct {
	out       strings.Builder
	listItems []string
	listOpen  bool
}

func (s *renderState) flushList() {
	if !s.listOpen {
		return
	}
	s.out.WriteString("<ul>")
	for _, item := range s.listItems {
		s.out.WriteString(item)
	}
	s.out.WriteString("</ul>")
	s.listItems = s.listItems[:0]
	s.listOpen = false
}

// RenderDocument converts a Docs document tree into an HTML string. Malformed
// or missing style fields degrade to plain paragraphs; a bad block never
// fails the whole document.
func RenderDocument(doc *docs.Document) string {
	var state renderState

	var content []*docs.StructuralElement
	var inline map[string]docs.InlineObject
	if doc != nil {
		inline = doc.InlineObjects
		if doc.Body != nil {
			content = doc.Body.Content
		}
	}

	for _, elem := range content {
		if elem == nil || elem.Paragraph == nil {
			continue
		}
		paragraph := elem.Paragraph
		text := renderRuns(paragraph.Elements)

		// Bulleted blocks accumulate; emission waits for the first
		// non-bullet block. All bullets render as a flat <ul> regardless
		// of nesting level, matching how the source documents are written.
		if paragraph.Bullet != nil {
			if !state.listOpen {
				state.listOpen = true
			}
			state.listItems = append(state.listItems, "<li>"+text+"</li>")
			continue
		}

		state.flushList()

		tag := "p"
		if paragraph.ParagraphStyle != nil {
			if mapped, ok := headingTags[paragraph.ParagraphStyle.NamedStyleType]; ok {
				tag = mapped
			}
		}
		state.out.WriteString("<" + tag + ">" + text + "</" + tag + ">")

		// Embedded images follow their block as standalone <img> tags,
		// resolved through the document's inline-object table.
		for _, pe := range paragraph.Elements {
			if pe == nil || pe.InlineObjectElement == nil {
				continue
			}
			obj, ok := inline[pe.InlineObjectElement.InlineObjectId]
			if !ok {
				continue
			}
			if src := embeddedImageURI(obj); src != "" {
				state.out.WriteString(`<img src="` + src + `" alt="Article image" loading="lazy" />`)
			}
		}
	}

	state.flushList()

	return `<div class="prose max-w-none">` + state.out.String() + `</div>`
}

func renderRuns(elements []*docs.ParagraphElement) string {
	var b strings.Builder
	for _, elem := range elements {
		if elem == nil || elem.TextRun == nil {
			continue
		}
		b.WriteString(renderRun(elem.TextRun))
	}
	return b.String()
}

func renderRun(run *docs.TextRun) string {
	content := strings.ReplaceAll(run.Content, "\n", "")

	style := run.TextStyle
	if style == nil {
		return content
	}

	if style.Bold {
		content = "<strong>" + content + "</strong>"
	}
	if style.Italic {
		content = "<em>" + content + "</em>"
	}

	if style.Link != nil && style.Link.Url != "" {
		url := style.Link.Url
		if imageExtPattern.MatchString(url) {
			// Links to image files render as the image itself, never as
			// clickable text.
			return `<img src="` + url + `" alt="Article image" loading="lazy" class="w-full h-auto my-4 rounded-lg" />`
		}
		content = `<a href="` + url + `" target="_blank" rel="noopener noreferrer">` + content + `</a>`
	}

	return content
}

func embeddedImageURI(obj docs.InlineObject) string {
	props := obj.InlineObjectProperties
	if props == nil || props.EmbeddedObject == nil || props.EmbeddedObject.ImageProperties == nil {
		return ""
	}
	return props.EmbeddedObject.ImageProperties.ContentUri
}
