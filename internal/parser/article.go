package parser

import (
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
)

// ArticleContent is the parsed form of a full-article document.
type ArticleContent struct {
	// Title is the first non-empty line of the document.
	Title string

	// Body is the remaining text with header lines removed.
	Body string

	// CoAuthors, Tags and Keywords come from optional labelled header lines
	// ("By:", "Tags:", "Keywords:") directly below the title.
	CoAuthors domain.StringList
	Tags      domain.StringList
	Keywords  domain.StringList
}

// ParseArticle splits an article document into title, optional labelled
// headers and body. Total: any non-empty text yields at least a title.
func ParseArticle(text string) ArticleContent {
	var content ArticleContent
	var body []string

	inHeader := true
	for _, line := range Lines(text) {
		if content.Title == "" {
			content.Title = line
			continue
		}

		if inHeader {
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "by:"), strings.HasPrefix(lower, "co-authors:"):
				content.CoAuthors, _ = domain.ParseStringList(FieldValue(line))
				continue
			case strings.HasPrefix(lower, "tags:"):
				content.Tags, _ = domain.ParseStringList(FieldValue(line))
				continue
			case strings.HasPrefix(lower, "keywords:"):
				content.Keywords, _ = domain.ParseStringList(FieldValue(line))
				continue
			}
			inHeader = false
		}

		body = append(body, line)
	}

	content.Body = strings.Join(body, "\n")
	return content
}
