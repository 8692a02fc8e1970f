package services

import "gdocs-cms/pkg/models"

// SelectRelated returns up to count neighbors of the target article in list
// order: the following articles for the first entry, the preceding ones for
// the last, and one predecessor plus one successor otherwise. Adjacency is
// positional, so reordering the sheet changes recommendations.
func SelectRelated(articles []models.ArticleMetadata, slug string, count int) []models.ArticleMetadata {
	index := -1
	for i := range articles {
		if articles[i].Slug == slug {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	total := len(articles)

	if index == 0 {
		end := 1 + count
		if end > total {
			end = total
		}
		return articles[1:end]
	}

	if index == total-1 {
		start := total - 1 - count
		if start < 0 {
			start = 0
		}
		return articles[start : total-1]
	}

	related := make([]models.ArticleMetadata, 0, 2)
	related = append(related, articles[index-1])
	related = append(related, articles[index+1])
	if len(related) > count {
		related = related[:count]
	}
	return related
}
