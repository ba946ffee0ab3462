package driven

import (
	"context"

	"github.com/meridian-press/curata/internal/core/domain"
)

// EntryStore persists ranking/list entries.
type EntryStore interface {
	// SlugExists reports whether a slug is taken within a collection.
	SlugExists(ctx context.Context, collectionID, slug string) (bool, error)

	// SaveEntry persists one entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error
}

// ArticleStore persists full articles.
type ArticleStore interface {
	// SlugExists reports whether an article slug is taken.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// SaveArticle persists one article.
	SaveArticle(ctx context.Context, article domain.Article) error
}

// BatchStore records ingestion run summaries for operators.
type BatchStore interface {
	// SaveBatch persists a batch summary.
	SaveBatch(ctx context.Context, batch domain.BatchSummary) error

	// ListBatches returns past batch summaries, newest first.
	ListBatches(ctx context.Context) ([]domain.BatchSummary, error)
}
