package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driven"
	"github.com/meridian-press/curata/internal/logger"
	"github.com/meridian-press/curata/internal/parser"
)

// Materialiser converts candidate records into persisted entities. It is the
// only component that creates persisted records; parsing never touches
// storage.
type Materialiser struct {
	entries  driven.EntryStore
	articles driven.ArticleStore
}

// NewMaterialiser creates a materialiser over the given stores.
func NewMaterialiser(entries driven.EntryStore, articles driven.ArticleStore) *Materialiser {
	return &Materialiser{
		entries:  entries,
		articles: articles,
	}
}

// MaterialiseEntries persists the cascade's candidates into a collection.
// Candidates with an empty trimmed name are skipped and logged, never
// aborting the item. Each candidate persists independently: one failure must
// not block its siblings. Returns the persisted entry IDs; when zero
// candidates persisted the item itself has failed.
//
// Slug retries assume a single writer per batch; see the collection-serial
// processing note on the orchestrator.
func (m *Materialiser) MaterialiseEntries(
	ctx context.Context, candidates []domain.CandidateRecord, owner domain.Owner,
) ([]string, error) {
	var ids []string

	for i, candidate := range candidates {
		name := strings.TrimSpace(candidate.Name)
		if name == "" {
			logger.Warn("skipping candidate %d: empty name", i+1)
			continue
		}

		rank := candidate.Rank
		if rank == 0 {
			rank = i + 1 // Sequence position when the document carried no rank.
		}

		entrySlug, err := m.uniqueEntrySlug(ctx, owner.CollectionID, name)
		if err != nil {
			err = fmt.Errorf("%w: %v", domain.ErrCandidatePersist, err)
			logger.Warn("skipping candidate %q: %v", name, err)
			continue
		}

		entry := domain.Entry{
			ID:           uuid.New().String(),
			CollectionID: owner.CollectionID,
			Slug:         entrySlug,
			Rank:         rank,
			Name:         name,
			Designation:  candidate.Designation,
			Company:      candidate.Company,
			Residence:    candidate.Residence,
			Nationality:  candidate.Nationality,
			Category:     candidate.Category,
			Industry:     candidate.Industry,
			Age:          candidate.Age,
			Description:  candidate.Description,
			CreatedBy:    owner.CreatedBy,
			CreatedAt:    time.Now().UTC(),
		}

		if err := m.entries.SaveEntry(ctx, entry); err != nil {
			err = fmt.Errorf("%w: %v", domain.ErrCandidatePersist, err)
			logger.Warn("candidate %q not persisted: %v", name, err)
			continue
		}
		ids = append(ids, entry.ID)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %d candidates", domain.ErrItemPersistFailure, len(candidates))
	}
	return ids, nil
}

// MaterialiseArticle persists one article with its resolved images.
func (m *Materialiser) MaterialiseArticle(
	ctx context.Context, content parser.ArticleContent, images ResolvedImages, owner domain.Owner,
) (string, error) {
	title := strings.TrimSpace(content.Title)
	if title == "" {
		return "", fmt.Errorf("%w: article has no title", domain.ErrItemPersistFailure)
	}

	articleSlug, err := m.uniqueArticleSlug(ctx, title)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrItemPersistFailure, err)
	}

	coAuthors := content.CoAuthors
	if len(owner.CoAuthors) > 0 {
		coAuthors = owner.CoAuthors
	}
	tags := content.Tags
	if len(owner.Tags) > 0 {
		tags = owner.Tags
	}
	keywords := content.Keywords
	if len(owner.Keywords) > 0 {
		keywords = owner.Keywords
	}

	article := domain.Article{
		ID:               uuid.New().String(),
		Slug:             articleSlug,
		Title:            title,
		Body:             content.Body,
		FeaturedImageURL: images.FeaturedURL,
		GalleryImageURLs: images.GalleryURLs,
		CoAuthors:        coAuthors,
		Tags:             tags,
		Keywords:         keywords,
		CreatedBy:        owner.CreatedBy,
		CreatedAt:        time.Now().UTC(),
	}

	if err := m.articles.SaveArticle(ctx, article); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrItemPersistFailure, err)
	}
	return article.ID, nil
}

// uniqueEntrySlug resolves a unique slug inside a collection by appending an
// incrementing numeric suffix to the normalised base until the store reports
// it free. Check-then-insert is only correct with a single writer per batch.
func (m *Materialiser) uniqueEntrySlug(ctx context.Context, collectionID, name string) (string, error) {
	return uniqueSlug(name, func(candidate string) (bool, error) {
		return m.entries.SlugExists(ctx, collectionID, candidate)
	})
}

func (m *Materialiser) uniqueArticleSlug(ctx context.Context, title string) (string, error) {
	return uniqueSlug(title, func(candidate string) (bool, error) {
		return m.articles.SlugExists(ctx, candidate)
	})
}

func uniqueSlug(base string, exists func(string) (bool, error)) (string, error) {
	normalised := slug.Make(base)
	if normalised == "" {
		return "", fmt.Errorf("name %q produced an empty slug", base)
	}

	candidate := normalised
	for suffix := 1; ; suffix++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", normalised, suffix)
	}
}
