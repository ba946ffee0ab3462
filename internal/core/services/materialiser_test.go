package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/parser"
)

func TestMaterialiseEntries(t *testing.T) {
	entries := newFakeEntryStore()
	m := NewMaterialiser(entries, newFakeArticleStore())
	owner := domain.Owner{CollectionID: "top-50", CreatedBy: "editor@press.test"}

	candidates := []domain.CandidateRecord{
		{Rank: 1, Name: "Jane Doe", Designation: "CEO"},
		{Rank: 2, Name: "John Roe"},
	}

	ids, err := m.MaterialiseEntries(context.Background(), candidates, owner)

	require.NoError(t, err)
	assert.Len(t, ids, 2)
	require.Len(t, entries.saved, 2)
	assert.Equal(t, "top-50", entries.saved[0].CollectionID)
	assert.Equal(t, "jane-doe", entries.saved[0].Slug)
	assert.Equal(t, "editor@press.test", entries.saved[0].CreatedBy)
	assert.Equal(t, 1, entries.saved[0].Rank)
	assert.NotEmpty(t, entries.saved[0].ID)
	assert.False(t, entries.saved[0].CreatedAt.IsZero())
}

func TestMaterialiseEntries_SlugRetry(t *testing.T) {
	entries := newFakeEntryStore()
	entries.taken["top-50/john-smith"] = true
	m := NewMaterialiser(entries, newFakeArticleStore())

	ids, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{{Rank: 1, Name: "John Smith"}},
		domain.Owner{CollectionID: "top-50"})

	require.NoError(t, err)
	assert.Len(t, ids, 1)
	assert.Equal(t, "john-smith-1", entries.saved[0].Slug)
}

func TestMaterialiseEntries_DuplicateNamesInBatch(t *testing.T) {
	entries := newFakeEntryStore()
	m := NewMaterialiser(entries, newFakeArticleStore())

	_, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{
			{Rank: 1, Name: "John Smith"},
			{Rank: 2, Name: "John Smith"},
		},
		domain.Owner{CollectionID: "top-50"})

	require.NoError(t, err)
	require.Len(t, entries.saved, 2)
	assert.Equal(t, "john-smith", entries.saved[0].Slug)
	assert.Equal(t, "john-smith-1", entries.saved[1].Slug)
}

func TestMaterialiseEntries_EmptyNamesSkipped(t *testing.T) {
	entries := newFakeEntryStore()
	m := NewMaterialiser(entries, newFakeArticleStore())

	ids, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{
			{Rank: 1, Name: "   "},
			{Rank: 2, Name: "Jane Doe"},
		},
		domain.Owner{CollectionID: "top-50"})

	require.NoError(t, err)
	assert.Len(t, ids, 1)
	assert.Equal(t, "Jane Doe", entries.saved[0].Name)
}

func TestMaterialiseEntries_RankDefaultsToPosition(t *testing.T) {
	entries := newFakeEntryStore()
	m := NewMaterialiser(entries, newFakeArticleStore())

	_, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{
			{Name: "Jane Doe"},
			{Name: "John Roe"},
		},
		domain.Owner{CollectionID: "top-50"})

	require.NoError(t, err)
	assert.Equal(t, 1, entries.saved[0].Rank)
	assert.Equal(t, 2, entries.saved[1].Rank)
}

func TestMaterialiseEntries_PartialSaveFailure(t *testing.T) {
	entries := newFakeEntryStore()
	entries.failNames = map[string]bool{"John Roe": true}
	m := NewMaterialiser(entries, newFakeArticleStore())

	ids, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{
			{Rank: 1, Name: "Jane Doe"},
			{Rank: 2, Name: "John Roe"},
			{Rank: 3, Name: "Mary Major"},
		},
		domain.Owner{CollectionID: "top-50"})

	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestMaterialiseEntries_NothingPersisted(t *testing.T) {
	entries := newFakeEntryStore()
	entries.failNames = map[string]bool{"Jane Doe": true}
	m := NewMaterialiser(entries, newFakeArticleStore())

	_, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{{Rank: 1, Name: "Jane Doe"}},
		domain.Owner{CollectionID: "top-50"})

	assert.ErrorIs(t, err, domain.ErrItemPersistFailure)
}

func TestMaterialiseEntries_SlugCheckFailureSkipsCandidate(t *testing.T) {
	entries := newFakeEntryStore()
	entries.slugErr = errors.New("store offline")
	m := NewMaterialiser(entries, newFakeArticleStore())

	_, err := m.MaterialiseEntries(context.Background(),
		[]domain.CandidateRecord{{Rank: 1, Name: "Jane Doe"}},
		domain.Owner{CollectionID: "top-50"})

	assert.ErrorIs(t, err, domain.ErrItemPersistFailure)
}

func TestMaterialiseArticle(t *testing.T) {
	articles := newFakeArticleStore()
	m := NewMaterialiser(newFakeEntryStore(), articles)

	content := parser.ArticleContent{
		Title:     "The Rise of Mobile Money",
		Body:      "Body text.",
		CoAuthors: domain.StringList{"Ada Obi"},
	}
	images := ResolvedImages{
		FeaturedURL: "https://media.test/lead.jpg",
		GalleryURLs: []string{"https://media.test/g1.jpg"},
	}

	id, err := m.MaterialiseArticle(context.Background(), content, images,
		domain.Owner{CreatedBy: "editor@press.test"})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, articles.saved, 1)
	saved := articles.saved[0]
	assert.Equal(t, "the-rise-of-mobile-money", saved.Slug)
	assert.Equal(t, "https://media.test/lead.jpg", saved.FeaturedImageURL)
	assert.Equal(t, domain.StringList{"Ada Obi"}, saved.CoAuthors)
}

func TestMaterialiseArticle_OwnerListsOverrideParsed(t *testing.T) {
	articles := newFakeArticleStore()
	m := NewMaterialiser(newFakeEntryStore(), articles)

	content := parser.ArticleContent{
		Title: "Title",
		Tags:  domain.StringList{"from-document"},
	}
	owner := domain.Owner{Tags: domain.StringList{"from-request"}}

	_, err := m.MaterialiseArticle(context.Background(), content, ResolvedImages{}, owner)

	require.NoError(t, err)
	assert.Equal(t, domain.StringList{"from-request"}, articles.saved[0].Tags)
}

func TestMaterialiseArticle_SlugRetry(t *testing.T) {
	articles := newFakeArticleStore()
	articles.taken["title"] = true
	m := NewMaterialiser(newFakeEntryStore(), articles)

	_, err := m.MaterialiseArticle(context.Background(),
		parser.ArticleContent{Title: "Title"}, ResolvedImages{}, domain.Owner{})

	require.NoError(t, err)
	assert.Equal(t, "title-1", articles.saved[0].Slug)
}

func TestMaterialiseArticle_NoTitle(t *testing.T) {
	m := NewMaterialiser(newFakeEntryStore(), newFakeArticleStore())

	_, err := m.MaterialiseArticle(context.Background(),
		parser.ArticleContent{Title: "   "}, ResolvedImages{}, domain.Owner{})

	assert.ErrorIs(t, err, domain.ErrItemPersistFailure)
}

func TestMaterialiseArticle_SaveFailure(t *testing.T) {
	articles := newFakeArticleStore()
	articles.saveErr = errors.New("store offline")
	m := NewMaterialiser(newFakeEntryStore(), articles)

	_, err := m.MaterialiseArticle(context.Background(),
		parser.ArticleContent{Title: "Title"}, ResolvedImages{}, domain.Owner{})

	assert.ErrorIs(t, err, domain.ErrItemPersistFailure)
}
