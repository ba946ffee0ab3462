package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driven"
)

// fakeEntryStore records saved entries in memory and tracks taken slugs per
// collection.
type fakeEntryStore struct {
	saved     []domain.Entry
	taken     map[string]bool
	failNames map[string]bool
	slugErr   error
}

func newFakeEntryStore() *fakeEntryStore {
	return &fakeEntryStore{taken: make(map[string]bool)}
}

func (f *fakeEntryStore) key(collectionID, slug string) string {
	return collectionID + "/" + slug
}

func (f *fakeEntryStore) SlugExists(_ context.Context, collectionID, slug string) (bool, error) {
	if f.slugErr != nil {
		return false, f.slugErr
	}
	return f.taken[f.key(collectionID, slug)], nil
}

func (f *fakeEntryStore) SaveEntry(_ context.Context, entry domain.Entry) error {
	if f.failNames[entry.Name] {
		return errors.New("forced save failure")
	}
	f.saved = append(f.saved, entry)
	f.taken[f.key(entry.CollectionID, entry.Slug)] = true
	return nil
}

// fakeArticleStore records saved articles in memory.
type fakeArticleStore struct {
	saved   []domain.Article
	taken   map[string]bool
	saveErr error
}

func newFakeArticleStore() *fakeArticleStore {
	return &fakeArticleStore{taken: make(map[string]bool)}
}

func (f *fakeArticleStore) SlugExists(_ context.Context, slug string) (bool, error) {
	return f.taken[slug], nil
}

func (f *fakeArticleStore) SaveArticle(_ context.Context, article domain.Article) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, article)
	f.taken[article.Slug] = true
	return nil
}

// fakeExtractor returns the staged file's content as text, failing on files
// whose name contains "corrupt".
type fakeExtractor struct{}

func (fakeExtractor) Extract(raw *domain.RawDocument) (string, error) {
	if strings.Contains(raw.Name, "corrupt") {
		return "", fmt.Errorf("%w: unsupported binary", domain.ErrDocumentUnreadable)
	}
	data, err := os.ReadFile(raw.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	return string(data), nil
}

// fakeImageProcessor returns deterministic filenames without touching disk.
type fakeImageProcessor struct {
	processed []string
	failPaths map[string]bool
}

func (f *fakeImageProcessor) ProcessImage(path string, _ driven.ImageOptions) (string, error) {
	if f.failPaths[path] {
		return "", errors.New("forced processing failure")
	}
	filename := filepath.Base(path) + ".out"
	f.processed = append(f.processed, filename)
	return filename, nil
}

func (f *fakeImageProcessor) ImageURL(filename string) string {
	return "https://media.test/" + filename
}

// fakeBatchStore records batch summaries.
type fakeBatchStore struct {
	saved []domain.BatchSummary
}

func (f *fakeBatchStore) SaveBatch(_ context.Context, batch domain.BatchSummary) error {
	f.saved = append(f.saved, batch)
	return nil
}

func (f *fakeBatchStore) ListBatches(_ context.Context) ([]domain.BatchSummary, error) {
	return f.saved, nil
}

// fakeFeedRebuilder counts rebuilds.
type fakeFeedRebuilder struct {
	rebuilds int
	err      error
}

func (f *fakeFeedRebuilder) Rebuild(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.rebuilds++
	return nil
}

// fakeRemoteSource serves a fixed listing and writes fetched files from an
// in-memory content map.
type fakeRemoteSource struct {
	folderID string
	items    []driven.RemoteItem
	content  map[string]string

	resolveErr error
	listErr    error
	fetchErr   map[string]error
}

func (f *fakeRemoteSource) ResolveFolder(_ context.Context, ref string) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return f.folderID, nil
}

func (f *fakeRemoteSource) ListItems(_ context.Context, folderID string) ([]driven.RemoteItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeRemoteSource) Fetch(_ context.Context, file driven.RemoteFile, dir string) (string, error) {
	if err := f.fetchErr[file.ID]; err != nil {
		return "", err
	}
	path := filepath.Join(dir, file.Name)
	if err := os.WriteFile(path, []byte(f.content[file.ID]), 0600); err != nil {
		return "", err
	}
	return path, nil
}
