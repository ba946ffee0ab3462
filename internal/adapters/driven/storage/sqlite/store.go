// Package sqlite provides SQLite-backed persistence for materialised
// catalog records and batch history.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/meridian-press/curata/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// catalog store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.curata/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".curata", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// WAL mode keeps reads cheap while a batch writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// EntryStore returns an EntryStore interface backed by this store.
func (s *Store) EntryStore() driven.EntryStore {
	return &entryStore{store: s}
}

// ArticleStore returns an ArticleStore interface backed by this store.
func (s *Store) ArticleStore() driven.ArticleStore {
	return &articleStore{store: s}
}

// BatchStore returns a BatchStore interface backed by this store.
func (s *Store) BatchStore() driven.BatchStore {
	return &batchStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// isUniqueViolation detects a UNIQUE constraint failure from the driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ==================== Entry Store ====================

type entryStore struct {
	store *Store
}

var _ driven.EntryStore = (*entryStore)(nil)

// SlugExists reports whether a slug is taken within a collection.
func (s *entryStore) SlugExists(ctx context.Context, collectionID, slug string) (bool, error) {
	var n int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM entries WHERE collection_id = ? AND slug = ?",
		collectionID, slug,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking entry slug: %w", err)
	}
	return n > 0, nil
}

// SaveEntry persists one entry. The (collection_id, slug) unique index is
// the backstop for slug reservation: a violation surfaces as
// domain.ErrAlreadyExists instead of silently corrupting the collection.
func (s *entryStore) SaveEntry(ctx context.Context, entry domain.Entry) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO entries (
			id, collection_id, slug, rank, name, designation, company,
			residence, nationality, category, industry, age, description,
			created_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.CollectionID, entry.Slug, entry.Rank, entry.Name,
		entry.Designation, entry.Company, entry.Residence, entry.Nationality,
		entry.Category, entry.Industry, entry.Age, entry.Description,
		entry.CreatedBy, entry.CreatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: slug %q in collection %s", domain.ErrAlreadyExists, entry.Slug, entry.CollectionID)
	}
	if err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}
	return nil
}

// ==================== Article Store ====================

type articleStore struct {
	store *Store
}

var _ driven.ArticleStore = (*articleStore)(nil)

// SlugExists reports whether an article slug is taken.
func (s *articleStore) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM articles WHERE slug = ?", slug,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking article slug: %w", err)
	}
	return n > 0, nil
}

// SaveArticle persists one article. List fields are stored as JSON.
func (s *articleStore) SaveArticle(ctx context.Context, article domain.Article) error {
	gallery, err := json.Marshal(article.GalleryImageURLs)
	if err != nil {
		return fmt.Errorf("marshalling gallery urls: %w", err)
	}
	coAuthors, err := json.Marshal(article.CoAuthors)
	if err != nil {
		return fmt.Errorf("marshalling co-authors: %w", err)
	}
	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}
	keywords, err := json.Marshal(article.Keywords)
	if err != nil {
		return fmt.Errorf("marshalling keywords: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO articles (
			id, slug, title, body, featured_image_url, gallery_image_urls,
			co_authors, tags, keywords, created_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Slug, article.Title, article.Body,
		article.FeaturedImageURL, string(gallery), string(coAuthors),
		string(tags), string(keywords), article.CreatedBy, article.CreatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("%w: article slug %q", domain.ErrAlreadyExists, article.Slug)
	}
	if err != nil {
		return fmt.Errorf("saving article: %w", err)
	}
	return nil
}

// ==================== Batch Store ====================

type batchStore struct {
	store *Store
}

var _ driven.BatchStore = (*batchStore)(nil)

// SaveBatch persists a batch summary.
func (s *batchStore) SaveBatch(ctx context.Context, batch domain.BatchSummary) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO batches (
			id, source, total_found, total_processed, succeeded, errored,
			status, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, batch.ID, batch.Source, batch.TotalFound, batch.TotalProcessed,
		batch.Succeeded, batch.Errored, batch.Status, batch.StartedAt, batch.FinishedAt)

	if err != nil {
		return fmt.Errorf("saving batch: %w", err)
	}
	return nil
}

// ListBatches returns past batch summaries, newest first.
func (s *batchStore) ListBatches(ctx context.Context) ([]domain.BatchSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source, total_found, total_processed, succeeded, errored,
		       status, started_at, finished_at
		FROM batches ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing batches: %w", err)
	}
	defer rows.Close()

	var batches []domain.BatchSummary
	for rows.Next() {
		var b domain.BatchSummary
		if err := rows.Scan(&b.ID, &b.Source, &b.TotalFound, &b.TotalProcessed,
			&b.Succeeded, &b.Errored, &b.Status, &b.StartedAt, &b.FinishedAt); err != nil {
			return nil, fmt.Errorf("scanning batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
