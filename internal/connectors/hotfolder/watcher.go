// Package hotfolder feeds documents dropped into the uploads directory
// through the ingestion pipeline, so authors can bulk-submit without
// touching the CMS at all.
package hotfolder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driving"
	"github.com/meridian-press/curata/internal/logger"
)

// DefaultDebounce coalesces the write bursts editors produce while a file
// is still being copied into the folder.
const DefaultDebounce = 2 * time.Second

// documentExts are the file types picked up from the hot folder.
var documentExts = map[string]struct{}{
	".docx": {},
	".pdf":  {},
	".txt":  {},
}

// Watcher ingests documents dropped into a directory. Each settled file
// becomes a single-item batch; the file is staged out of the folder before
// processing so a failed item never loops.
type Watcher struct {
	ingestor driving.Ingestor
	dir      string
	owner    domain.Owner
	kind     domain.ItemKind
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher over dir. Items are ingested with the given owner
// context and kind.
func New(ingestor driving.Ingestor, dir string, owner domain.Owner, kind domain.ItemKind) *Watcher {
	return &Watcher{
		ingestor: ingestor,
		dir:      dir,
		owner:    owner,
		kind:     kind,
		debounce: DefaultDebounce,
		timers:   make(map[string]*time.Timer),
	}
}

// Run watches the folder until the context is cancelled. Files already
// present at startup are ingested first.
func (w *Watcher) Run(ctx context.Context) error {
	if err := os.MkdirAll(w.dir, 0750); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.scanExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if _, ok := documentExts[strings.ToLower(filepath.Ext(event.Name))]; !ok {
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// scanExisting ingests files already sitting in the folder.
func (w *Watcher) scanExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		logger.Warn("could not scan %s: %v", w.dir, err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := documentExts[strings.ToLower(filepath.Ext(entry.Name()))]; !ok {
			continue
		}
		w.ingestFile(ctx, filepath.Join(w.dir, entry.Name()))
	}
}

// schedule (re)arms the per-path debounce timer.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.ingestFile(ctx, path)
	})
}

// ingestFile stages one file and runs it through the pipeline.
func (w *Watcher) ingestFile(ctx context.Context, path string) {
	if ctx.Err() != nil {
		return
	}

	item, err := StageFile(path, w.kind)
	if err != nil {
		logger.Warn("could not stage %s: %v", path, err)
		return
	}

	report := w.ingestor.IngestItems(ctx, []domain.Item{item}, w.owner)
	for _, outcome := range report.Outcomes {
		if outcome.Succeeded {
			logger.Info("%s: ingested (%d records)", outcome.Item, len(outcome.EntityIDs))
		} else {
			logger.Warn("%s: failed at %s: %s", outcome.Item, outcome.Stage, outcome.Err)
		}
	}
}

// StageFile moves a document into a scratch directory and wraps it as an
// item, so the pipeline's cleanup owns the file from here on.
func StageFile(path string, kind domain.ItemKind) (domain.Item, error) {
	dir, err := os.MkdirTemp("", "curata-upload-")
	if err != nil {
		return domain.Item{}, fmt.Errorf("creating scratch directory: %w", err)
	}

	staged := filepath.Join(dir, filepath.Base(path))
	if err := moveFile(path, staged); err != nil {
		os.RemoveAll(dir)
		return domain.Item{}, err
	}

	return domain.Item{
		ID:      uuid.New().String(),
		Name:    filepath.Base(path),
		Kind:    kind,
		TempDir: dir,
		Document: &domain.RawDocument{
			Name: filepath.Base(path),
			Path: staged,
		},
	}, nil
}

// moveFile renames when possible and falls back to copy-and-delete across
// filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return os.Remove(src)
}
