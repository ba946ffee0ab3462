// Package syndication implements the feed-rebuild port. The CLI does not
// assemble RSS itself; it drops a marker the site generator watches for and
// regenerates feeds from.
package syndication

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meridian-press/curata/internal/core/ports/driven"
)

// Ensure MarkerRebuilder implements the interface.
var _ driven.FeedRebuilder = (*MarkerRebuilder)(nil)

// MarkerFilename is the file the site generator polls.
const MarkerFilename = "feeds.dirty"

// MarkerRebuilder signals a pending feed rebuild by touching a marker file
// in the data directory.
type MarkerRebuilder struct {
	dir string
}

// NewMarkerRebuilder creates a rebuilder writing its marker under dir.
func NewMarkerRebuilder(dir string) *MarkerRebuilder {
	return &MarkerRebuilder{dir: dir}
}

// Rebuild writes the marker with the current timestamp.
func (m *MarkerRebuilder) Rebuild(_ context.Context) error {
	if err := os.MkdirAll(m.dir, 0750); err != nil {
		return fmt.Errorf("creating marker directory: %w", err)
	}

	path := filepath.Join(m.dir, MarkerFilename)
	stamp := time.Now().UTC().Format(time.RFC3339) + "\n"
	if err := os.WriteFile(path, []byte(stamp), 0644); err != nil {
		return fmt.Errorf("writing feed marker: %w", err)
	}
	return nil
}
