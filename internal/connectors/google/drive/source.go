package drive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/drive/v3"

	"github.com/meridian-press/curata/internal/connectors/google"
	"github.com/meridian-press/curata/internal/core/domain"
	"github.com/meridian-press/curata/internal/core/ports/driven"
	"github.com/meridian-press/curata/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.RemoteSource = (*Source)(nil)

// listFields are the file attributes each listing page requests.
const listFields = "nextPageToken, files(id, name, mimeType, parents)"

// Source lists and fetches ingestion items from a shared Drive folder.
type Source struct {
	svc     *drive.Service
	cfg     Config
	limiter *google.RateLimiter
}

// NewSource creates a Drive source over an authenticated service.
func NewSource(svc *drive.Service, cfg Config) *Source {
	cfg.defaults()
	return &Source{
		svc:     svc,
		cfg:     cfg,
		limiter: google.NewRateLimiter(),
	}
}

// ResolveFolder resolves a folder reference to its Drive ID. The reference
// may be a folder ID or a folder name; IDs are tried first. Transport errors
// and a missing folder both translate to domain.ErrSourceUnavailable: with
// no top-level folder there is nothing to ingest.
func (s *Source) ResolveFolder(ctx context.Context, ref string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	f, err := s.svc.Files.Get(ref).Fields("id, mimeType").Context(ctx).Do()
	if err == nil && f.MimeType == MimeTypeFolder {
		return f.Id, nil
	}
	if err != nil && !google.IsNotFound(err) {
		return "", google.WrapError(err)
	}

	// Not an ID; look the folder up by name.
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	query := fmt.Sprintf("name = '%s' and mimeType = '%s' and trashed = false",
		escapeQuery(ref), MimeTypeFolder)
	list, err := s.svc.Files.List().Q(query).Fields("files(id)").PageSize(2).Context(ctx).Do()
	if err != nil {
		return "", google.WrapError(err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("%w: folder %q not found", domain.ErrSourceUnavailable, ref)
	}
	if len(list.Files) > 1 {
		logger.Warn("folder name %q is ambiguous, using the first match", ref)
	}
	return list.Files[0].Id, nil
}

// ListItems pages through the folder and its item containers, then groups
// the entries into logical items. Failures here are batch-level: they occur
// before any item can run.
func (s *Source) ListItems(ctx context.Context, folderID string) ([]driven.RemoteItem, error) {
	children, err := s.listChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}

	var containers []*drive.File
	for _, child := range children {
		if child.MimeType == MimeTypeFolder && s.cfg.ContainerPattern.MatchString(child.Name) {
			containers = append(containers, child)
		}
	}
	logger.Debug("folder %s: %d children, %d item containers", folderID, len(children), len(containers))

	var files []*drive.File
	for _, container := range containers {
		grouped, err := s.listChildren(ctx, container.Id)
		if err != nil {
			return nil, err
		}
		files = append(files, grouped...)
	}

	return Group(containers, files), nil
}

// listChildren pages files.list for one parent with an explicit page-token
// loop until the listing is exhausted.
func (s *Source) listChildren(ctx context.Context, parentID string) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false", escapeQuery(parentID))

	var all []*drive.File
	pageToken := ""
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := s.svc.Files.List().
			Q(query).
			Fields(listFields).
			PageSize(s.cfg.PageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if google.IsRateLimited(err) {
			// Back off and retry the same page.
			s.limiter.RecordRateLimitError(0)
			logger.Warn("rate limited listing %s, backing off", parentID)
			continue
		}
		if err != nil {
			return nil, google.WrapError(err)
		}

		all = append(all, page.Files...)
		pageToken = page.NextPageToken
		if pageToken == "" {
			return all, nil
		}
	}
}

// Fetch downloads a file into dir and returns the local path. Google Docs
// are exported to plain text; everything else downloads as-is.
func (s *Source) Fetch(ctx context.Context, file driven.RemoteFile, dir string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var (
		body io.ReadCloser
		name = sanitiseFilename(file.Name)
	)

	if file.MIMEType == MimeTypeGoogleDoc {
		resp, err := s.svc.Files.Export(file.ID, "text/plain").Context(ctx).Download()
		if err != nil {
			return "", fmt.Errorf("export %s: %w", file.Name, google.WrapError(err))
		}
		body = resp.Body
		if filepath.Ext(name) == "" {
			name += ".txt"
		}
	} else {
		resp, err := s.svc.Files.Get(file.ID).Context(ctx).Download()
		if err != nil {
			return "", fmt.Errorf("download %s: %w", file.Name, google.WrapError(err))
		}
		body = resp.Body
	}
	defer body.Close()

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(body, MaxFetchSize)); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// escapeQuery escapes single quotes for Drive query strings.
func escapeQuery(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}

// sanitiseFilename strips path separators from remote names.
func sanitiseFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, `\`, "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}
