package driven

import "context"

// RemoteFile is one entry in a remote folder listing.
type RemoteFile struct {
	// ID is the remote file identifier.
	ID string

	// Name is the display name.
	Name string

	// MIMEType is the remote-reported content type.
	MIMEType string
}

// RemoteItem is a logical ingestion unit discovered in the remote source:
// an item container folder with its grouped files.
type RemoteItem struct {
	// Name is the container folder name.
	Name string

	// Document is the item's document file. Nil when the container held no
	// recognisable document, which is a hard per-item error.
	Document *RemoteFile

	// Images are the container's image files, in name order.
	Images []RemoteFile
}

// RemoteSource lists and fetches documents from a shared remote folder.
// Implementations translate transport error codes (unauthenticated,
// forbidden, not-found) into domain.ErrSourceUnavailable rather than
// surfacing raw transport errors.
type RemoteSource interface {
	// ResolveFolder resolves a folder reference (name or identifier) to the
	// internal folder ID.
	ResolveFolder(ctx context.Context, ref string) (string, error)

	// ListItems pages through the folder listing until exhausted and groups
	// the entries into logical items.
	ListItems(ctx context.Context, folderID string) ([]RemoteItem, error)

	// Fetch downloads a file into dir and returns the local path.
	Fetch(ctx context.Context, file RemoteFile, dir string) (string, error)
}
