package domain

// RawDocument represents an opaque document fetched for one ingestion item.
// It lives on disk only for the duration of that item's processing; the
// orchestrator removes the file on every exit path.
type RawDocument struct {
	// Name is the logical document name (original filename).
	Name string

	// Path is the local temporary file path.
	Path string

	// MIMEType is the content type if known (e.g. the Drive-reported type).
	MIMEType string
}

// ItemKind identifies what an ingestion item materialises into.
type ItemKind int

const (
	// ItemListing materialises ranking/list entries into a collection.
	ItemListing ItemKind = iota

	// ItemArticle materialises a full article.
	ItemArticle
)

// String returns the kind name for logs and reports.
func (k ItemKind) String() string {
	switch k {
	case ItemListing:
		return "listing"
	case ItemArticle:
		return "article"
	default:
		return "unknown"
	}
}

// Item is one logical ingestion unit: one document plus zero or more images.
// It is owned by the orchestrator for a single run.
type Item struct {
	// ID is the unique identifier assigned for this run.
	ID string

	// Name is the human-readable item name (file or folder name).
	Name string

	// Kind selects the materialisation target.
	Kind ItemKind

	// Document is the item's document. Nil means the item container held no
	// recognisable document file.
	Document *RawDocument

	// ImagePaths are local paths of the item's images, in name order.
	ImagePaths []string

	// TempDir is the item's scratch directory, removed with the item's
	// files on every exit path. Empty when the caller staged files itself.
	TempDir string
}

// Owner carries the ingestion context a batch runs under.
type Owner struct {
	// CollectionID is the list/ranking the entries belong to.
	// Empty for article batches.
	CollectionID string

	// CreatedBy is the CMS user the materialised records are attributed to.
	CreatedBy string

	// CoAuthors, Tags and Keywords are attached to materialised articles.
	CoAuthors StringList
	Tags      StringList
	Keywords  StringList
}
