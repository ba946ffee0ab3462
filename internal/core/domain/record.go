package domain

import "time"

// CandidateRecord is a provisional entry extracted from a document, prior to
// persistence validation. Field values are free text exactly as classified by
// the parsing strategies.
type CandidateRecord struct {
	// Rank is the explicit rank parsed from the document, or 0 if the
	// document carried none. Materialisation falls back to output position.
	Rank int

	// Name is the subject of the entry. A candidate with an empty trimmed
	// Name must never be emitted by a strategy and is rejected by the
	// materialiser as a second line of defence.
	Name string

	// Optional classified fields.
	Designation string
	Company     string
	Residence   string
	Nationality string
	Category    string
	Industry    string
	Age         int

	// Description accumulates unmatched free text near the entry.
	Description string
}

// Entry is a persisted ranking/list entry. Created only by the materialiser;
// parsing never mutates persisted state.
type Entry struct {
	// ID is the unique identifier.
	ID string

	// CollectionID links the entry to its owning list.
	CollectionID string

	// Slug is the unique URL identifier within the collection.
	Slug string

	// Rank is the position within the list.
	Rank int

	Name        string
	Designation string
	Company     string
	Residence   string
	Nationality string
	Category    string
	Industry    string
	Age         int
	Description string

	// CreatedBy is the CMS user the entry is attributed to.
	CreatedBy string

	// CreatedAt is when the entry was materialised.
	CreatedAt time.Time
}

// Article is a persisted full article materialised from one ingestion item.
type Article struct {
	// ID is the unique identifier.
	ID string

	// Slug is the unique URL identifier.
	Slug string

	Title string
	Body  string

	// FeaturedImageURL is the processed featured image, empty if the item
	// carried no images.
	FeaturedImageURL string

	// GalleryImageURLs are the remaining processed images, in name order.
	GalleryImageURLs []string

	CoAuthors StringList
	Tags      StringList
	Keywords  StringList

	// CreatedBy is the CMS user the article is attributed to.
	CreatedBy string

	// CreatedAt is when the article was materialised.
	CreatedAt time.Time
}
