package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// The ingestion pipeline distinguishes batch-, item- and candidate-level
// failures. Batch-level errors abort the whole run; item- and candidate-level
// errors are recorded in the report and processing continues.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates the remote source folder could not be
	// reached (not found, forbidden or unauthenticated). Batch-level: no
	// items can be discovered at all.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrDocumentUnreadable indicates both the document converter and the
	// plain-text fallback failed for an item's document. Item-level.
	ErrDocumentUnreadable = errors.New("document unreadable")

	// ErrNoRecordsFound indicates the document was read but every parsing
	// strategy produced zero records. Item-level, deliberately distinct from
	// ErrDocumentUnreadable so operators can tell "read but unparsable" from
	// "unreadable".
	ErrNoRecordsFound = errors.New("no records found in document")

	// ErrCandidatePersist indicates a single candidate record failed
	// validation or persistence. Candidate-level: it does not fail the item
	// if a sibling candidate succeeded.
	ErrCandidatePersist = errors.New("candidate could not be persisted")

	// ErrItemPersistFailure indicates zero candidates from an item were
	// persisted. Item-level.
	ErrItemPersistFailure = errors.New("no records persisted for item")

	// ErrNoDocument indicates an item container held no recognisable
	// document file. Item-level.
	ErrNoDocument = errors.New("item has no document file")
)
