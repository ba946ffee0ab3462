package domain

import "time"

// BatchSummary is the persisted record of one ingestion run, kept so
// operators can inspect past batches and re-submit failed items.
type BatchSummary struct {
	// ID is the unique batch identifier.
	ID string

	// Source describes where the batch came from ("upload" or
	// "drive:<folder>").
	Source string

	TotalFound     int
	TotalProcessed int
	Succeeded      int
	Errored        int

	// Status is the transport status the report mapped to.
	Status int

	StartedAt  time.Time
	FinishedAt time.Time
}
