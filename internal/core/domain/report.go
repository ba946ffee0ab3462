package domain

import (
	"fmt"
	"net/http"
)

// Stage identifies where in the per-item pipeline an outcome was decided.
type Stage string

const (
	// StageListing is remote source discovery and grouping.
	StageListing Stage = "listing"

	// StageExtracting is binary document to text conversion.
	StageExtracting Stage = "extracting"

	// StageParsing is the strategy cascade over the extracted lines.
	StageParsing Stage = "parsing"

	// StageResolvingImages is featured/gallery image processing.
	StageResolvingImages Stage = "resolving-images"

	// StageMaterialising is candidate validation and persistence.
	StageMaterialising Stage = "materialising"

	// StageFinalising is batch-level side effects after all items ran.
	StageFinalising Stage = "finalising"
)

// ItemOutcome is the recorded result for one ingestion item.
type ItemOutcome struct {
	// Item is the item name the outcome belongs to.
	Item string

	// Kind is the item's materialisation target.
	Kind ItemKind

	// Succeeded is true when at least one record persisted.
	Succeeded bool

	// Stage is the stage the outcome was decided at: the last stage for
	// successes, the failing stage otherwise.
	Stage Stage

	// EntityIDs are the identifiers of persisted records.
	EntityIDs []string

	// Message is a human-readable detail, sufficient to correct and
	// re-submit just this item.
	Message string

	// Err is the error text for failures, empty for successes.
	Err string
}

// Report aggregates per-item outcomes for one ingestion batch. It is
// append-only while the orchestrator runs and must not be mutated once
// returned to the caller.
type Report struct {
	// TotalFound is how many items discovery produced, including items that
	// were never attempted because the run was cancelled.
	TotalFound int

	// Outcomes holds one entry per attempted item, in processing order.
	Outcomes []ItemOutcome

	// Logs carries free-form progress lines for operators.
	Logs []string
}

// RecordSuccess appends a successful outcome.
func (r *Report) RecordSuccess(item string, kind ItemKind, entityIDs []string, message string) {
	r.Outcomes = append(r.Outcomes, ItemOutcome{
		Item:      item,
		Kind:      kind,
		Succeeded: true,
		Stage:     StageMaterialising,
		EntityIDs: entityIDs,
		Message:   message,
	})
}

// RecordFailure appends a failed outcome with the stage it failed at.
func (r *Report) RecordFailure(item string, kind ItemKind, stage Stage, err error, message string) {
	outcome := ItemOutcome{
		Item:    item,
		Kind:    kind,
		Stage:   stage,
		Message: message,
	}
	if err != nil {
		outcome.Err = err.Error()
	}
	r.Outcomes = append(r.Outcomes, outcome)
}

// Logf appends a formatted operator log line.
func (r *Report) Logf(format string, args ...any) {
	r.Logs = append(r.Logs, fmt.Sprintf(format, args...))
}

// TotalProcessed is the number of attempted items.
func (r *Report) TotalProcessed() int {
	return len(r.Outcomes)
}

// Succeeded is the number of items with at least one persisted record.
func (r *Report) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Succeeded {
			n++
		}
	}
	return n
}

// Errored is the number of failed items.
func (r *Report) Errored() int {
	return r.TotalProcessed() - r.Succeeded()
}

// HTTPStatus maps the batch outcome to a transport status: all-success maps
// to 200, all-failure to 400 and a mixed batch to 207. A batch that attempted
// nothing counts as all-success. The mapping is a contract usable by any
// transport, not just HTTP.
func (r *Report) HTTPStatus() int {
	switch {
	case r.Errored() == 0:
		return http.StatusOK
	case r.Succeeded() == 0:
		return http.StatusBadRequest
	default:
		return http.StatusMultiStatus
	}
}
